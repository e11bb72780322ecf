// Package cache_invalidation wires successful Amplify deployments to a
// CloudFront invalidation: an EventBridge rule on the deployment status
// stream targets a Go Lambda that invalidates every path of the distribution.
package cache_invalidation

import (
	"fmt"
	"path/filepath"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/cdklogger"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/utils"
)

// Amplify publishes deployment transitions on the default bus with this
// shape; SUCCEED is the terminal success status.
const (
	eventSource     = "aws.amplify"
	eventDetailType = "Amplify Deployment Status Change"
	successStatus   = "SUCCEED"
)

type DeployTriggerConfig struct {
	AppID          string  `validate:"required"`
	BranchName     string  `validate:"required"`
	DistributionID *string `validate:"required"`
}

type DeployTrigger struct {
	Function awscdklambdagoalpha.GoFunction
	Rule     awsevents.Rule
}

// NewDeployTrigger declares the rule, the handler and its execution role.
// The role is scoped to CreateInvalidation on the one distribution; delivery
// failures are retried twice by EventBridge and then dropped, since a missed
// invalidation only delays freshness until the cache expires.
func NewDeployTrigger(scope constructs.Construct, id *string, config DeployTriggerConfig) DeployTrigger {
	if err := validator.New().Struct(config); err != nil {
		panic(fmt.Errorf("invalid deploy trigger config: %w", err))
	}

	stack := awscdk.Stack_Of(scope)
	distributionArn := fmt.Sprintf("arn:aws:cloudfront::%s:distribution/%s", *stack.Account(), *config.DistributionID)

	role := awsiam.NewRole(scope, jsii.Sprintf("%sRole", *id), &awsiam.RoleProps{
		AssumedBy:   awsiam.NewServicePrincipal(jsii.String("lambda.amazonaws.com"), nil),
		Description: jsii.String("Execution role for the cache invalidation handler"),
	})
	role.AddManagedPolicy(awsiam.ManagedPolicy_FromManagedPolicyArn(
		scope,
		jsii.Sprintf("%sBasicExecution", *id),
		jsii.String("arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"),
	))
	role.AddManagedPolicy(awsiam.NewManagedPolicy(scope, jsii.Sprintf("%sInvalidationPolicy", *id), &awsiam.ManagedPolicyProps{
		Description: jsii.String("Allows invalidating the branch distribution"),
		Statements: &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Effect:    awsiam.Effect_ALLOW,
				Actions:   jsii.Strings("cloudfront:CreateInvalidation"),
				Resources: &[]*string{jsii.String(distributionArn)},
			}),
		},
	}))

	handler := awscdklambdagoalpha.NewGoFunction(scope, jsii.Sprintf("%sHandler", *id), &awscdklambdagoalpha.GoFunctionProps{
		Entry:        jsii.String(filepath.Join(utils.GetProjectRootDir(), "cmd", "cache-invalidation")),
		Description:  jsii.String("Invalidates the CloudFront cache after successful Amplify deployments"),
		Role:         role,
		Timeout:      awscdk.Duration_Seconds(jsii.Number(30)),
		MemorySize:   jsii.Number(128),
		Tracing:      awslambda.Tracing_ACTIVE,
		LogRetention: awslogs.RetentionDays_SIX_MONTHS,
		Bundling: &awscdklambdagoalpha.BundlingOptions{
			GoBuildFlags: &[]*string{
				jsii.String("-ldflags \"-s -w\""),
			},
		},
		Environment: &map[string]*string{
			"DISTRIBUTION_ID": config.DistributionID,
			"APP_ID":          jsii.String(config.AppID),
			"BRANCH_NAME":     jsii.String(config.BranchName),
		},
	})

	rule := awsevents.NewRule(scope, jsii.Sprintf("%sRule", *id), &awsevents.RuleProps{
		Description: jsii.String("Successful Amplify deployments of the fronted branch"),
		EventPattern: &awsevents.EventPattern{
			Source:     jsii.Strings(eventSource),
			DetailType: jsii.Strings(eventDetailType),
			Detail: &map[string]interface{}{
				"appId":      []string{config.AppID},
				"branchName": []string{config.BranchName},
				"jobStatus":  []string{successStatus},
			},
		},
	})
	rule.AddTarget(awseventstargets.NewLambdaFunction(handler, &awseventstargets.LambdaFunctionProps{
		RetryAttempts: jsii.Number(2),
	}))

	cdklogger.LogInfo(scope, *id, "Invalidations scoped to %s", distributionArn)

	return DeployTrigger{Function: handler, Rule: rule}
}
