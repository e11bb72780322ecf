// Package branch_auth enables Basic-Auth on an existing Amplify branch. The
// branch itself is provisioned elsewhere; this construct only flips its auth
// settings, so it is an SDK call wrapped in a custom resource rather than a
// CloudFormation-owned resource.
package branch_auth

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/amplify_utils"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/cdklogger"
)

// Stable physical id so stack updates re-run the call in place instead of
// replacing the resource.
const branchUpdatePhysicalID = "amplify-branch-update"

type BranchBasicAuthConfig struct {
	AppID       string `validate:"required"`
	BranchName  string `validate:"required"`
	Credentials string `validate:"required"`
}

// NewBranchBasicAuth issues Amplify UpdateBranch on create and on every
// update, enabling Basic-Auth with the bundle's credentials. The call is
// idempotent on the Amplify side; a failed call fails the deployment.
func NewBranchBasicAuth(scope constructs.Construct, id *string, config BranchBasicAuthConfig) customresources.AwsCustomResource {
	if err := validator.New().Struct(config); err != nil {
		panic(fmt.Errorf("invalid branch auth config: %w", err))
	}

	stack := awscdk.Stack_Of(scope)
	branchArn := amplify_utils.BranchARN(*stack.Region(), *stack.Account(), config.AppID, config.BranchName)

	updateBranch := &customresources.AwsSdkCall{
		Service: jsii.String("Amplify"),
		Action:  jsii.String("updateBranch"),
		Parameters: map[string]interface{}{
			"appId":                config.AppID,
			"branchName":           config.BranchName,
			"enableBasicAuth":      true,
			"basicAuthCredentials": config.Credentials,
		},
		PhysicalResourceId: customresources.PhysicalResourceId_Of(jsii.String(branchUpdatePhysicalID)),
	}

	resource := customresources.NewAwsCustomResource(scope, id, &customresources.AwsCustomResourceProps{
		OnCreate: updateBranch,
		OnUpdate: updateBranch,
		Policy: customresources.AwsCustomResourcePolicy_FromSdkCalls(&customresources.SdkCallsPolicyOptions{
			Resources: &[]*string{jsii.String(branchArn)},
		}),
	})

	cdklogger.LogInfo(scope, *id, "UpdateBranch scoped to %s", branchArn)

	return resource
}
