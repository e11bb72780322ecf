package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/twala-io/aws-cdk-amplify-with-waf/config"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/constructs/amplify_distribution"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/constructs/branch_auth"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/constructs/cache_invalidation"
)

type AmplifyDistributionStackProps struct {
	awscdk.StackProps
	Params    config.EnvironmentParams
	WebACLArn *string
}

type AmplifyDistributionStackExports struct {
	Stack        awscdk.Stack
	Distribution awscloudfront.Distribution
}

// AmplifyDistributionStack ties one environment together: Basic-Auth on the
// Amplify branch, the CloudFront distribution injecting that auth at the
// origin, and the deploy-triggered cache invalidation.
func AmplifyDistributionStack(scope constructs.Construct, id string, props *AmplifyDistributionStackProps) AmplifyDistributionStackExports {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)

	branch_auth.NewBranchBasicAuth(stack, jsii.String("BranchBasicAuth"), branch_auth.BranchBasicAuthConfig{
		AppID:       props.Params.AppID,
		BranchName:  props.Params.BranchName,
		Credentials: props.Params.Credentials,
	})

	distribution := amplify_distribution.NewAmplifyDistribution(stack, jsii.String("Distribution"), amplify_distribution.AmplifyDistributionConfig{
		AppID:       props.Params.AppID,
		BranchName:  props.Params.BranchName,
		Credentials: props.Params.Credentials,
		Comment:     props.Params.CloudFrontID,
		WebACLArn:   props.WebACLArn,
	})

	cache_invalidation.NewDeployTrigger(stack, jsii.String("DeployTrigger"), cache_invalidation.DeployTriggerConfig{
		AppID:          props.Params.AppID,
		BranchName:     props.Params.BranchName,
		DistributionID: distribution.DistributionId(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("oCloudFrontDistributionDomain"), &awscdk.CfnOutputProps{
		Value:       distribution.DistributionDomainName(),
		Description: jsii.String("Domain viewers use to reach the branch"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("oCloudFrontDistributionId"), &awscdk.CfnOutputProps{
		Value:       distribution.DistributionId(),
		Description: jsii.String("Distribution id for manual invalidations"),
	})

	return AmplifyDistributionStackExports{Stack: stack, Distribution: distribution}
}
