package main

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/twala-io/aws-cdk-amplify-with-waf/config"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/utils"
	"github.com/twala-io/aws-cdk-amplify-with-waf/stacks"
)

func main() {
	app := awscdk.NewApp(nil)

	// Resolve the environment before declaring anything: a bad selector must
	// not synthesize a partial assembly.
	envID, err := config.EnvironmentID(app)
	if err != nil {
		panic(err)
	}
	params, err := config.LookupEnvironment(app)
	if err != nil {
		panic(err)
	}

	// CLOUDFRONT-scope ACLs only exist in us-east-1.
	aclEnv := utils.CdkEnv()
	aclEnv.Region = jsii.String("us-east-1")
	stacks.WebAclStack(app, config.WebAclStackName(envID), &awscdk.StackProps{
		Env:         aclEnv,
		Description: jsii.String(fmt.Sprintf("Web ACL for the %s distribution", envID)),
	})

	stacks.AmplifyDistributionStack(app, params.DistributionStackName, &stacks.AmplifyDistributionStackProps{
		StackProps: awscdk.StackProps{
			Env:         utils.CdkEnv(),
			Description: jsii.String(fmt.Sprintf("CloudFront distribution fronting Amplify branch %s of %s", params.BranchName, params.AppID)),
		},
		Params:    *params,
		WebACLArn: config.WebACLArn(app),
	})

	app.Synth(nil)
}
