package stacks_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"

	"github.com/twala-io/aws-cdk-amplify-with-waf/stacks"
)

func TestWebAclStackSynth(t *testing.T) {
	app := awscdk.NewApp(nil)

	exports := stacks.WebAclStack(app, "TestWebAcl", &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	template := assertions.Template_FromStack(exports.Stack, nil)

	template.ResourceCountIs(jsii.String("AWS::WAFv2::WebACL"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::WAFv2::WebACL"), map[string]interface{}{
		"Scope": "CLOUDFRONT",
		"DefaultAction": assertions.Match_ObjectLike(&map[string]interface{}{
			"Allow": assertions.Match_AnyValue(),
		}),
		"Rules": assertions.Match_ArrayWith(&[]interface{}{
			assertions.Match_ObjectLike(&map[string]interface{}{
				"Name": "AWSManagedRulesCommonRuleSet",
			}),
		}),
	})
	template.HasOutput(jsii.String("oWebAclArn"), map[string]interface{}{
		"Value": assertions.Match_AnyValue(),
	})
}
