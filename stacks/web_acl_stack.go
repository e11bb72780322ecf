package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awswafv2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type WebAclStackExports struct {
	Stack  awscdk.Stack
	WebACL awswafv2.CfnWebACL
}

// WebAclStack declares the CLOUDFRONT-scope Web ACL. CloudFront only accepts
// ACLs living in us-east-1, so the caller pins the stack env there. The ARN
// is an output, not a cross-stack reference: the distribution may deploy to
// another region, and the ACL attaches by ARN through the webAclArn context
// key on a later deployment.
func WebAclStack(scope constructs.Construct, id string, props *awscdk.StackProps) WebAclStackExports {
	stack := awscdk.NewStack(scope, jsii.String(id), props)

	webACL := awswafv2.NewCfnWebACL(stack, jsii.String("WebACL"), &awswafv2.CfnWebACLProps{
		Scope: jsii.String("CLOUDFRONT"),
		DefaultAction: &awswafv2.CfnWebACL_DefaultActionProperty{
			Allow: &awswafv2.CfnWebACL_AllowActionProperty{},
		},
		VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
			CloudWatchMetricsEnabled: jsii.Bool(true),
			MetricName:               jsii.String("twala-web-acl"),
			SampledRequestsEnabled:   jsii.Bool(true),
		},
		Rules: []interface{}{
			&awswafv2.CfnWebACL_RuleProperty{
				Name:     jsii.String("AWSManagedRulesCommonRuleSet"),
				Priority: jsii.Number(0),
				OverrideAction: &awswafv2.CfnWebACL_OverrideActionProperty{
					None: map[string]interface{}{},
				},
				Statement: &awswafv2.CfnWebACL_StatementProperty{
					ManagedRuleGroupStatement: &awswafv2.CfnWebACL_ManagedRuleGroupStatementProperty{
						VendorName: jsii.String("AWS"),
						Name:       jsii.String("AWSManagedRulesCommonRuleSet"),
					},
				},
				VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
					CloudWatchMetricsEnabled: jsii.Bool(true),
					MetricName:               jsii.String("twala-common-rule-set"),
					SampledRequestsEnabled:   jsii.Bool(true),
				},
			},
		},
	})

	awscdk.NewCfnOutput(stack, jsii.String("oWebAclArn"), &awscdk.CfnOutputProps{
		Value:       webACL.AttrArn(),
		Description: jsii.String("Pass as -c webAclArn= when deploying the distribution stack"),
	})

	return WebAclStackExports{Stack: stack, WebACL: webACL}
}
