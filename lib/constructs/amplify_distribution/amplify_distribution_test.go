package amplify_distribution_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/constructs/amplify_distribution"
)

func testStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("eu-west-1"),
		},
	})
}

// TestAmplifyDistributionSynth checks the template carries the flattened
// origin domain and the exact Authorization header bytes.
func TestAmplifyDistributionSynth(t *testing.T) {
	stack := testStack()

	amplify_distribution.NewAmplifyDistribution(stack, jsii.String("Distribution"), amplify_distribution.AmplifyDistributionConfig{
		AppID:       "d2abc123",
		BranchName:  "feature/x",
		Credentials: "cmV2aWV3ZXI6czNjcmV0",
		Comment:     "twala-dev-ds-portal",
		WebACLArn:   jsii.String("arn:aws:wafv2:us-east-1:123456789012:global/webacl/twala/0000"),
	})

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Comment":    "twala-dev-ds-portal",
			"PriceClass": "PriceClass_All",
			"WebACLId":   "arn:aws:wafv2:us-east-1:123456789012:global/webacl/twala/0000",
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"ViewerProtocolPolicy": "redirect-to-https",
			}),
			"Origins": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"DomainName": "feature-x.d2abc123.amplifyapp.com",
					"OriginCustomHeaders": assertions.Match_ArrayWith(&[]interface{}{
						assertions.Match_ObjectLike(&map[string]interface{}{
							"HeaderName":  "Authorization",
							"HeaderValue": "Basic cmV2aWV3ZXI6czNjcmV0",
						}),
					}),
				}),
			}),
		}),
	})
}

// TestAmplifyDistributionSynth_NoWebACL ensures the attachment is simply
// absent on the first deployment of the two-phase flow.
func TestAmplifyDistributionSynth_NoWebACL(t *testing.T) {
	stack := testStack()

	amplify_distribution.NewAmplifyDistribution(stack, jsii.String("Distribution"), amplify_distribution.AmplifyDistributionConfig{
		AppID:       "d2abc123",
		BranchName:  "main",
		Credentials: "cmV2aWV3ZXI6czNjcmV0",
		Comment:     "twala-dev-ds-portal",
	})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"WebACLId": assertions.Match_Absent(),
		}),
	})
}

func TestAmplifyDistribution_IncompleteConfig(t *testing.T) {
	stack := testStack()

	require.Panics(t, func() {
		amplify_distribution.NewAmplifyDistribution(stack, jsii.String("Distribution"), amplify_distribution.AmplifyDistributionConfig{
			AppID:      "d2abc123",
			BranchName: "main",
		})
	})
}
