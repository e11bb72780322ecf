// Package amplify_distribution fronts an Amplify-hosted branch with a
// CloudFront distribution that injects the branch's Basic-Auth header at the
// origin, so only CloudFront-routed traffic reaches the app.
package amplify_distribution

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/amplify_utils"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/cdklogger"
)

type AmplifyDistributionConfig struct {
	AppID       string `validate:"required"`
	BranchName  string `validate:"required"`
	Credentials string `validate:"required"`
	// Comment labels the distribution in the CloudFront console; operators
	// find distributions by this, so it carries the environment id.
	Comment string `validate:"required"`
	// WebACLArn attaches an existing CLOUDFRONT-scope ACL. Nil skips the
	// attachment for the first deployment of the two-phase flow.
	WebACLArn *string
}

// NewAmplifyDistribution declares the distribution for one branch. Viewers
// are redirected to HTTPS; the origin request carries the Authorization
// header Amplify expects once Basic-Auth is enabled on the branch.
func NewAmplifyDistribution(scope constructs.Construct, id *string, config AmplifyDistributionConfig) awscloudfront.Distribution {
	if err := validator.New().Struct(config); err != nil {
		panic(fmt.Errorf("invalid distribution config: %w", err))
	}

	originDomain := amplify_utils.OriginDomain(config.AppID, config.BranchName)

	distribution := awscloudfront.NewDistribution(scope, id, &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewHttpOrigin(jsii.String(originDomain), &awscloudfrontorigins.HttpOriginProps{
				CustomHeaders: &map[string]*string{
					"Authorization": jsii.String(amplify_utils.BasicAuthHeader(config.Credentials)),
				},
			}),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		PriceClass: awscloudfront.PriceClass_PRICE_CLASS_ALL,
		Comment:    jsii.String(config.Comment),
		WebAclId:   config.WebACLArn,
	})

	cdklogger.LogInfo(scope, *id, "Fronting %s with Basic-Auth header injection", originDomain)
	if config.WebACLArn == nil {
		cdklogger.LogWarning(scope, *id, "No Web ACL attached; deploy the ACL stack and pass -c webAclArn=<arn>")
	}

	return distribution
}
