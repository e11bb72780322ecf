// Package amplify_utils derives Amplify-hosting values shared by the
// distribution and branch-auth constructs.
package amplify_utils

import (
	"fmt"
	"net/url"
	"strings"
)

const AppDomainSuffix = "amplifyapp.com"

// OriginDomain returns the public hostname Amplify serves a branch on.
// Branch separators are flattened: Amplify exposes "feature/x" as "feature-x".
func OriginDomain(appID, branchName string) string {
	formatted := strings.ReplaceAll(branchName, "/", "-")
	return fmt.Sprintf("%s.%s.%s", formatted, appID, AppDomainSuffix)
}

// BasicAuthHeader builds the Authorization header value from a precomputed
// base64 user:password blob. The blob is passed through untouched so the
// header matches the credentials Amplify itself validates.
func BasicAuthHeader(credentials string) string {
	return "Basic " + credentials
}

// BranchARN returns the ARN of an Amplify branch. The branch segment is
// percent-encoded, not flattened: IAM sees "feature/x" as "feature%2Fx".
func BranchARN(region, account, appID, branchName string) string {
	return fmt.Sprintf("arn:aws:amplify:%s:%s:apps/%s/branches/%s",
		region, account, appID, url.PathEscape(branchName))
}
