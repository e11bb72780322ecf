package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/stretchr/testify/require"
)

func appWithContext(ctx map[string]interface{}) awscdk.App {
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}

func contextBundle() map[string]interface{} {
	return map[string]interface{}{
		"app_id":                  "d2abc123",
		"branch_name":             "feature/x",
		"username":                "reviewer",
		"password":                "s3cret",
		"credentials":             "cmV2aWV3ZXI6czNjcmV0",
		"cloudfront_id":           "twala-dev-ds-portal",
		"distribution_stack_name": "twala-dev-ds-portal-distribution",
	}
}

// TestLookupEnvironment_MissingSelector ensures synthesis cannot proceed
// without naming an environment.
func TestLookupEnvironment_MissingSelector(t *testing.T) {
	app := appWithContext(map[string]interface{}{})

	_, err := LookupEnvironment(app)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingSelector)
	require.ErrorContains(t, err, SelectorContextKey)
}

func TestLookupEnvironment_FromContext(t *testing.T) {
	app := appWithContext(map[string]interface{}{
		SelectorContextKey:   "twala-dev-ds-portal",
		"twala-dev-ds-portal": contextBundle(),
	})

	params, err := LookupEnvironment(app)
	require.NoError(t, err)
	require.Equal(t, "d2abc123", params.AppID)
	require.Equal(t, "feature/x", params.BranchName)
	require.Equal(t, "twala-dev-ds-portal-distribution", params.DistributionStackName)
}

func TestLookupEnvironment_IncompleteContextBundle(t *testing.T) {
	bundle := contextBundle()
	delete(bundle, "password")
	app := appWithContext(map[string]interface{}{
		SelectorContextKey:   "twala-dev-ds-portal",
		"twala-dev-ds-portal": bundle,
	})

	_, err := LookupEnvironment(app)
	require.Error(t, err)
	require.ErrorContains(t, err, "incomplete environment bundle")
}

func TestLookupEnvironment_FromRegistry(t *testing.T) {
	registry := `twala-stg-ds-portal:
  app_id: d2abc123
  branch_name: staging
  username: reviewer
  password: s3cret
  credentials: cmV2aWV3ZXI6czNjcmV0
  cloudfront_id: twala-stg-ds-portal
  distribution_stack_name: twala-stg-ds-portal-distribution
`
	path := filepath.Join(t.TempDir(), "environments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(registry), 0o600))

	app := appWithContext(map[string]interface{}{
		SelectorContextKey: "twala-stg-ds-portal",
		RegistryContextKey: path,
	})

	params, err := LookupEnvironment(app)
	require.NoError(t, err)
	require.Equal(t, "staging", params.BranchName)
	require.Equal(t, "twala-stg-ds-portal", params.CloudFrontID)
}

// TestLookupEnvironment_UnknownID ensures the error names the ids the
// registry does define, so a typo is visible at a glance.
func TestLookupEnvironment_UnknownID(t *testing.T) {
	registry := `twala-stg-ds-portal:
  app_id: d2abc123
  branch_name: staging
  username: reviewer
  password: s3cret
  credentials: cmV2aWV3ZXI6czNjcmV0
  cloudfront_id: twala-stg-ds-portal
  distribution_stack_name: twala-stg-ds-portal-distribution
`
	path := filepath.Join(t.TempDir(), "environments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(registry), 0o600))

	app := appWithContext(map[string]interface{}{
		SelectorContextKey: "twala-prd-ds-portal",
		RegistryContextKey: path,
	})

	_, err := LookupEnvironment(app)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownEnvironment)
	require.ErrorContains(t, err, "twala-stg-ds-portal")
}

func TestLookupEnvironment_NoBundleAnywhere(t *testing.T) {
	app := appWithContext(map[string]interface{}{
		SelectorContextKey: "twala-dev-ds-portal",
	})

	_, err := LookupEnvironment(app)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestWebACLArn(t *testing.T) {
	require.Nil(t, WebACLArn(appWithContext(map[string]interface{}{})))

	arn := "arn:aws:wafv2:us-east-1:123456789012:global/webacl/twala/0000"
	got := WebACLArn(appWithContext(map[string]interface{}{WebACLArnContextKey: arn}))
	require.NotNil(t, got)
	require.Equal(t, arn, *got)
}
