// Package config resolves the deployment context for the Amplify
// distribution app: which environment bundle to synthesize, where the
// optional Web ACL lives, and where bundles are kept.
package config

import (
	"errors"
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

const (
	// SelectorContextKey names the environment bundle to synthesize.
	SelectorContextKey = "config"

	// WebACLArnContextKey optionally carries the ARN of an already deployed
	// CLOUDFRONT-scope Web ACL. Absent means the distribution ships without
	// one; the ACL stack is deployed first and its output fed back here.
	WebACLArnContextKey = "webAclArn"

	// RegistryContextKey optionally points at a YAML file mapping environment
	// ids to bundles, keeping credentials out of cdk.json.
	RegistryContextKey = "environments"
)

var (
	ErrMissingSelector    = errors.New("missing required context key")
	ErrUnknownEnvironment = errors.New("unknown environment")
)

// EnvironmentID returns the environment id selected for this synthesis.
// Absence is an error, not a default: every deployment of this app is tied to
// one named environment.
func EnvironmentID(scope constructs.Construct) (string, error) {
	raw := scope.Node().TryGetContext(jsii.String(SelectorContextKey))
	if raw == nil {
		return "", fmt.Errorf("%w %q: pass -c %s=twala-<env>-ds-<project-name>",
			ErrMissingSelector, SelectorContextKey, SelectorContextKey)
	}
	id, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("context %q must be a string, got %T", SelectorContextKey, raw)
	}
	return id, nil
}

// WebACLArn returns the Web ACL ARN from context, or nil when none is
// configured.
func WebACLArn(scope constructs.Construct) *string {
	raw := scope.Node().TryGetContext(jsii.String(WebACLArnContextKey))
	if v, ok := raw.(string); ok && v != "" {
		return jsii.String(v)
	}
	return nil
}

// RegistryPath returns the configured environments registry file path, or ""
// when bundles live directly in context.
func RegistryPath(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String(RegistryContextKey))
	if v, ok := raw.(string); ok {
		return v
	}
	return ""
}

// WebAclStackName derives the ACL stack name from the environment id. The
// distribution stack name comes from the bundle instead, since teams keep
// existing naming there.
func WebAclStackName(envID string) string {
	return envID + "-web-acl"
}
