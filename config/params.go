package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// EnvironmentParams is one deployable environment of the web app. Every field
// is required; there are no defaults, so a half-filled bundle fails at synth
// rather than at deploy.
//
// Credentials is the precomputed base64 "user:password" blob. It is applied
// to the Amplify branch and injected into the origin request header from the
// same field, so rotating it rotates both sides together. Username and
// Password stay alongside it for operator tooling (smoke tests, runbooks).
type EnvironmentParams struct {
	AppID                 string `mapstructure:"app_id" yaml:"app_id" validate:"required"`
	BranchName            string `mapstructure:"branch_name" yaml:"branch_name" validate:"required"`
	Username              string `mapstructure:"username" yaml:"username" validate:"required"`
	Password              string `mapstructure:"password" yaml:"password" validate:"required"`
	Credentials           string `mapstructure:"credentials" yaml:"credentials" validate:"required"`
	CloudFrontID          string `mapstructure:"cloudfront_id" yaml:"cloudfront_id" validate:"required"`
	DistributionStackName string `mapstructure:"distribution_stack_name" yaml:"distribution_stack_name" validate:"required"`
}

var paramsValidator = validator.New()

// Validate reports the first missing field of the bundle.
func (p *EnvironmentParams) Validate() error {
	if err := paramsValidator.Struct(p); err != nil {
		return fmt.Errorf("incomplete environment bundle: %w", err)
	}
	return nil
}

func paramsFromContextMap(envID string, raw map[string]interface{}) (*EnvironmentParams, error) {
	var params EnvironmentParams
	if err := mapstructure.Decode(raw, &params); err != nil {
		return nil, fmt.Errorf("decoding context object %q: %w", envID, err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("environment %q: %w", envID, err)
	}
	return &params, nil
}
