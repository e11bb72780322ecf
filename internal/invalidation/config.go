package invalidation

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the handler's runtime configuration, injected through the
// function environment by the deploy trigger construct.
type Config struct {
	DistributionID string `env:"DISTRIBUTION_ID,required,notEmpty"`

	// AppID and BranchName narrow Matches beyond the EventBridge rule's own
	// filtering. Empty accepts any value, so a manually invoked handler
	// without them still behaves.
	AppID      string `env:"APP_ID"`
	BranchName string `env:"BRANCH_NAME"`
}

// LoadConfig parses the function environment once at cold start.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing handler environment: %w", err)
	}
	return cfg, nil
}
