package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Registry maps environment ids to their bundles, loaded from a YAML file.
type Registry map[string]EnvironmentParams

// LoadRegistry reads an environments registry file. Unlike optional context
// keys, a configured registry path that cannot be read is an error.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading environments registry %s: %w", path, err)
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("unmarshalling environments registry %s: %w", path, err)
	}
	return reg, nil
}

// LookupEnvironment resolves the selected environment id to its bundle.
// A context object with the id as key wins; the registry file is consulted
// when the context has none. The returned bundle is fully validated.
func LookupEnvironment(scope constructs.Construct) (*EnvironmentParams, error) {
	envID, err := EnvironmentID(scope)
	if err != nil {
		return nil, err
	}

	if raw := scope.Node().TryGetContext(jsii.String(envID)); raw != nil {
		bundle, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("context %q must be an object, got %T", envID, raw)
		}
		return paramsFromContextMap(envID, bundle)
	}

	path := RegistryPath(scope)
	if path == "" {
		return nil, fmt.Errorf("%w %q: no context object with that key and no %q registry configured",
			ErrUnknownEnvironment, envID, RegistryContextKey)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		return nil, err
	}
	params, ok := reg[envID]
	if !ok {
		known := lo.Keys(reg)
		sort.Strings(known)
		return nil, fmt.Errorf("%w %q: registry %s defines %v", ErrUnknownEnvironment, envID, path, known)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("environment %q: %w", envID, err)
	}
	return &params, nil
}
