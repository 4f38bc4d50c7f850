package config

import (
	"fmt"

	"github.com/yndnr/snaptree-go/internal/infra/confloader"
)

// Load layers the file at path (optional) and SNAPTREE_* environment
// variables over the defaults, then verifies the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	var opts []confloader.Option
	if path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
