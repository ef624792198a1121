// Package config loads the console configuration from an optional YAML
// file and validates it against an embedded CUE schema, so malformed
// values are rejected with field-level positions before anything touches
// the database.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"labsched/internal/schedule"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the console's tunables. The resource count and schedule
// bounds are configuration, never constants: earlier labs ran three PCs,
// the current one runs twenty.
type Config struct {
	DataPath       string `yaml:"data_path" json:"data_path"`
	ResourcePrefix string `yaml:"resource_prefix" json:"resource_prefix"`
	ResourceCount  int    `yaml:"resource_count" json:"resource_count"`
	OpenHour       int    `yaml:"open_hour" json:"open_hour"`
	CloseHour      int    `yaml:"close_hour" json:"close_hour"`
}

// Default returns the stock configuration: twenty PCs, one-hour windows
// from 08:00 to 21:00.
func Default() Config {
	return Config{
		DataPath:       "labsched.db",
		ResourcePrefix: "PC",
		ResourceCount:  20,
		OpenHour:       8,
		CloseHour:      21,
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a present file overrides them key by key and must pass
// schema validation.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate unifies the configuration with the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid configuration:\n%s", cueerrors.Details(err, nil))
	}
	return nil
}

// Resources returns the configured resource identifiers.
func (c Config) Resources() []schedule.ResourceID {
	return schedule.Resources(c.ResourcePrefix, c.ResourceCount)
}

// Windows returns the configured daily schedule.
func (c Config) Windows() []schedule.TimeWindow {
	return schedule.Windows(c.OpenHour, c.CloseHour)
}
