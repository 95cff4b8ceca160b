// Package config loads run configuration for the harmonix CLI.
//
// Sources, lowest to highest precedence: built-in defaults, an optional
// TOML config file (HARMONIX_CONFIG or ~/.config/harmonix/config.toml),
// and HARMONIX_* environment variables. Command-line flags override the
// loaded values at the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/flow"
)

// Config holds the resolved run settings.
type Config struct {
	Flow    FlowConfig    `mapstructure:"flow"`
	Planner PlannerConfig `mapstructure:"planner"`
}

// FlowConfig holds sequencing settings.
type FlowConfig struct {
	// Direction is the tempo trajectory label (ascending/descending/wave).
	Direction string `mapstructure:"direction"`

	// BoundaryBPM is the soft tempo-jump ceiling between clusters; 0 off.
	BoundaryBPM float64 `mapstructure:"boundary_bpm"`

	// Start optionally pins the opening wheel position ("8A"); empty off.
	Start string `mapstructure:"start"`
}

// PlannerConfig holds path-search settings. Zero values keep the
// planner's own defaults.
type PlannerConfig struct {
	ExactLimit   int `mapstructure:"exact_limit"`
	SearchBudget int `mapstructure:"search_budget"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix HARMONIX_, e.g. HARMONIX_FLOW_DIRECTION=descending.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("flow.direction", "ascending")
	v.SetDefault("flow.boundary_bpm", 0.0)
	v.SetDefault("flow.start", "")
	v.SetDefault("planner.exact_limit", 0)
	v.SetDefault("planner.search_budget", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HARMONIX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "harmonix"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HARMONIX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Resolve validates the loaded values into an immutable flow.Config.
func (c Config) Resolve() (flow.Config, error) {
	out := flow.DefaultConfig()

	dir, err := flow.ParseDirection(c.Flow.Direction)
	if err != nil {
		return flow.Config{}, fmt.Errorf("flow.direction %q: %w", c.Flow.Direction, err)
	}
	out.Direction = dir

	if c.Flow.BoundaryBPM < 0 {
		return flow.Config{}, fmt.Errorf("flow.boundary_bpm must be non-negative, got %v", c.Flow.BoundaryBPM)
	}
	out.BoundaryBPM = c.Flow.BoundaryBPM

	if s := strings.TrimSpace(c.Flow.Start); s != "" {
		p, perr := camelot.Parse(s)
		if perr != nil {
			return flow.Config{}, fmt.Errorf("flow.start %q: %w", s, perr)
		}
		out.Start = p
		out.ForceStart = true
	}

	// Zero keeps the planner's own defaults; anything else must be a
	// value the planner accepts, since its options treat out-of-range
	// input as a programmer error.
	if n := c.Planner.ExactLimit; n != 0 && (n < 1 || n > camelot.NumPositions) {
		return flow.Config{}, fmt.Errorf("planner.exact_limit must be in [1, %d] or 0, got %d", camelot.NumPositions, n)
	}
	if n := c.Planner.SearchBudget; n < 0 {
		return flow.Config{}, fmt.Errorf("planner.search_budget must be non-negative, got %d", n)
	}
	out.ExactLimit = c.Planner.ExactLimit
	out.SearchBudget = c.Planner.SearchBudget

	return out, nil
}
