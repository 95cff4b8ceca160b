package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/flow"
	"github.com/velvetcue/harmonix/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HARMONIX_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ascending", c.Flow.Direction)
	assert.Equal(t, 0.0, c.Flow.BoundaryBPM)
	assert.Empty(t, c.Flow.Start)
	assert.Zero(t, c.Planner.ExactLimit)
	assert.Zero(t, c.Planner.SearchBudget)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[flow]\ndirection = \"wave\"\nboundary_bpm = 12.0\nstart = \"8A\"\n\n[planner]\nexact_limit = 10\nsearch_budget = 5000\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("HARMONIX_CONFIG", path)

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "wave", c.Flow.Direction)
	assert.Equal(t, 12.0, c.Flow.BoundaryBPM)
	assert.Equal(t, "8A", c.Flow.Start)
	assert.Equal(t, 10, c.Planner.ExactLimit)
	assert.Equal(t, 5000, c.Planner.SearchBudget)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HARMONIX_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("HARMONIX_FLOW_DIRECTION", "descending")
	t.Setenv("HARMONIX_PLANNER_SEARCH_BUDGET", "777")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "descending", c.Flow.Direction)
	assert.Equal(t, 777, c.Planner.SearchBudget)
}

func TestResolve_Valid(t *testing.T) {
	c := config.Config{
		Flow: config.FlowConfig{
			Direction:   "wave",
			BoundaryBPM: 8,
			Start:       "11b",
		},
		Planner: config.PlannerConfig{ExactLimit: 14, SearchBudget: 1000},
	}

	fc, err := c.Resolve()
	require.NoError(t, err)

	assert.Equal(t, flow.Wave, fc.Direction)
	assert.Equal(t, 8.0, fc.BoundaryBPM)
	assert.True(t, fc.ForceStart)
	assert.Equal(t, camelot.MustParse("11B"), fc.Start)
	assert.Equal(t, 14, fc.ExactLimit)
	assert.Equal(t, 1000, fc.SearchBudget)
}

func TestResolve_Invalid(t *testing.T) {
	cases := []struct {
		name string
		c    config.Config
	}{
		{"bad direction", config.Config{Flow: config.FlowConfig{Direction: "sideways"}}},
		{"negative boundary", config.Config{Flow: config.FlowConfig{Direction: "ascending", BoundaryBPM: -1}}},
		{"bad start", config.Config{Flow: config.FlowConfig{Direction: "ascending", Start: "13A"}}},
		{"exact limit above wheel", config.Config{
			Flow:    config.FlowConfig{Direction: "ascending"},
			Planner: config.PlannerConfig{ExactLimit: 30},
		}},
		{"negative exact limit", config.Config{
			Flow:    config.FlowConfig{Direction: "ascending"},
			Planner: config.PlannerConfig{ExactLimit: -1},
		}},
		{"negative search budget", config.Config{
			Flow:    config.FlowConfig{Direction: "ascending"},
			Planner: config.PlannerConfig{SearchBudget: -5},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.c.Resolve()
			assert.Error(t, err)
		})
	}
}
