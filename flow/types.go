// Package flow - run configuration and result types.
//
// Errors (sentinel):
//
//	– ErrBadDirection     if a direction label cannot be parsed.
//	– cluster.ErrNoTracks surfaces from Optimize on empty input.
//
// Config is the resolved configuration of one run: immutable once built,
// owned by the assembler, read by the sequencer. Boundary violations and
// planner fallback are result fields, never errors.
package flow

import (
	"errors"
	"strings"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/mix"
)

// ErrBadDirection indicates an unrecognized tempo-direction label.
var ErrBadDirection = errors.New("flow: unknown tempo direction")

// Direction selects the tempo trajectory inside (and across) clusters.
type Direction uint8

const (
	// Ascending ramps energy up: every cluster sorted low → high BPM.
	Ascending Direction = iota

	// Descending ramps energy down: every cluster sorted high → low BPM.
	Descending

	// Wave alternates cluster orientation for a rolling energy curve.
	Wave
)

// String returns the canonical label of the direction.
func (d Direction) String() string {
	switch d {
	case Descending:
		return "descending"
	case Wave:
		return "wave"
	default:
		return "ascending"
	}
}

// ParseDirection maps a label onto a Direction. Accepted (any case):
// "ascending"/"asc"/"up", "descending"/"desc"/"down", "wave".
func ParseDirection(label string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "ascending", "asc", "up":
		return Ascending, nil
	case "descending", "desc", "down":
		return Descending, nil
	case "wave":
		return Wave, nil
	default:
		return Ascending, ErrBadDirection
	}
}

// Config is the resolved configuration for one optimization run.
type Config struct {
	// Direction is the tempo trajectory.
	Direction Direction

	// BoundaryBPM is the soft ceiling on the tempo jump between the last
	// track of one cluster and the first of the next. Zero disables the
	// check.
	BoundaryBPM float64

	// ExactLimit overrides the planner's exact-search ceiling when > 0.
	ExactLimit int

	// SearchBudget overrides the planner's node budget when > 0.
	SearchBudget int

	// Start pins the path's first position when ForceStart is set.
	Start      camelot.Position
	ForceStart bool
}

// DefaultConfig returns the run defaults: ascending tempo, smoothing off,
// planner defaults untouched.
func DefaultConfig() Config {
	return Config{Direction: Ascending}
}

// Boundary records one soft smoothing violation: the tempo jump between
// two adjacent clusters exceeded Config.BoundaryBPM.
type Boundary struct {
	// From/To are the wheel positions on either side of the boundary.
	From camelot.Position
	To   camelot.Position

	// FromID/ToID identify the adjacent tracks.
	FromID string
	ToID   string

	// Delta is the absolute BPM difference across the boundary.
	Delta float64

	// Index is the output position of the first track after the boundary.
	Index int
}

// Result is the outcome of one optimization run.
type Result struct {
	// Tracks is the final sequence: a permutation of the input.
	Tracks []mix.Track

	// Path is the planned traversal over the occupied positions.
	Path []camelot.Position

	// Cost is the total harmonic distance along Path.
	Cost int

	// Fallback reports that the planner used its heuristic pipeline.
	Fallback bool

	// Boundaries lists the soft smoothing violations, in output order.
	Boundaries []Boundary
}
