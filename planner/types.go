// Package planner - central types, sentinel errors, and options.
//
// Errors (sentinel):
//
//	– ErrNoNodes        if the occupied position set is empty.
//	– ErrInvalidNode    if a node carries an out-of-wheel position or a
//	                    negative weight.
//	– ErrDuplicateNode  if a position appears more than once.
//	– ErrStartNotFound  if a forced start is not among the nodes.
//
// Options:
//
//	– ExactLimit   - occupied-count ceiling for the exact search.
//	– SearchBudget - node-expansion budget for the exact search.
//	– Start        - optional forced start position.
//
// Budget exhaustion is not an error: the planner falls back to the
// heuristic pipeline and flags Result.Fallback.
package planner

import (
	"errors"

	"github.com/velvetcue/harmonix/camelot"
)

// Sentinel errors returned by the planner.
var (
	// ErrNoNodes indicates an empty occupied-position set.
	ErrNoNodes = errors.New("planner: no occupied positions")

	// ErrInvalidNode indicates a node with an out-of-wheel position or a
	// negative track weight.
	ErrInvalidNode = errors.New("planner: invalid node")

	// ErrDuplicateNode indicates the same position listed twice; clusters
	// are keyed by position, so duplicates are a caller bug.
	ErrDuplicateNode = errors.New("planner: duplicate position")

	// ErrStartNotFound indicates a forced start position that is not part
	// of the occupied set.
	ErrStartNotFound = errors.New("planner: start position not occupied")

	// ErrBadExactLimit indicates an ExactLimit outside [1, 24].
	ErrBadExactLimit = errors.New("planner: ExactLimit must be in [1, 24]")

	// ErrBadSearchBudget indicates a non-positive SearchBudget.
	ErrBadSearchBudget = errors.New("planner: SearchBudget must be positive")
)

// DefaultExactLimit is the occupied-count ceiling below which the exact
// Branch-and-Bound runs. Twelve positions keep the worst case far under
// the budget while covering the vast majority of real sets.
const DefaultExactLimit = 12

// DefaultSearchBudget is the default node-expansion budget of the exact
// search. Generous for ExactLimit-sized instances; the heuristic takes
// over if it ever runs out.
const DefaultSearchBudget = 250_000

// Node is one occupied wheel position plus its track count.
// Weight feeds the equal-cost tie-break (most-populous start first);
// the planner never looks at track contents.
type Node struct {
	// Position is the occupied wheel position.
	Position camelot.Position

	// Weight is the number of tracks at the position. Must be >= 0.
	Weight int
}

// Result is the planned traversal.
type Result struct {
	// Path lists every occupied position exactly once, in visit order.
	Path []camelot.Position

	// Cost is the total harmonic distance along the path.
	Cost int

	// Fallback reports that the heuristic pipeline produced the path,
	// either because the occupied count exceeded ExactLimit or because
	// the exact search exhausted its node budget.
	Fallback bool
}

// Options configures a planning run. Build with DefaultOptions and the
// With* functional options.
type Options struct {
	// ExactLimit is the occupied-count ceiling for the exact search.
	ExactLimit int

	// SearchBudget is the node-expansion budget for the exact search.
	SearchBudget int

	// Start forces the path to begin at a specific position.
	// Only honoured when forceStart is set via WithStart.
	Start camelot.Position

	forceStart bool
}

// Option is a functional option for configuring Plan.
type Option func(*Options)

// WithExactLimit overrides the exact-search ceiling.
// Panics on values outside [1, NumPositions]; invalid configuration is a
// programmer error, not runtime input.
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 1 || n > camelot.NumPositions {
			panic(ErrBadExactLimit.Error())
		}
		o.ExactLimit = n
	}
}

// WithSearchBudget overrides the exact-search node budget.
// Panics on non-positive values.
func WithSearchBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadSearchBudget.Error())
		}
		o.SearchBudget = n
	}
}

// WithStart forces the path to begin at p. Plan returns ErrStartNotFound
// when p is not among the nodes.
func WithStart(p camelot.Position) Option {
	return func(o *Options) {
		o.Start = p
		o.forceStart = true
	}
}

// DefaultOptions returns the planner defaults: exact search up to
// DefaultExactLimit positions with a DefaultSearchBudget node budget and
// no forced start.
func DefaultOptions() Options {
	return Options{
		ExactLimit:   DefaultExactLimit,
		SearchBudget: DefaultSearchBudget,
	}
}
