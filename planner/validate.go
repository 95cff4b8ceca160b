// Package planner - input validation and path predicates shared by the
// exact and heuristic solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - O(n²) worst case with n ≤ 24; no hidden allocations on hot paths.
package planner

import "github.com/velvetcue/harmonix/camelot"

// validateNodes verifies the occupied set and the options that refer to
// it. Returns the forced-start index (or -1) on success.
//
// Contract:
//   - nodes non-empty, positions valid and unique, weights non-negative.
//   - When opts.forceStart, the start must be one of the positions.
//
// Complexity: O(n) time, O(1) extra space (fixed-size seen table).
func validateNodes(nodes []Node, opts Options) (int, error) {
	if len(nodes) == 0 {
		return -1, ErrNoNodes
	}

	var (
		seen     [camelot.NumPositions]bool
		startIdx = -1
	)
	for i, nd := range nodes {
		if !nd.Position.Valid() || nd.Weight < 0 {
			return -1, ErrInvalidNode
		}
		if seen[nd.Position] {
			return -1, ErrDuplicateNode
		}
		seen[nd.Position] = true
		if opts.forceStart && nd.Position == opts.Start {
			startIdx = i
		}
	}
	if opts.forceStart && startIdx < 0 {
		return -1, ErrStartNotFound
	}

	return startIdx, nil
}

// ZigzagFree reports whether path satisfies the anti-zigzag property:
// every step to a position at harmonic distance > 1 happens only when no
// later (still unvisited at that step) position sits at distance 1 from
// the current one.
//
// The predicate is definitional, derived from the path alone: at step i
// the unvisited set is exactly path[i+1:].
//
// Complexity: O(n²) time, O(1) space; n ≤ 24.
func ZigzagFree(path []camelot.Position) bool {
	var i, j int
	for i = 0; i+1 < len(path); i++ {
		if camelot.Distance(path[i], path[i+1]) <= 1 {
			continue
		}
		// The step skipped; it is legal only if no remaining position was
		// directly compatible with path[i].
		for j = i + 1; j < len(path); j++ {
			if camelot.Distance(path[i], path[j]) == 1 {
				return false
			}
		}
	}

	return true
}

// PathCost sums the harmonic distance along consecutive positions.
// A singleton (or empty) path costs 0.
//
// Complexity: O(n).
func PathCost(path []camelot.Position) int {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		total += camelot.Distance(path[i], path[i+1])
	}

	return total
}
