// Package planner orders the occupied wheel positions of a playlist into
// a harmonic walk: a Hamiltonian path over the induced subgraph of the
// 24-position wheel that visits every occupied position exactly once.
//
// Two solvers share the work:
//
//   - Exact: depth-first Branch-and-Bound over zigzag-constrained
//     Hamiltonian paths, pruning by an admissible entry-cost relaxation
//     against the best complete path found. Used while the occupied count
//     stays within ExactLimit and the node budget lasts.
//   - Heuristic: deterministic nearest-neighbour construction followed by
//     first-improvement 2-opt passes that never raise total cost and never
//     break the anti-zigzag property. Used beyond ExactLimit or when the
//     exact search exhausts its budget (reported via Result.Fallback,
//     never as an error).
//
// The anti-zigzag rule is structural in both solvers: a step to a
// position at distance > 1 is admitted only when no unvisited distance-1
// neighbour of the current position remains. ZigzagFree exposes the same
// predicate for validation and tests.
//
// Determinism: identical input yields an identical path. Tie-breaks are
// fixed - equal-cost paths prefer the start with the most tracks, then
// the lowest Camelot number, then the A ring - and no randomness is used
// anywhere.
//
// Worst case is bounded by the wheel itself: at most 24 occupied
// positions, with the exact solver capped harder via ExactLimit.
package planner
