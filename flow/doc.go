// Package flow assembles the final track sequence: it drives the
// cluster → path → sequence pipeline and owns the run configuration.
//
// Optimize is the end-to-end entry point. It groups the input tracks by
// wheel position (package cluster), plans a zigzag-free traversal over
// the occupied positions (package planner), orders each cluster by tempo
// in the configured direction, and concatenates the clusters in path
// order.
//
// Tempo handling:
//
//   - Ascending / Descending: every cluster is sorted the same way; ties
//     keep their input order (stable sort), so identical input yields an
//     identical sequence.
//   - Wave: cluster orientation alternates, shaping the energy curve the
//     way a warm-up/cool-down set does. With a boundary threshold
//     configured, each cluster picks the orientation that minimizes the
//     tempo jump across the boundary instead of blind alternation.
//
// Boundary smoothing is a soft preference: jumps larger than
// Config.BoundaryBPM are recorded in Result.Boundaries and the run still
// succeeds. Harmonic correctness - a permutation of the input walking the
// wheel without forbidden skips - is the hard guarantee.
package flow
