// Package harmonix turns an unordered bag of DJ tracks into a set that
// moves harmonically — neighbouring tracks share compatible keys and the
// tempo follows a chosen trajectory.
//
// 🚀 What is harmonix?
//
//	A small, deterministic sequencing toolkit built around the Camelot
//	wheel notation used by Mixed In Key, Rekordbox and Serato:
//		• camelot/  — the 24-position wheel: parsing, neighbours, distance
//		• cluster/  — group tracks by wheel position
//		• planner/  — minimal-clash route across occupied positions
//		              (exact branch-and-bound with a 2-opt fallback)
//		• flow/     — tempo ordering inside clusters + set assembly
//		• playlist/ — CSV/TSV ingest and export with soft warnings
//
// ✨ Why choose harmonix?
//
//   - Deterministic – identical input always yields the identical set
//   - Honest search – exact routes on realistic wheels, a labelled
//     heuristic when the search space or budget says otherwise
//   - Forgiving ingest – malformed rows are reported, never fatal
//
// Quick ASCII example:
//
//	8A───9A        three occupied positions; the planned route
//	 │             8B → 8A → 9A steps only between compatible
//	8B             keys, so every transition mixes cleanly.
//
// See cmd/harmonix for the command-line front end.
//
//	go get github.com/velvetcue/harmonix
package harmonix
