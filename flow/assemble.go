// Package flow - assembly of the final sequence.
//
// The assembler walks the clusters in path order, fixes each cluster's
// orientation, sorts it with Sequence, and concatenates the results.
// Boundary smoothing never changes the path and never fails the run: an
// oversized tempo jump is recorded and the assembly proceeds.
package flow

import (
	"math"

	"github.com/velvetcue/harmonix/cluster"
	"github.com/velvetcue/harmonix/mix"
)

// assemble concatenates the clusters in path order under cfg.
// ordered must be non-empty and already arranged by the planner's path.
func assemble(ordered []cluster.Cluster, cfg Config) ([]mix.Track, []Boundary) {
	var (
		out        = make([]mix.Track, 0, totalTracks(ordered))
		violations []Boundary
		prevAsc    bool
	)

	for i, c := range ordered {
		asc := orientation(cfg, i, prevAsc, out, c)
		sorted := Sequence(c.Tracks, asc)

		// Soft boundary check against the previous cluster's tail.
		if i > 0 && cfg.BoundaryBPM > 0 && len(out) > 0 && len(sorted) > 0 {
			var (
				prev  = out[len(out)-1]
				next  = sorted[0]
				delta = math.Abs(next.BPM - prev.BPM)
			)
			if delta > cfg.BoundaryBPM {
				violations = append(violations, Boundary{
					From:   ordered[i-1].Position,
					To:     c.Position,
					FromID: prev.ID,
					ToID:   next.ID,
					Delta:  delta,
					Index:  len(out),
				})
			}
		}

		out = append(out, sorted...)
		prevAsc = asc
	}

	return out, violations
}

// orientation decides the tempo direction of cluster i.
//
// Ascending/Descending fix every cluster; per-cluster monotonicity in
// the configured direction is part of the output contract. Wave
// alternates, and when a boundary threshold is active it instead picks
// the orientation with the smaller tempo jump (alternation breaks ties).
func orientation(cfg Config, i int, prevAsc bool, out []mix.Track, c cluster.Cluster) bool {
	switch cfg.Direction {
	case Descending:
		return false
	case Wave:
		// First cluster opens ascending by convention.
		if i == 0 {
			return true
		}
		alt := !prevAsc
		if cfg.BoundaryBPM <= 0 || len(out) == 0 || len(c.Tracks) == 0 {
			return alt
		}

		// Jump-minimizing orientation: ascending starts at the cluster's
		// minimum BPM, descending at its maximum.
		var (
			prevBPM = out[len(out)-1].BPM
			low     = Sequence(c.Tracks, true)[0].BPM
			high    = Sequence(c.Tracks, false)[0].BPM
			dAsc    = math.Abs(low - prevBPM)
			dDesc   = math.Abs(high - prevBPM)
		)
		if dAsc < dDesc {
			return true
		}
		if dDesc < dAsc {
			return false
		}

		return alt
	default:
		return true
	}
}

// totalTracks sums cluster sizes for one exact allocation.
func totalTracks(cs []cluster.Cluster) int {
	n := 0
	for _, c := range cs {
		n += len(c.Tracks)
	}

	return n
}
