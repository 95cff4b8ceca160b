// Package flow - end-to-end optimization entry point.
package flow

import (
	"github.com/velvetcue/harmonix/cluster"
	"github.com/velvetcue/harmonix/mix"
	"github.com/velvetcue/harmonix/planner"
)

// Optimize reorders tracks into a harmonic sequence under cfg.
//
// Pipeline: cluster by wheel position → plan the traversal → tempo-sort
// each cluster → assemble in path order. The output is a permutation of
// the input: same length, every track exactly once, no field mutated.
//
// Errors: cluster.ErrNoTracks on an empty batch, cluster.ErrInvalidKey
// on tracks that bypassed ingest validation, planner sentinels on a
// misconfigured start. Planner fallback and boundary violations are
// reported in the Result, not as errors.
//
// Complexity: dominated by the planner (see planner.Plan); clustering
// and assembly are O(n log n) in the track count.
func Optimize(tracks []mix.Track, cfg Config) (Result, error) {
	clusters, err := cluster.Build(tracks)
	if err != nil {
		return Result{}, err
	}

	// Occupied positions plus their populations for the tie-break.
	nodes := make([]planner.Node, len(clusters))
	for i, c := range clusters {
		nodes[i] = planner.Node{Position: c.Position, Weight: len(c.Tracks)}
	}

	popts := make([]planner.Option, 0, 3)
	if cfg.ExactLimit > 0 {
		popts = append(popts, planner.WithExactLimit(cfg.ExactLimit))
	}
	if cfg.SearchBudget > 0 {
		popts = append(popts, planner.WithSearchBudget(cfg.SearchBudget))
	}
	if cfg.ForceStart {
		popts = append(popts, planner.WithStart(cfg.Start))
	}

	plan, err := planner.Plan(nodes, popts...)
	if err != nil {
		return Result{}, err
	}

	// Arrange the clusters in path order; every occupied position is in
	// the path exactly once, so the lookup cannot miss.
	ordered := make([]cluster.Cluster, len(plan.Path))
	for i, p := range plan.Path {
		ordered[i] = clusters[clusters.Find(p)]
	}

	final, boundaries := assemble(ordered, cfg)

	return Result{
		Tracks:     final,
		Path:       plan.Path,
		Cost:       plan.Cost,
		Fallback:   plan.Fallback,
		Boundaries: boundaries,
	}, nil
}
