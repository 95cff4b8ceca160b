// Package planner - unified dispatcher and shared search instance.
//
// Plan is the canonical entry point: validate the occupied set, build a
// dense instance (prefetched distances, deterministic neighbour orders,
// start preferences), then route to the exact Branch-and-Bound or the
// heuristic pipeline.
//
// Design principles:
//   - Deterministic: fixed tie-breaks, no randomness, no time-based
//     decisions - identical input yields an identical path.
//   - Strict sentinels: only errors from types.go.
//   - Hot-path discipline: distances prefetched into a flat buffer once;
//     solvers never call back into the wheel tables.
package planner

import (
	"sort"

	"github.com/velvetcue/harmonix/camelot"
)

// Plan orders the occupied positions into a zigzag-free Hamiltonian path
// of minimal total harmonic distance (exact within Options.ExactLimit,
// heuristic beyond it or on budget exhaustion).
//
// Guarantees:
//   - Result.Path contains every input position exactly once.
//   - ZigzagFree(Result.Path) holds.
//   - Equal-cost paths tie-break on start: most tracks first, then the
//     lowest Camelot number, then the A ring.
//   - A singleton set yields the trivial singleton path, not an error.
//
// Errors: validation sentinels only; budget exhaustion sets
// Result.Fallback instead of failing.
//
// Complexity: exact search worst-case exponential in n (n ≤ ExactLimit,
// hard-capped by the node budget); heuristic O(n³) for the 2-opt passes;
// n ≤ 24 throughout.
func Plan(nodes []Node, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if _, err := validateNodes(nodes, o); err != nil {
		return Result{}, err
	}

	inst := newInstance(nodes, o)

	// Trivial walk: one occupied position.
	if inst.n == 1 {
		return Result{Path: []camelot.Position{inst.pos[0]}}, nil
	}

	// Exact search while the instance fits the ceiling.
	if inst.n <= o.ExactLimit {
		res, exhausted := inst.exact(o.SearchBudget)
		if !exhausted {
			return res, nil
		}

		// Budget ran out: heuristic fallback. Keep the exact incumbent
		// when it is at least as good - both candidates are deterministic.
		heur := inst.heuristic()
		heur.Fallback = true
		if res.Path != nil && res.Cost <= heur.Cost {
			res.Fallback = true

			return res, nil
		}

		return heur, nil
	}

	// Beyond the ceiling the exact search is out of budget by definition.
	heur := inst.heuristic()
	heur.Fallback = true

	return heur, nil
}

// instance is the prepared search problem shared by both solvers.
//
// Nodes are canonicalized into ascending position order, so index order
// is independent of caller order and every downstream tie-break on
// "lowest index" means "lowest wheel position".
type instance struct {
	n      int                // occupied count
	pos    []camelot.Position // index -> position, ascending
	weight []int              // index -> track count
	w      []int              // dense distances, w[u*n+v]
	order  [][]int            // per u: v≠u sorted by (distance, index)
	starts []int              // candidate start indices, preference order
}

// at is the flat distance accessor used in all hot loops.
func (in *instance) at(u, v int) int { return in.w[u*in.n+v] }

// newInstance canonicalizes nodes and precomputes the dense distance
// buffer, per-vertex branching orders, and the start preference list.
//
// Complexity: O(n² log n).
func newInstance(nodes []Node, o Options) *instance {
	in := &instance{n: len(nodes)}

	// Canonical ascending-position order.
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	in.pos = make([]camelot.Position, in.n)
	in.weight = make([]int, in.n)
	for i, nd := range sorted {
		in.pos[i] = nd.Position
		in.weight[i] = nd.Weight
	}

	// Dense distance prefetch: one wheel lookup per pair, then flat reads.
	in.w = make([]int, in.n*in.n)
	var u, v int
	for u = 0; u < in.n; u++ {
		for v = 0; v < in.n; v++ {
			in.w[u*in.n+v] = camelot.Distance(in.pos[u], in.pos[v])
		}
	}

	// Deterministic branching order per vertex: ascending distance, then
	// ascending index. Keeps both solvers reproducible.
	in.order = make([][]int, in.n)
	for u = 0; u < in.n; u++ {
		row := make([]int, 0, in.n-1)
		for v = 0; v < in.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		uu := u
		sort.Slice(row, func(i, j int) bool {
			wi, wj := in.at(uu, row[i]), in.at(uu, row[j])
			if wi == wj {
				return row[i] < row[j]
			}

			return wi < wj
		})
		in.order[u] = row
	}

	// Start preference: forced start wins outright; otherwise heaviest
	// cluster first, index (= wheel position) ascending on ties.
	if o.forceStart {
		for i := range in.pos {
			if in.pos[i] == o.Start {
				in.starts = []int{i}
				break
			}
		}

		return in
	}
	in.starts = make([]int, in.n)
	for i := range in.starts {
		in.starts[i] = i
	}
	sort.Slice(in.starts, func(i, j int) bool {
		a, b := in.starts[i], in.starts[j]
		if in.weight[a] != in.weight[b] {
			return in.weight[a] > in.weight[b]
		}

		return a < b
	})

	return in
}

// toPositions converts an index path into wheel positions.
func (in *instance) toPositions(idx []int) []camelot.Position {
	out := make([]camelot.Position, len(idx))
	for i, u := range idx {
		out[i] = in.pos[u]
	}

	return out
}
