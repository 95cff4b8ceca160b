// Package planner_test exercises the dispatcher through the public API.
// Focus: validation sentinels, optimality on hand-checked instances,
// deterministic tie-breaking, and clean fallback behaviour.
package planner_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/planner"
)

// nodesOf builds unit-weight nodes from Camelot labels.
func nodesOf(labels ...string) []planner.Node {
	out := make([]planner.Node, len(labels))
	for i, l := range labels {
		out[i] = planner.Node{Position: camelot.MustParse(l), Weight: 1}
	}

	return out
}

// pathLabels renders a path for failure messages and comparisons.
func pathLabels(path []camelot.Position) []string {
	out := make([]string, len(path))
	for i, p := range path {
		out[i] = p.String()
	}

	return out
}

// requirePermutation fails unless the path visits exactly the given set.
func requirePermutation(t *testing.T, path []camelot.Position, nodes []planner.Node) {
	t.Helper()
	if len(path) != len(nodes) {
		t.Fatalf("path length %d, want %d (%v)", len(path), len(nodes), pathLabels(path))
	}
	seen := map[camelot.Position]int{}
	for _, p := range path {
		seen[p]++
	}
	for _, nd := range nodes {
		if seen[nd.Position] != 1 {
			t.Fatalf("position %s visited %d times in %v", nd.Position, seen[nd.Position], pathLabels(path))
		}
	}
}

func TestPlan_ValidationSentinels(t *testing.T) {
	if _, err := planner.Plan(nil); !errors.Is(err, planner.ErrNoNodes) {
		t.Fatalf("empty set: got %v, want ErrNoNodes", err)
	}

	dup := nodesOf("8A", "9A", "8A")
	if _, err := planner.Plan(dup); !errors.Is(err, planner.ErrDuplicateNode) {
		t.Fatalf("duplicate: got %v, want ErrDuplicateNode", err)
	}

	bad := []planner.Node{{Position: camelot.Position(camelot.NumPositions), Weight: 1}}
	if _, err := planner.Plan(bad); !errors.Is(err, planner.ErrInvalidNode) {
		t.Fatalf("invalid position: got %v, want ErrInvalidNode", err)
	}

	neg := []planner.Node{{Position: camelot.MustParse("8A"), Weight: -1}}
	if _, err := planner.Plan(neg); !errors.Is(err, planner.ErrInvalidNode) {
		t.Fatalf("negative weight: got %v, want ErrInvalidNode", err)
	}

	_, err := planner.Plan(nodesOf("8A", "9A"), planner.WithStart(camelot.MustParse("3B")))
	if !errors.Is(err, planner.ErrStartNotFound) {
		t.Fatalf("foreign start: got %v, want ErrStartNotFound", err)
	}
}

func TestPlan_SingletonTrivial(t *testing.T) {
	res, err := planner.Plan(nodesOf("4B"))
	if err != nil {
		t.Fatalf("Plan(singleton) error: %v", err)
	}
	if len(res.Path) != 1 || res.Path[0] != camelot.MustParse("4B") {
		t.Fatalf("singleton path: %v", pathLabels(res.Path))
	}
	if res.Cost != 0 || res.Fallback {
		t.Fatalf("singleton result: cost=%d fallback=%v", res.Cost, res.Fallback)
	}
}

// TestPlan_ThreeClusterScenario covers the canonical {8A, 9A, 8B} set.
// The only zero-clash walks pass through 8A in the middle; the planner
// must find one of them (cost 2) and pick the 8B start deterministically.
func TestPlan_ThreeClusterScenario(t *testing.T) {
	nodes := nodesOf("8A", "9A", "8B")
	res, err := planner.Plan(nodes)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	requirePermutation(t, res.Path, nodes)
	if res.Cost != 2 {
		t.Fatalf("cost = %d, want 2 (%v)", res.Cost, pathLabels(res.Path))
	}
	if !planner.ZigzagFree(res.Path) {
		t.Fatalf("path has a forbidden skip: %v", pathLabels(res.Path))
	}
	if got := pathLabels(res.Path); !slices.Equal(got, []string{"8B", "8A", "9A"}) {
		t.Fatalf("tie-break changed: got %v, want [8B 8A 9A]", got)
	}
	if res.Fallback {
		t.Fatalf("exact instance flagged as fallback")
	}
}

// TestPlan_ExactBeatsGreedyStart an instance where the best walk does not
// start from the lowest position: 1B must open so the A-ring chain stays
// unbroken.
func TestPlan_ExactBeatsGreedyStart(t *testing.T) {
	nodes := nodesOf("1A", "2A", "3A", "1B")
	res, err := planner.Plan(nodes)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if res.Cost != 3 {
		t.Fatalf("cost = %d, want 3 (%v)", res.Cost, pathLabels(res.Path))
	}
	if got := pathLabels(res.Path); !slices.Equal(got, []string{"1B", "1A", "2A", "3A"}) {
		t.Fatalf("path: got %v, want [1B 1A 2A 3A]", got)
	}
}

// TestPlan_HeaviestStartTieBreak equal-cost walks prefer the start with
// the most tracks.
func TestPlan_HeaviestStartTieBreak(t *testing.T) {
	nodes := []planner.Node{
		{Position: camelot.MustParse("1A"), Weight: 1},
		{Position: camelot.MustParse("2A"), Weight: 5},
	}
	res, err := planner.Plan(nodes)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if got := pathLabels(res.Path); !slices.Equal(got, []string{"2A", "1A"}) {
		t.Fatalf("heaviest start lost the tie: %v", got)
	}
}

func TestPlan_ForcedStart(t *testing.T) {
	nodes := nodesOf("8A", "9A", "8B")
	res, err := planner.Plan(nodes, planner.WithStart(camelot.MustParse("9A")))
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if res.Path[0] != camelot.MustParse("9A") {
		t.Fatalf("forced start ignored: %v", pathLabels(res.Path))
	}
	requirePermutation(t, res.Path, nodes)
}

// TestPlan_Determinism identical input (in any caller order) yields an
// identical path across repeated runs.
func TestPlan_Determinism(t *testing.T) {
	labels := []string{"3A", "11B", "5A", "4A", "4B", "12A", "6B"}
	nodes := nodesOf(labels...)

	first, err := planner.Plan(nodes)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	for run := 0; run < 5; run++ {
		shuffled := nodesOf(labels...)
		// Deterministic permutation: rotate by run.
		rot := append(shuffled[run%len(shuffled):], shuffled[:run%len(shuffled)]...)
		res, rerr := planner.Plan(rot)
		if rerr != nil {
			t.Fatalf("Plan error on run %d: %v", run, rerr)
		}
		if !slices.Equal(res.Path, first.Path) || res.Cost != first.Cost {
			t.Fatalf("run %d diverged: %v (cost %d) vs %v (cost %d)",
				run, pathLabels(res.Path), res.Cost, pathLabels(first.Path), first.Cost)
		}
	}
}

// TestPlan_FallbackBeyondExactLimit with all 24 positions occupied the
// planner must switch to the heuristic pipeline and still deliver a
// zigzag-free permutation.
func TestPlan_FallbackBeyondExactLimit(t *testing.T) {
	var nodes []planner.Node
	for _, p := range camelot.All() {
		nodes = append(nodes, planner.Node{Position: p, Weight: 1})
	}
	res, err := planner.Plan(nodes)
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback beyond ExactLimit")
	}
	requirePermutation(t, res.Path, nodes)
	if !planner.ZigzagFree(res.Path) {
		t.Fatalf("fallback path has a forbidden skip: %v", pathLabels(res.Path))
	}
	// The full wheel admits a pure distance-1 walk (23 steps): the
	// heuristic must not do worse than a handful of skips.
	if res.Cost >= 2*(camelot.NumPositions-1) {
		t.Fatalf("fallback cost suspiciously high: %d", res.Cost)
	}
}

// TestPlan_BudgetExhaustion a one-node budget cannot finish the exact
// search; the result must come from the heuristic, flagged, still valid.
func TestPlan_BudgetExhaustion(t *testing.T) {
	nodes := nodesOf("1A", "3A", "5A", "7A", "9A", "11A")
	res, err := planner.Plan(nodes, planner.WithSearchBudget(1))
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback on exhausted budget")
	}
	requirePermutation(t, res.Path, nodes)
	if !planner.ZigzagFree(res.Path) {
		t.Fatalf("fallback path has a forbidden skip: %v", pathLabels(res.Path))
	}
}

// TestPlan_OptionPanics invalid option values are programmer errors.
func TestPlan_OptionPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("WithExactLimit(0)", func() { planner.WithExactLimit(0)(&planner.Options{}) })
	mustPanic("WithExactLimit(25)", func() { planner.WithExactLimit(25)(&planner.Options{}) })
	mustPanic("WithSearchBudget(0)", func() { planner.WithSearchBudget(0)(&planner.Options{}) })
}
