// Package planner - exact Branch-and-Bound over zigzag-free paths.
//
// The engine enumerates Hamiltonian paths (open walks, no closure) via a
// depth-first search with deterministic branching and an admissible
// entry-cost lower bound, pruning whenever the partial cost plus bound
// reaches the incumbent.
//
// Rationale:
//  1. The anti-zigzag rule is enforced as a structural constraint while
//     branching: when the current position still has unvisited distance-1
//     neighbours, only those are expanded. A skip to a farther position
//     is generated exclusively when the local neighbourhood is exhausted,
//     so every enumerated path satisfies ZigzagFree by construction.
//  2. Lower bound: every unvisited vertex must still be entered once, and
//     that entry costs at least its cheapest incoming distance within the
//     occupied set. Summing those minima never overestimates, so pruning
//     by LB = costSoFar + Σ minIn[v] is safe.
//  3. Start preference doubles as the equal-cost tie-break: starts are
//     tried heaviest-cluster first and an incumbent is replaced only by a
//     strictly cheaper path, so the first-preferred start wins ties.
//  4. Budget: node expansions are counted and the search unwinds cleanly
//     once the budget is spent; the dispatcher then falls back to the
//     heuristic pipeline (exhaustion is a mode switch, not an error).
//
// Complexity: worst case exponential in n; per node O(n) for the bound
// plus O(1) state updates. Memory O(n²) for the precomputes.
package planner

// bbEngine holds the exact-search state. A dedicated struct (rather than
// closures) keeps dependencies explicit and the hot-path state compact.
type bbEngine struct {
	in     *instance
	budget int // remaining node expansions

	// Precompute for the bound: cheapest entry cost per vertex.
	minIn []int

	// Current search state.
	visited []bool
	path    []int

	// Incumbent.
	best     []int
	bestCost int
	found    bool

	// Budget exhaustion flag; unwinds the recursion when set.
	exhausted bool
}

// exact runs the Branch-and-Bound from every candidate start and returns
// the best complete path. The second return reports budget exhaustion.
func (in *instance) exact(budget int) (Result, bool) {
	e := &bbEngine{
		in:      in,
		budget:  budget,
		visited: make([]bool, in.n),
		path:    make([]int, in.n),
		best:    make([]int, in.n),
	}
	e.precomputeMinIn()

	for _, s := range in.starts {
		if e.exhausted {
			break
		}
		e.visited[s] = true
		e.path[0] = s
		e.dfs(s, 1, 0)
		e.visited[s] = false
	}

	if !e.found {
		// Budget spent before any complete path; nothing usable here.
		return Result{}, true
	}

	return Result{Path: in.toPositions(e.best), Cost: e.bestCost}, e.exhausted
}

// precomputeMinIn fills minIn[v] = min over u≠v of w[u→v].
// Distances on the wheel are finite, so every vertex has an entry cost.
func (e *bbEngine) precomputeMinIn() {
	var (
		u, v int
		c    int
	)
	e.minIn = make([]int, e.in.n)
	for v = 0; v < e.in.n; v++ {
		m := -1
		for u = 0; u < e.in.n; u++ {
			if u == v {
				continue
			}
			c = e.in.at(u, v)
			if m < 0 || c < m {
				m = c
			}
		}
		e.minIn[v] = m
	}
}

// lowerBound returns costSoFar plus the cheapest-entry relaxation over
// the unvisited vertices. Admissible: never exceeds the true completion.
func (e *bbEngine) lowerBound(costSoFar int) int {
	extra := 0
	for v := 0; v < e.in.n; v++ {
		if !e.visited[v] {
			extra += e.minIn[v]
		}
	}

	return costSoFar + extra
}

// dfs expands the partial path ending at last with depth vertices fixed.
func (e *bbEngine) dfs(last, depth, costSoFar int) {
	if e.exhausted {
		return
	}
	if e.budget <= 0 {
		e.exhausted = true

		return
	}
	e.budget--

	// Prune against the incumbent (strict: ties keep the earlier start).
	if e.found && e.lowerBound(costSoFar) >= e.bestCost {
		return
	}

	// Complete path: open walk, no closing edge.
	if depth == e.in.n {
		if !e.found || costSoFar < e.bestCost {
			copy(e.best, e.path)
			e.bestCost = costSoFar
			e.found = true
		}

		return
	}

	// Anti-zigzag gate: with compatible continuations available, farther
	// candidates are off-limits. order[last] is distance-sorted, so the
	// first unvisited entry tells us which regime applies.
	compatOnly := false
	for _, v := range e.in.order[last] {
		if !e.visited[v] {
			compatOnly = e.in.at(last, v) <= 1
			break
		}
	}

	var c int
	for _, v := range e.in.order[last] {
		if e.visited[v] {
			continue
		}
		c = e.in.at(last, v)
		if compatOnly && c > 1 {
			// Distance-sorted row: everything after is farther still.
			break
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+c)
		e.visited[v] = false
		if e.exhausted {
			return
		}
	}
}
