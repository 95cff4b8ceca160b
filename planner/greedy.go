// Package planner - heuristic pipeline: nearest-neighbour construction
// plus first-improvement 2-opt refinement for open paths.
//
// The construction is the classic greedy walk: from the preferred start,
// repeatedly step to the closest unvisited position (index tie-break).
// Because the closest candidate is chosen, a distance-1 neighbour is
// never passed over, so the constructed path is zigzag-free by itself.
//
// The 2-opt pass reverses a segment [i..j] of the open path when that
// strictly lowers total cost AND the reversed path still satisfies the
// anti-zigzag predicate. Moves that cheapen the walk at the price of a
// forbidden skip are rejected, keeping the hard guarantee intact while
// total weight never increases.
//
// Complexity: construction O(n²); one 2-opt scan O(n²) candidates with an
// O(n²) predicate check on accepted moves only; n ≤ 24.
package planner

// heuristic builds the fallback path for the prepared instance.
func (in *instance) heuristic() Result {
	idx := in.nearestNeighborPath(in.starts[0])
	idx, cost := in.twoOptPath(idx)

	return Result{Path: in.toPositions(idx), Cost: cost}
}

// nearestNeighborPath runs the deterministic greedy walk from start.
// order[cur] is sorted by (distance, index), so the first unvisited entry
// is exactly the nearest-with-lowest-position candidate.
func (in *instance) nearestNeighborPath(start int) []int {
	var (
		visited = make([]bool, in.n)
		path    = make([]int, 0, in.n)
		cur     = start
	)
	visited[cur] = true
	path = append(path, cur)

	for len(path) < in.n {
		for _, v := range in.order[cur] {
			if visited[v] {
				continue
			}
			visited[v] = true
			path = append(path, v)
			cur = v
			break
		}
	}

	return path
}

// twoOptPath applies first-improvement segment reversals until no move
// both lowers the cost and preserves zigzag-freedom. Returns the refined
// index path and its total cost.
func (in *instance) twoOptPath(path []int) ([]int, int) {
	n := len(path)
	cost := in.idxCost(path)
	if n < 3 {
		return path, cost
	}

	for {
		improved := false

		var (
			i, j  int
			delta int
		)
		for i = 0; i < n-1 && !improved; i++ {
			for j = i + 1; j < n; j++ {
				if i == 0 && j == n-1 {
					// Whole-path reversal: symmetric distances, no gain.
					continue
				}

				// Edges touching the segment boundary are the only ones
				// a reversal changes on an open path.
				delta = 0
				if i > 0 {
					delta += in.at(path[i-1], path[j]) - in.at(path[i-1], path[i])
				}
				if j < n-1 {
					delta += in.at(path[i], path[j+1]) - in.at(path[j], path[j+1])
				}
				if delta >= 0 {
					continue
				}

				// Tentative apply; the anti-zigzag guarantee is a hard
				// property, so a cheaper-but-zigzagging path is rejected.
				reverseSegment(path, i, j)
				if !ZigzagFree(in.toPositions(path)) {
					reverseSegment(path, i, j)
					continue
				}

				cost += delta
				improved = true
				break // first-improvement: restart the scan
			}
		}

		if !improved {
			return path, cost
		}
	}
}

// idxCost sums the dense distances along an index path.
func (in *instance) idxCost(path []int) int {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		total += in.at(path[i], path[i+1])
	}

	return total
}

// reverseSegment reverses path[i..j] in place.
func reverseSegment(path []int, i, j int) {
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}
