// Package camelot - precomputed wheel tables.
//
// The wheel is small and fixed (24 positions), so adjacency and distance
// are flat lookup tables built once at package init:
//
//   - neighbors[p]      - the ordered distance-1 positions of p.
//   - distances[p][q]   - hop count of the shortest compatibility walk.
//
// Design:
//   - No runtime graph structure: a [24][24]uint8 table answers every
//     Distance query in O(1) with zero allocations.
//   - Distances are derived by BFS over the compatibility edges, so
//     "distance k" literally means "k compatible transitions".
//   - MaxDistance is the wheel diameter (7: opposite number, other ring).
//
// Complexity: init is O(24 * 24) and runs once; all lookups O(1).
package camelot

// MaxDistance is the diameter of the wheel graph: six steps around the
// number circle plus one ring change.
const MaxDistance = 7

// labels holds the canonical Camelot label per position index.
var labels [NumPositions]string

// neighbors holds, per position, its distance-1 positions in ascending
// position order. Shared backing arrays; Neighbors returns copies.
var neighbors [NumPositions][]Position

// distances holds the full pairwise hop-distance table.
var distances [NumPositions][NumPositions]uint8

func init() {
	buildLabels()
	buildNeighbors()
	buildDistances()
}

// buildLabels fills the canonical label table ("1A".."12B").
func buildLabels() {
	var (
		p      Position
		digits = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	)
	for p = 0; p < NumPositions; p++ {
		labels[p] = digits[p.Chroma()] + p.Mode().String()
	}
}

// buildNeighbors wires the three compatibility edges of every position:
// relative (same number, other ring) and the ±1 numbers on the same ring.
func buildNeighbors() {
	var (
		p        Position
		chroma   int
		mode     Mode
		relative Position
		up, down Position
	)
	for p = 0; p < NumPositions; p++ {
		chroma = p.Chroma()
		mode = p.Mode()

		// Relative major/minor: flip the low bit.
		relative = p ^ 1

		// ±1 Camelot number on the same ring, wrapping 12 -> 1.
		up = Position(((chroma+1)%numbersPerRing)*2 + int(mode))
		down = Position(((chroma+numbersPerRing-1)%numbersPerRing)*2 + int(mode))

		// Collect in ascending position order for deterministic iteration.
		row := []Position{relative, up, down}
		sortPositions(row)
		neighbors[p] = row
	}
}

// buildDistances runs a BFS from every position over the neighbor table.
// The frontier is a fixed-size ring buffer: the graph has 24 vertices.
func buildDistances() {
	var (
		src, cur, nxt Position
		queue         [NumPositions]Position
		head, tail    int
		seen          [NumPositions]bool
	)
	for src = 0; src < NumPositions; src++ {
		for cur = 0; cur < NumPositions; cur++ {
			seen[cur] = false
		}
		head, tail = 0, 0
		queue[tail] = src
		tail++
		seen[src] = true
		distances[src][src] = 0

		for head < tail {
			cur = queue[head]
			head++
			for _, nxt = range neighbors[cur] {
				if seen[nxt] {
					continue
				}
				seen[nxt] = true
				distances[src][nxt] = distances[src][cur] + 1
				queue[tail] = nxt
				tail++
			}
		}
	}
}

// Distance returns the harmonic distance between two positions:
// 0 for the same position, 1 for directly compatible neighbours, and the
// minimal number of compatible transitions otherwise.
//
// Invalid positions yield MaxDistance + 1 so that callers treating the
// result as a cost never prefer them; use Valid to reject them upfront.
//
// Complexity: O(1).
func Distance(a, b Position) int {
	if !a.Valid() || !b.Valid() {
		return MaxDistance + 1
	}

	return int(distances[a][b])
}

// Neighbors returns the distance-1 positions of p in ascending position
// order. The slice is a copy; mutating it does not affect the wheel.
// Invalid positions yield nil.
//
// Complexity: O(1) lookup + O(3) copy.
func Neighbors(p Position) []Position {
	if !p.Valid() {
		return nil
	}
	out := make([]Position, len(neighbors[p]))
	copy(out, neighbors[p])

	return out
}

// All returns the 24 positions in wheel order (1A, 1B, …, 12B).
func All() []Position {
	out := make([]Position, NumPositions)
	var p Position
	for p = 0; p < NumPositions; p++ {
		out[p] = p
	}

	return out
}

// sortPositions orders a tiny slice of positions ascending in place.
// Insertion sort: inputs are at most three elements.
func sortPositions(ps []Position) {
	var i, j int
	for i = 1; i < len(ps); i++ {
		for j = i; j > 0 && ps[j] < ps[j-1]; j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
}
