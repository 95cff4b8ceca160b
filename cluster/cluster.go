// Package cluster partitions tracks into harmonic clusters, one per
// occupied wheel position.
//
// Contract (mirrors the optimizer's first stage):
//   - The union of all clusters equals the input multiset exactly: no
//     track is duplicated or dropped.
//   - Within a cluster, tracks keep their input order; later stages use
//     that order as the stable tie-break.
//   - Clusters are enumerated in wheel order (1A, 1B, …, 12B), so two
//     runs over the same input build identical structures.
//
// Tracks with an invalid wheel position are a programmer error at this
// layer: collaborators reject unparseable keys before the core runs.
package cluster

import (
	"errors"
	"sort"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/mix"
)

// Sentinel errors for the clustering stage.
var (
	// ErrNoTracks indicates an empty input batch: nothing to sequence.
	ErrNoTracks = errors.New("cluster: no tracks to sequence")

	// ErrInvalidKey indicates a track whose Key is outside the wheel.
	// Ingest layers must filter such tracks out before clustering.
	ErrInvalidKey = errors.New("cluster: track key out of wheel range")
)

// Cluster is the set of tracks sharing one wheel position.
// Tracks preserve input order until the sequencer reorders them.
type Cluster struct {
	// Position is the shared wheel position of the cluster.
	Position camelot.Position

	// Tracks are the member tracks in input order.
	Tracks []mix.Track
}

// Clusters is the ordered set of occupied clusters (wheel order).
type Clusters []Cluster

// Build groups tracks by wheel position.
//
// Returns ErrNoTracks when the input is empty and ErrInvalidKey when any
// track carries a position outside the wheel; otherwise the resulting
// clusters cover the input exactly.
//
// Complexity: O(n + k log k) for n tracks over k occupied positions.
func Build(tracks []mix.Track) (Clusters, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	// Group by position. Map iteration order is irrelevant: the final
	// enumeration is sorted below.
	byPos := make(map[camelot.Position][]mix.Track)
	for _, tr := range tracks {
		if !tr.Key.Valid() {
			return nil, ErrInvalidKey
		}
		byPos[tr.Key] = append(byPos[tr.Key], tr)
	}

	// Deterministic wheel-order enumeration.
	positions := make([]camelot.Position, 0, len(byPos))
	for p := range byPos {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	out := make(Clusters, 0, len(positions))
	for _, p := range positions {
		out = append(out, Cluster{Position: p, Tracks: byPos[p]})
	}

	return out, nil
}

// Positions lists the occupied wheel positions in cluster order.
func (cs Clusters) Positions() []camelot.Position {
	out := make([]camelot.Position, len(cs))
	for i, c := range cs {
		out[i] = c.Position
	}

	return out
}

// Find returns the index of the cluster at position p, or -1.
func (cs Clusters) Find(p camelot.Position) int {
	for i, c := range cs {
		if c.Position == p {
			return i
		}
	}

	return -1
}

// TrackCount sums the member counts over all clusters.
func (cs Clusters) TrackCount() int {
	n := 0
	for _, c := range cs {
		n += len(c.Tracks)
	}

	return n
}
