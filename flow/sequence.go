// Package flow - intra-cluster tempo ordering.
package flow

import (
	"sort"

	"github.com/velvetcue/harmonix/mix"
)

// Sequence orders the tracks of one cluster by tempo.
//
// The sort is stable: equal BPM values keep their relative input order,
// so repeated runs on identical input are byte-identical. The input
// slice is not mutated; a sorted copy is returned.
//
// Complexity: O(m log m) for m tracks.
func Sequence(tracks []mix.Track, ascending bool) []mix.Track {
	out := make([]mix.Track, len(tracks))
	copy(out, tracks)

	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].BPM < out[j].BPM
		}

		return out[i].BPM > out[j].BPM
	})

	return out
}
