package mix

import "github.com/velvetcue/harmonix/camelot"

// Track is one playlist entry as seen by the optimizer.
//
// ID uniquely identifies the track within one run. Key is the harmonic
// wheel position the track was tagged with; BPM is its tempo. Meta holds
// every other column of the source playlist (title, artist, duration, …)
// verbatim, so the output can be serialized without loss.
//
// Tracks are value records: stages copy and reorder them but never
// mutate a field.
type Track struct {
	// ID is the unique identifier of the track.
	ID string

	// Key is the wheel position of the track's musical key.
	Key camelot.Position

	// BPM is the tempo in beats per minute.
	BPM float64

	// Meta is the opaque payload carried through unchanged.
	Meta map[string]string
}

// IDs projects the identifiers of a track sequence, preserving order.
// Handy for permutation checks and reporting.
func IDs(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, tr := range tracks {
		out[i] = tr.ID
	}

	return out
}
