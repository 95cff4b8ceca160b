// Package flow_test - intra-cluster ordering: monotone tempo, stable ties.
package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetcue/harmonix/camelot"
	"github.com/velvetcue/harmonix/flow"
	"github.com/velvetcue/harmonix/mix"
)

// tr builds a minimal track for flow tests.
func tr(id, key string, bpm float64) mix.Track {
	return mix.Track{ID: id, Key: camelot.MustParse(key), BPM: bpm}
}

func TestSequence_Ascending(t *testing.T) {
	in := []mix.Track{tr("a", "8A", 126), tr("b", "8A", 120), tr("c", "8A", 124)}
	out := flow.Sequence(in, true)
	assert.Equal(t, []string{"b", "c", "a"}, mix.IDs(out))
}

func TestSequence_Descending(t *testing.T) {
	in := []mix.Track{tr("a", "8A", 126), tr("b", "8A", 120), tr("c", "8A", 124)}
	out := flow.Sequence(in, false)
	assert.Equal(t, []string{"a", "c", "b"}, mix.IDs(out))
}

// TestSequence_StableTies equal BPM keeps input order in both directions.
func TestSequence_StableTies(t *testing.T) {
	in := []mix.Track{
		tr("first", "8A", 124), tr("second", "8A", 124),
		tr("slow", "8A", 118), tr("third", "8A", 124),
	}
	asc := flow.Sequence(in, true)
	assert.Equal(t, []string{"slow", "first", "second", "third"}, mix.IDs(asc))

	desc := flow.Sequence(in, false)
	assert.Equal(t, []string{"first", "second", "third", "slow"}, mix.IDs(desc))
}

// TestSequence_InputUntouched the caller's slice keeps its order.
func TestSequence_InputUntouched(t *testing.T) {
	in := []mix.Track{tr("a", "8A", 126), tr("b", "8A", 120)}
	_ = flow.Sequence(in, true)
	assert.Equal(t, []string{"a", "b"}, mix.IDs(in))
}

func TestParseDirection(t *testing.T) {
	for label, want := range map[string]flow.Direction{
		"ascending": flow.Ascending, "ASC": flow.Ascending, "up": flow.Ascending,
		"descending": flow.Descending, "desc": flow.Descending, "down": flow.Descending,
		" wave ": flow.Wave,
	} {
		got, err := flow.ParseDirection(label)
		assert.NoErrorf(t, err, "ParseDirection(%q)", label)
		assert.Equalf(t, want, got, "ParseDirection(%q)", label)
	}

	_, err := flow.ParseDirection("sideways")
	assert.ErrorIs(t, err, flow.ErrBadDirection)
}
