// Package camelot - raw key label handling.
//
// Parse is the single entry point collaborators use to map playlist key
// metadata onto wheel positions. It is deliberately forgiving about
// formatting noise (case, whitespace, a leading zero) but strict about
// meaning: anything that is not one of the 24 Camelot codes is ErrBadKey.
//
// Suggest recovers the nearest canonical code by edit distance so ingest
// layers can attach a did-you-mean hint to invalid-key warnings.
package camelot

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far Suggest is willing to reach.
// One edit covers the common typos ("8C", "8 A", "88A"); anything further
// is more likely a different notation than a slip.
const maxSuggestDistance = 1

// Parse maps a raw key label onto a wheel position.
//
// Accepted forms: the canonical Camelot codes "1A".."12B", in any letter
// case, with surrounding whitespace and an optional leading zero ("08A").
// Everything else returns ErrBadKey.
//
// Complexity: O(len(label)).
func Parse(label string) (Position, error) {
	s := normalizeLabel(label)
	if len(s) < 2 || len(s) > 3 {
		return 0, ErrBadKey
	}

	// Split into number and ring letter.
	var (
		ringChar = s[len(s)-1]
		numPart  = s[:len(s)-1]
		mode     Mode
	)
	switch ringChar {
	case 'A':
		mode = Minor
	case 'B':
		mode = Major
	default:
		return 0, ErrBadKey
	}

	number := 0
	for i := 0; i < len(numPart); i++ {
		c := numPart[i]
		if c < '0' || c > '9' {
			return 0, ErrBadKey
		}
		number = number*10 + int(c-'0')
	}
	if number < 1 || number > numbersPerRing {
		return 0, ErrBadKey
	}

	p, err := New(number, mode)
	if err != nil {
		return 0, ErrBadKey
	}

	return p, nil
}

// MustParse is Parse for trusted literals; it panics on ErrBadKey.
// Intended for tests and table construction, never for user input.
func MustParse(label string) Position {
	p, err := Parse(label)
	if err != nil {
		panic("camelot: MustParse(" + label + "): " + err.Error())
	}

	return p
}

// Suggest returns the canonical code closest to label by Levenshtein
// distance, provided it is within maxSuggestDistance edits. The second
// return is false when no code is close enough.
//
// Ties resolve to the lowest position (wheel order), keeping suggestions
// deterministic for identical input.
//
// Complexity: O(24 * len(label)).
func Suggest(label string) (Position, bool) {
	s := normalizeLabel(label)
	if s == "" {
		return 0, false
	}

	var (
		best     Position
		bestDist = maxSuggestDistance + 1
		p        Position
		d        int
	)
	for p = 0; p < NumPositions; p++ {
		d = levenshtein.ComputeDistance(s, labels[p])
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	if bestDist > maxSuggestDistance {
		return 0, false
	}

	return best, true
}

// normalizeLabel uppercases, trims, and drops one leading zero.
func normalizeLabel(label string) string {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) > 2 && s[0] == '0' {
		s = s[1:]
	}

	return s
}
