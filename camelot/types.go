// Package camelot - central types and sentinel errors.
//
// This file declares Position, Mode, and the package sentinel set.
// Tables and lookups live in wheel.go; label handling lives in parse.go.
package camelot

import "errors"

// Sentinel errors for wheel operations.
var (
	// ErrBadKey indicates that a raw key label cannot be mapped onto any
	// of the 24 wheel positions.
	ErrBadKey = errors.New("camelot: unparseable key label")

	// ErrBadPosition indicates a Position value outside [0, NumPositions).
	ErrBadPosition = errors.New("camelot: position out of range")
)

// Mode distinguishes the two letters of the wheel.
//
// Minor - the "A" ring (inner wheel).
// Major - the "B" ring (outer wheel).
type Mode uint8

const (
	// Minor is the A ring.
	Minor Mode = iota

	// Major is the B ring.
	Major
)

// String returns the Camelot letter for the mode ("A" or "B").
func (m Mode) String() string {
	if m == Major {
		return "B"
	}

	return "A"
}

// NumPositions is the fixed size of the wheel: 12 numbers x 2 modes.
const NumPositions = 24

// numbersPerRing is the count of Camelot numbers on each ring.
const numbersPerRing = 12

// Position identifies one of the 24 wheel positions.
//
// The encoding is (number-1)*2 + mode, so positions sort in wheel order:
// 1A, 1B, 2A, 2B, …, 12A, 12B. The zero value is 1A.
type Position uint8

// New builds a Position from a Camelot number (1..12) and a Mode.
// Returns ErrBadPosition when the number is outside [1, 12].
func New(number int, mode Mode) (Position, error) {
	if number < 1 || number > numbersPerRing {
		return 0, ErrBadPosition
	}

	return Position((number-1)*2 + int(mode)), nil
}

// Valid reports whether p encodes one of the 24 wheel positions.
func (p Position) Valid() bool { return p < NumPositions }

// Number returns the Camelot number of the position (1..12).
func (p Position) Number() int { return int(p)/2 + 1 }

// Chroma returns the numeric pitch class of the position (0..11).
func (p Position) Chroma() int { return int(p) / 2 }

// Mode returns the ring of the position (Minor for A, Major for B).
func (p Position) Mode() Mode { return Mode(p & 1) }

// String returns the Camelot label of the position, e.g. "8A".
// Invalid positions render as "?".
func (p Position) String() string {
	if !p.Valid() {
		return "?"
	}

	return labels[p]
}
