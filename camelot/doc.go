// Package camelot models the 24-position harmonic wheel used by DJs
// (Camelot notation: 1A–12A minor, 1B–12B major) and the compatibility
// relation between positions.
//
// The wheel is a fixed cyclic graph: each position is adjacent to the
// same number with the opposite letter (relative major/minor) and to the
// ±1 numbers with the same letter (neighbouring keys on the circle of
// fifths). Harmonic distance between two positions is the hop count of
// the shortest walk over that graph:
//
//	Distance(p, p)    == 0   same position
//	Distance(8A, 9A)  == 1   adjacent, same mode
//	Distance(8A, 8B)  == 1   relative major/minor
//	Distance(8A, 10A) == 2   requires one intermediate position
//
// All tables (distance, neighbour lists) are precomputed once at package
// init; every exported function is a pure, allocation-free lookup except
// Neighbors and All, which copy to keep the tables immutable.
//
// Use Parse to map raw key labels ("8A", "11b") onto positions and
// Suggest to recover a did-you-mean candidate for labels Parse rejects.
package camelot
