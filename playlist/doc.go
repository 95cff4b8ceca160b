// Package playlist is the interchange boundary of the optimizer: it maps
// playlist exports (Rekordbox-style TXT/CSV) onto track records and
// serializes optimized sequences back out.
//
// Reading is forgiving where DJ software is messy - UTF-16 exports, tab
// or comma delimiters, loosely named columns - and strict where the core
// needs it: a row without a usable key or tempo never reaches the
// optimizer. Such rows are reported as Warnings (with a did-you-mean
// hint for near-miss key labels) and the rest of the batch proceeds.
//
// Every column of the source file is carried verbatim in Track.Meta, so
// Write can reproduce the original columns in the optimized order.
package playlist
