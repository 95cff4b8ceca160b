// Package mix declares the track record shared by every sequencing
// stage.
//
// A Track carries exactly what the optimizer needs - a stable identifier,
// a wheel position, and a tempo - plus an opaque metadata payload that the
// core passes through untouched. Collaborators (playlist readers and
// writers) own the payload's meaning; the sequencing packages never
// inspect it.
package mix
