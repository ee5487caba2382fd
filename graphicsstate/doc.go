// Package graphicsstate models the Gerber graphics state: the current
// values of polarity, mirroring, rotation, scale, selected aperture, and
// plotting mode that implicitly affect subsequent plot instructions.
//
// Every axis is optional until first set, so each field of [State] is a
// pointer; nil means the document has not emitted an instruction for that
// axis yet. The pointed-to values are never mutated in place, which makes a
// retained pointer a valid snapshot for the save/apply/run/restore protocol
// the document layer builds on top of this package.
package graphicsstate
