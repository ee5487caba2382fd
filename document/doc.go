// Package document implements the Gerber document model: an append-only
// sequence of validated building blocks plus the graphics state, coordinate
// format, and aperture dictionary that give plot operations their meaning.
//
// A [Document] is owned by exactly one builder session. Callers append
// header instructions, define apertures, and issue plot operations; the
// document accumulates validated blocks in emission order and renders the
// complete file with [Document.Serialize].
//
// # State Scoping
//
// Polarity, mirroring, rotation, and scale have save/apply/run/restore
// semantics: [Document.WithPolarity] and its siblings snapshot the prior
// value, emit the new load instruction, run the nested operations, and then
// emit a restoring instruction (when a prior value existed) and reset the
// in-memory state — on every exit path, including an error propagating out
// of the nested block. Aperture selection and plotting mode are deliberate
// exceptions: they are plain overwrites that persist until the next explicit
// change.
//
// # Apertures
//
// Aperture identifiers below 10 are reserved by the format. Each document
// carries its own monotonic allocator seeded at 10, and an insertion-ordered
// dictionary of the apertures defined so far; selecting an undefined
// identifier is an error.
package document
