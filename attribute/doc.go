// Package attribute builds the X2 attribute commands of the format: file
// attributes (TF), aperture attributes (TA), object attributes (TO), and
// attribute deletion (TD), plus the standard attribute names and the value
// helpers for creation dates and content checksums.
//
// Attribute values are free text, so every field is escaped before it
// enters the strict grammar: the delimiter and separator characters and all
// control characters become \uXXXX escapes (UTF-16 code units, surrogate
// pairs for characters outside the basic plane). Fields are NFC-normalized
// first so that logically identical text always produces identical bytes —
// and therefore an identical content checksum.
package attribute
