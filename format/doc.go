// Package format provides numeric formatting for the Gerber format: the
// measurement units, the fixed-point coordinate encoding, and the closed set
// of value kinds used when rendering command arguments.
//
// # Coordinate Encoding
//
// Gerber coordinates are fixed-point digit strings with an implicit decimal
// point: a [Format] of (3,6) renders 10.0 as "10000000" (integer part with
// leading zeros stripped, fractional part padded to exactly six digits, no
// separator). [Format.Encode] implements this encoding, including the
// all-zero collapse to "0" and hard failure on integer overflow.
//
// # Values
//
// Command and macro arguments mix integers, decimals, free text, and tokens
// that arrive already formatted. The [Value] interface with its closed set
// of kinds ([Integer], [Real], [Text], [Token]) gives each its own
// formatting rule.
package format
