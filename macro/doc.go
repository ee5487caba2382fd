// Package macro models the body of an aperture macro definition: the
// secondary grammar of variable definitions and primitive invocations that
// lives inside an AM command.
//
// A [Body] is built transiently while an aperture template is being defined,
// rendered once to text, and discarded. Variable names are constrained to
// positive nonzero integers ($1, $2, ...); primitive invocations carry a
// numeric primitive code and a list of already-formatted argument
// expressions.
package macro
