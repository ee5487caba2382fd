// Package core provides the low-level lexical layer of the Gerber format:
// grammar validation and the building-block model every emitted document is
// composed of.
//
// # Building Blocks
//
// A Gerber file is a sequence of blocks, each rendering to exact text. All
// block kinds satisfy the Block interface:
//
//   - [Word] - free text terminated by the block delimiter '*'
//   - [Command] - a word, or a '%'-delimited group of words (extended command)
//   - [Comment] - human-readable text, one '#'-prefixed line per input line
//
// Words and commands validate against the format grammar at construction
// time; a Word or Command value that exists is always syntactically valid,
// so rendering can never fail. Comments are the one escape hatch from the
// strict grammar and accept arbitrary text.
//
// # Names
//
// [Name] is the identifier type used wherever the format requires a symbolic
// name: attribute names, aperture macro names, macro variable names. A name
// starts with a letter, underscore, dot, or dollar sign, followed by up to
// 126 more of those characters or digits.
//
// Example usage:
//
//	w, err := core.NewWord("X10000000Y10000000D03*")
//	if err != nil {
//	    // the text violated the word grammar
//	}
//	fmt.Println(w.String())
package core
