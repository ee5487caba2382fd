package core

import "regexp"

// The format has exactly two delimiter characters: '*' terminates a word
// (the block delimiter) and '%' brackets extended commands (the group
// delimiter). Everything else is a free character. A word may embed a
// terminated sub-word through the "*\n" escape sequence.
const (
	// BlockDelimiter terminates every word.
	BlockDelimiter = '*'

	// GroupDelimiter opens and closes an extended command.
	GroupDelimiter = '%'
)

// wordBody is the interior of a word: one or more free characters or
// escaped embedded terminators.
const wordBody = `(?:[^%*]|\*\n)+`

var (
	wordRe    = regexp.MustCompile(`^` + wordBody + `\*$`)
	commandRe = regexp.MustCompile(`^(?:` + wordBody + `\*|%(?:` + wordBody + `\*)+%)$`)
	nameRe    = regexp.MustCompile(`^[._$A-Za-z][._$A-Za-z0-9]{0,126}$`)
)

// IsWord reports whether text matches the word grammar: free characters
// (with optional embedded terminator escapes) followed by exactly one
// block delimiter.
func IsWord(text string) bool {
	return wordRe.MatchString(text)
}

// IsCommand reports whether text matches the command grammar: either a bare
// word or a group-delimited sequence of one or more words.
func IsCommand(text string) bool {
	return commandRe.MatchString(text)
}

// IsName reports whether text matches the name grammar: a leading letter,
// underscore, dot, or dollar sign followed by up to 126 identifier
// characters.
func IsName(text string) bool {
	return nameRe.MatchString(text)
}
