package core

import "errors"

// Sentinel errors returned by block and name constructors. Callers can match
// them with errors.Is; the wrapped message always carries the offending text.
var (
	// ErrInvalidWord indicates text that does not match the word grammar.
	ErrInvalidWord = errors.New("core: invalid word")

	// ErrInvalidCommand indicates text that does not match the command grammar.
	ErrInvalidCommand = errors.New("core: invalid command")

	// ErrInvalidName indicates text that does not match the name grammar.
	ErrInvalidName = errors.New("core: invalid name")
)
