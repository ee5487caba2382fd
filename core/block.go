package core

import (
	"fmt"
	"strings"
)

// Block represents one building block of an emitted document.
type Block interface {
	Type() BlockType
	String() string
}

// BlockType represents the kind of building block.
type BlockType int

const (
	// BlockWord is a single delimiter-terminated word.
	BlockWord BlockType = iota
	// BlockCommand is a word or an extended (group-delimited) command.
	BlockCommand
	// BlockComment is human-readable text outside the strict grammar.
	BlockComment
)

// String returns the string representation of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockWord:
		return "Word"
	case BlockCommand:
		return "Command"
	case BlockComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Word is a validated delimiter-terminated word.
type Word string

// NewWord validates text against the word grammar and returns it as a Word.
func NewWord(text string) (Word, error) {
	if !IsWord(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, text)
	}
	return Word(text), nil
}

func (w Word) Type() BlockType { return BlockWord }
func (w Word) String() string  { return string(w) }

// Command is a validated command: a bare word or a group of words.
type Command string

// NewCommand validates text against the command grammar and returns it as a
// Command.
func NewCommand(text string) (Command, error) {
	if !IsCommand(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCommand, text)
	}
	return Command(text), nil
}

func (c Command) Type() BlockType { return BlockCommand }
func (c Command) String() string  { return string(c) }

// CommentMarker prefixes every rendered comment line. Consumers that skip
// lines starting with it recover the strict-grammar-only document.
const CommentMarker = "# "

// Comment is arbitrary human-readable text. It carries no grammar
// constraint; rendering prefixes every line with the comment marker.
type Comment string

// NewComment returns text as a Comment. It never fails: comments are exempt
// from grammar validation.
func NewComment(text string) Comment {
	return Comment(text)
}

func (c Comment) Type() BlockType { return BlockComment }

// String renders the comment with every input line independently prefixed by
// the comment marker.
func (c Comment) String() string {
	lines := strings.Split(string(c), "\n")
	for i, line := range lines {
		lines[i] = CommentMarker + line
	}
	return strings.Join(lines, "\n")
}

// Name is a validated identifier used for attributes, aperture templates,
// and macro variables.
type Name string

// NewName validates text against the name grammar and returns it as a Name.
func NewName(text string) (Name, error) {
	if !IsName(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, text)
	}
	return Name(text), nil
}

func (n Name) String() string { return string(n) }
