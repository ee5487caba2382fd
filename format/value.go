package format

import "strconv"

// Value represents one command or macro argument. The set of kinds is
// closed: integers, decimals, free text, and tokens that arrive already
// formatted each render by their own rule.
type Value interface {
	Kind() ValueKind
	Text() string
}

// ValueKind represents the kind of a command argument.
type ValueKind int

const (
	// KindInteger is a whole-number argument.
	KindInteger ValueKind = iota
	// KindReal is a plain decimal argument (explicit decimal point).
	KindReal
	// KindText is a textual argument rendered verbatim.
	KindText
	// KindToken is an argument that was formatted upstream, for example a
	// fixed-point coordinate or a macro variable reference.
	KindToken
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindText:
		return "Text"
	case KindToken:
		return "Token"
	default:
		return "Unknown"
	}
}

// Integer is a whole-number argument.
type Integer int64

func (i Integer) Kind() ValueKind { return KindInteger }
func (i Integer) Text() string    { return strconv.FormatInt(int64(i), 10) }

// Real is a plain decimal argument. Unlike coordinates it renders with an
// explicit decimal point and no fixed width, in the shortest form that
// round-trips.
type Real float64

func (r Real) Kind() ValueKind { return KindReal }
func (r Real) Text() string    { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// Text is a textual argument rendered verbatim.
type Text string

func (t Text) Kind() ValueKind { return KindText }
func (t Text) Text() string    { return string(t) }

// Token is a preformatted argument rendered verbatim.
type Token string

func (t Token) Kind() ValueKind { return KindToken }
func (t Token) Text() string    { return string(t) }
