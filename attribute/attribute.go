package attribute

import (
	"strings"

	"github.com/xdevs23/pcblin/core"
)

// Kind selects which attribute dictionary a set command targets.
type Kind int

const (
	// File attaches metadata to the file as a whole (TF).
	File Kind = iota
	// Aperture attaches metadata to subsequently defined apertures (TA).
	Aperture
	// Object attaches metadata to subsequently created objects (TO).
	Object
)

// Code returns the two-letter command code for the attribute kind.
func (k Kind) Code() string {
	switch k {
	case Aperture:
		return "TA"
	case Object:
		return "TO"
	default:
		return "TF"
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Aperture:
		return "Aperture"
	case Object:
		return "Object"
	default:
		return "File"
	}
}

// Set builds the command attaching an attribute of the given kind, e.g.
// "%TF.Part,Single*%". The name must satisfy the name grammar; each value
// field is escaped independently.
func Set(kind Kind, name core.Name, values ...string) (core.Command, error) {
	if _, err := core.NewName(name.String()); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(kind.Code())
	b.WriteString(name.String())
	for _, v := range values {
		b.WriteByte(',')
		b.WriteString(Escape(v))
	}
	b.WriteString("*%")
	return core.NewCommand(b.String())
}

// Delete builds the command removing the named aperture or object attribute
// from the current dictionary (TD). An empty name removes all of them.
func Delete(name core.Name) (core.Command, error) {
	if name != "" {
		if _, err := core.NewName(name.String()); err != nil {
			return "", err
		}
	}
	return core.NewCommand("%TD" + name.String() + "*%")
}
