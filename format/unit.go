package format

// Unit represents the measurement unit of a document. It affects only the
// unit header instruction, never the coordinate encoding itself.
type Unit int

const (
	// Millimeter selects metric units (the MM mode).
	Millimeter Unit = iota
	// Inch selects imperial units (the IN mode).
	Inch
)

// Code returns the two-letter code used by the unit instruction.
func (u Unit) Code() string {
	if u == Inch {
		return "IN"
	}
	return "MM"
}

// String returns a human-readable unit name.
func (u Unit) String() string {
	if u == Inch {
		return "Inch"
	}
	return "Millimeter"
}
