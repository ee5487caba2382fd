package graphicsstate

// Polarity controls whether plotted objects darken or clear the image.
type Polarity int

const (
	// PolarityDark makes plotted objects part of the image (LPD).
	PolarityDark Polarity = iota
	// PolarityClear erases plotted objects from the image (LPC).
	PolarityClear
)

// Code returns the single-letter code used by the load-polarity instruction.
func (p Polarity) Code() string {
	if p == PolarityClear {
		return "C"
	}
	return "D"
}

// String returns a human-readable polarity name.
func (p Polarity) String() string {
	if p == PolarityClear {
		return "Clear"
	}
	return "Dark"
}

// Mirror controls axis mirroring of plotted objects.
type Mirror int

const (
	// MirrorNone disables mirroring (LMN).
	MirrorNone Mirror = iota
	// MirrorX mirrors along the X axis (LMX).
	MirrorX
	// MirrorY mirrors along the Y axis (LMY).
	MirrorY
	// MirrorXY mirrors along both axes (LMXY).
	MirrorXY
)

// Code returns the axis code used by the load-mirror instruction.
func (m Mirror) Code() string {
	switch m {
	case MirrorX:
		return "X"
	case MirrorY:
		return "Y"
	case MirrorXY:
		return "XY"
	default:
		return "N"
	}
}

// String returns a human-readable mirror name.
func (m Mirror) String() string {
	switch m {
	case MirrorX:
		return "MirrorX"
	case MirrorY:
		return "MirrorY"
	case MirrorXY:
		return "MirrorXY"
	default:
		return "MirrorNone"
	}
}

// Mode represents the plotting mode that interprets subsequent plot
// operations.
type Mode int

const (
	// ModeLinear plots straight segments (G01).
	ModeLinear Mode = iota
	// ModeClockwise plots clockwise circular arcs (G02).
	ModeClockwise
	// ModeCounterclockwise plots counterclockwise circular arcs (G03).
	ModeCounterclockwise
)

// Code returns the G code selecting the mode.
func (m Mode) Code() string {
	switch m {
	case ModeClockwise:
		return "G02"
	case ModeCounterclockwise:
		return "G03"
	default:
		return "G01"
	}
}

// Circular reports whether the mode plots arcs, which makes the I/J offset
// fields of a plot operation mandatory.
func (m Mode) Circular() bool {
	return m == ModeClockwise || m == ModeCounterclockwise
}

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeClockwise:
		return "Clockwise"
	case ModeCounterclockwise:
		return "Counterclockwise"
	default:
		return "Linear"
	}
}

// State holds the current value of every graphics-state axis. A nil field
// means the axis has never been set. Pointed-to values are immutable;
// changing an axis always swaps the pointer.
type State struct {
	Polarity *Polarity
	Mirror   *Mirror
	Rotation *float64
	Scale    *float64
	Aperture *int
	Mode     *Mode
}

// Clone returns a copy of the state. The copy shares the pointed-to values,
// which is safe because they are never mutated in place; restoring a clone
// restores every axis to its exact prior value, including "unset".
func (s *State) Clone() State {
	return State{
		Polarity: s.Polarity,
		Mirror:   s.Mirror,
		Rotation: s.Rotation,
		Scale:    s.Scale,
		Aperture: s.Aperture,
		Mode:     s.Mode,
	}
}
