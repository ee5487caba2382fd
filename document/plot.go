package document

import (
	"fmt"

	"github.com/xdevs23/pcblin/graphicsstate"
)

// SetPlottingMode makes the given plotting mode current (G01/G02/G03). Like
// aperture selection this is a plain overwrite with no automatic restore;
// the mode persists until the next explicit change.
func (d *Document) SetPlottingMode(m graphicsstate.Mode) {
	d.word(m.Code() + "*")
	d.state.Mode = &m
}

// EnableMultiQuadrant appends the multi-quadrant arc mode instruction
// (G75), required before circular plotting.
func (d *Document) EnableMultiQuadrant() {
	d.word("G75*")
}

// Move moves the current point without plotting (D02).
func (d *Document) Move(x, y float64) error {
	pos, err := d.xy(x, y)
	if err != nil {
		return err
	}
	d.word(pos + "D02*")
	return nil
}

// Plot plots a straight segment from the current point (D01). The plotting
// mode must be set and linear: in a circular mode the offset fields are
// mandatory and Arc must be used instead.
func (d *Document) Plot(x, y float64) error {
	if err := d.requireAperture(); err != nil {
		return err
	}
	switch {
	case d.state.Mode == nil:
		return fmt.Errorf("%w: plot of straight segment", ErrNoMode)
	case d.state.Mode.Circular():
		return fmt.Errorf("%w: %v", ErrModeNotLinear, *d.state.Mode)
	}
	pos, err := d.xy(x, y)
	if err != nil {
		return err
	}
	d.word(pos + "D01*")
	return nil
}

// Arc plots a circular arc from the current point (D01 with I/J offsets).
// The offsets locate the arc center relative to the arc's start point. The
// plotting mode must be set to one of the circular modes.
func (d *Document) Arc(x, y, i, j float64) error {
	if err := d.requireAperture(); err != nil {
		return err
	}
	if d.state.Mode == nil || !d.state.Mode.Circular() {
		return fmt.Errorf("%w: arc requires G02 or G03", ErrModeNotCircular)
	}
	pos, err := d.xy(x, y)
	if err != nil {
		return err
	}
	ei, err := d.EncodeCoordinate(i)
	if err != nil {
		return err
	}
	ej, err := d.EncodeCoordinate(j)
	if err != nil {
		return err
	}
	d.word(pos + "I" + ei + "J" + ej + "D01*")
	return nil
}

// Flash stamps the current aperture at the given point (D03).
func (d *Document) Flash(x, y float64) error {
	if err := d.requireAperture(); err != nil {
		return err
	}
	pos, err := d.xy(x, y)
	if err != nil {
		return err
	}
	d.word(pos + "D03*")
	return nil
}

// Region runs fn between region-begin (G36) and region-end (G37)
// instructions. The closing instruction is emitted on every exit path so an
// error inside the region cannot leave the document in region mode. Contour
// segments plotted inside a region do not require a selected aperture.
func (d *Document) Region(fn func() error) error {
	prev := d.inRegion
	d.word("G36*")
	d.inRegion = true
	defer func() {
		d.word("G37*")
		d.inRegion = prev
	}()
	return fn()
}

func (d *Document) requireAperture() error {
	if d.inRegion {
		return nil
	}
	if d.state.Aperture == nil {
		return ErrNoAperture
	}
	return nil
}

func (d *Document) xy(x, y float64) (string, error) {
	ex, err := d.EncodeCoordinate(x)
	if err != nil {
		return "", err
	}
	ey, err := d.EncodeCoordinate(y)
	if err != nil {
		return "", err
	}
	return "X" + ex + "Y" + ey, nil
}
