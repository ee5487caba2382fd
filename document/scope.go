package document

import (
	"fmt"

	"github.com/xdevs23/pcblin/format"
	"github.com/xdevs23/pcblin/graphicsstate"
)

// Each With* method implements the same protocol: retain the axis's current
// value, emit the load instruction for the new value, run the nested block,
// then — on every exit path, error included — emit a restoring instruction
// if a prior value existed and reset the in-memory state to the snapshot.
// Scopes nest arbitrarily, including on the same axis.

// WithPolarity runs fn with the given polarity loaded, restoring the prior
// polarity afterwards.
func (d *Document) WithPolarity(p graphicsstate.Polarity, fn func() error) error {
	prev := d.state.Polarity
	d.loadPolarity(p)
	defer func() {
		if prev != nil {
			d.loadPolarity(*prev)
		}
		d.state.Polarity = prev
	}()
	return fn()
}

// WithMirror runs fn with the given mirroring loaded, restoring the prior
// mirroring afterwards.
func (d *Document) WithMirror(m graphicsstate.Mirror, fn func() error) error {
	prev := d.state.Mirror
	d.loadMirror(m)
	defer func() {
		if prev != nil {
			d.loadMirror(*prev)
		}
		d.state.Mirror = prev
	}()
	return fn()
}

// WithRotation runs fn with the given rotation (degrees, counterclockwise)
// loaded, restoring the prior rotation afterwards.
func (d *Document) WithRotation(degrees float64, fn func() error) error {
	prev := d.state.Rotation
	d.loadRotation(degrees)
	defer func() {
		if prev != nil {
			d.loadRotation(*prev)
		}
		d.state.Rotation = prev
	}()
	return fn()
}

// WithScale runs fn with the given scale factor loaded, restoring the prior
// scale afterwards. The factor must be strictly positive.
func (d *Document) WithScale(factor float64, fn func() error) error {
	if factor <= 0 {
		return fmt.Errorf("%w: %v", ErrScaleRange, factor)
	}
	prev := d.state.Scale
	d.loadScale(factor)
	defer func() {
		if prev != nil {
			d.loadScale(*prev)
		}
		d.state.Scale = prev
	}()
	return fn()
}

func (d *Document) loadPolarity(p graphicsstate.Polarity) {
	d.command("%LP" + p.Code() + "*%")
	d.state.Polarity = &p
}

func (d *Document) loadMirror(m graphicsstate.Mirror) {
	d.command("%LM" + m.Code() + "*%")
	d.state.Mirror = &m
}

func (d *Document) loadRotation(degrees float64) {
	d.command("%LR" + format.Real(degrees).Text() + "*%")
	d.state.Rotation = &degrees
}

func (d *Document) loadScale(factor float64) {
	d.command("%LS" + format.Real(factor).Text() + "*%")
	d.state.Scale = &factor
}
