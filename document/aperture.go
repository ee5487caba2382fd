package document

import (
	"fmt"
	"strconv"
)

// Aperture is any aperture template that can render the body of an
// aperture-definition (AD) command: the template name followed by its
// parameter list, for example "C,0.15" or "R,0.5X0.3".
type Aperture interface {
	Parameters() (string, error)
}

// MacroAperture is an aperture backed by an aperture macro. Its macro
// definition (AM) command must be emitted before the aperture definition
// referencing it.
type MacroAperture interface {
	Aperture
	MacroCommand() (string, error)
}

// NextApertureID returns the next free aperture identifier and advances the
// document's allocator. Identifiers are monotonic from 10 and never reused.
func (d *Document) NextApertureID() int {
	id := d.nextAperture
	d.nextAperture++
	return id
}

// DefineAperture allocates an identifier, appends the aperture-definition
// instruction (preceded by the macro definition for macro-backed
// templates), and records the aperture in the document's dictionary. It
// returns the allocated identifier.
func (d *Document) DefineAperture(ap Aperture) (int, error) {
	id := d.NextApertureID()
	if err := d.defineAperture(id, ap); err != nil {
		return 0, err
	}
	return id, nil
}

// DefineApertureWithID defines an aperture under a caller-chosen
// identifier. Identifiers below 10 are reserved by the format, and an
// identifier may only be defined once per document.
func (d *Document) DefineApertureWithID(id int, ap Aperture) error {
	if id < reservedApertures {
		return fmt.Errorf("%w: %d (minimum %d)", ErrApertureReserved, id, reservedApertures)
	}
	if _, defined := d.apertures.Get(id); defined {
		return fmt.Errorf("%w: D%d", ErrApertureRedefined, id)
	}
	if err := d.defineAperture(id, ap); err != nil {
		return err
	}
	if id >= d.nextAperture {
		d.nextAperture = id + 1
	}
	return nil
}

func (d *Document) defineAperture(id int, ap Aperture) error {
	if m, ok := ap.(MacroAperture); ok {
		cmd, err := m.MacroCommand()
		if err != nil {
			return err
		}
		d.command(cmd)
	}
	params, err := ap.Parameters()
	if err != nil {
		return err
	}
	d.command("%ADD" + strconv.Itoa(id) + params + "*%")
	d.apertures.Put(id, ap)
	return nil
}

// SetAperture makes the aperture with the given identifier current. The
// selection persists until the next SetAperture; it is not scoped. The
// aperture must have been defined in this document.
func (d *Document) SetAperture(id int) error {
	if _, defined := d.apertures.Get(id); !defined {
		return fmt.Errorf("%w: D%d", ErrApertureUndefined, id)
	}
	d.word("D" + strconv.Itoa(id) + "*")
	d.state.Aperture = &id
	return nil
}

// Apertures returns the defined aperture identifiers in definition order.
func (d *Document) Apertures() []int {
	ids := make([]int, 0, d.apertures.Size())
	for _, k := range d.apertures.Keys() {
		ids = append(ids, k.(int))
	}
	return ids
}
