package document

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/xdevs23/pcblin/core"
	"github.com/xdevs23/pcblin/format"
	"github.com/xdevs23/pcblin/graphicsstate"
)

// EndOfFile is the mandatory final instruction of every document.
const EndOfFile = "M02*"

// reservedApertures is the lowest aperture identifier available to
// documents; the format reserves everything below it.
const reservedApertures = 10

// Document accumulates an ordered sequence of building blocks together with
// the graphics state and coordinate format that subsequent operations depend
// on. The block sequence is append-only; blocks are immutable once added.
type Document struct {
	unit   format.Unit
	coord  format.Format
	blocks []core.Block
	state  graphicsstate.State

	nextAperture int
	apertures    *linkedhashmap.Map

	inRegion bool
}

// New creates an empty document with the given unit and coordinate format.
// Nothing is emitted yet; callers append the header instructions explicitly
// (or use the top-level builder, which does).
func New(unit format.Unit, coord format.Format) *Document {
	return &Document{
		unit:         unit,
		coord:        coord,
		nextAperture: reservedApertures,
		apertures:    linkedhashmap.New(),
	}
}

// Unit returns the document's measurement unit.
func (d *Document) Unit() format.Unit {
	return d.unit
}

// Precision returns the document's coordinate format.
func (d *Document) Precision() format.Format {
	return d.coord
}

// SetPrecision changes the coordinate format. The change affects only
// subsequently encoded values; already-appended blocks are immutable text.
// Callers must set the precision before appending the format-specification
// instruction and before encoding any coordinate.
func (d *Document) SetPrecision(integerDigits, decimalDigits int) error {
	coord, err := format.NewFormat(integerDigits, decimalDigits)
	if err != nil {
		return err
	}
	d.coord = coord
	return nil
}

// State returns a copy of the current graphics state.
func (d *Document) State() graphicsstate.State {
	return d.state.Clone()
}

// Append adds a block to the end of the sequence. Blocks are validated at
// construction, so appending always succeeds.
func (d *Document) Append(block core.Block) {
	d.blocks = append(d.blocks, block)
}

// Comment appends a human-readable comment. Multi-line text produces one
// marker-prefixed line per input line.
func (d *Document) Comment(text string) {
	d.Append(core.NewComment(text))
}

// Len returns the number of blocks appended so far.
func (d *Document) Len() int {
	return len(d.blocks)
}

// EncodeCoordinate renders a value in the document's current fixed-point
// coordinate format.
func (d *Document) EncodeCoordinate(value float64) (string, error) {
	return d.coord.Encode(value)
}

// WriteUnit appends the measurement-unit header instruction (MO).
func (d *Document) WriteUnit() {
	d.command("%MO" + d.unit.Code() + "*%")
}

// WriteFormatSpecification appends the coordinate format-specification
// header instruction (FS) for the current precision.
func (d *Document) WriteFormatSpecification() {
	d.command(fmt.Sprintf("%%FSLAX%d%dY%d%d*%%",
		d.coord.IntegerDigits, d.coord.DecimalDigits,
		d.coord.IntegerDigits, d.coord.DecimalDigits))
}

// Serialize renders every block in insertion order, one per line, followed
// by the end-of-file instruction and a trailing newline. It is side-effect
// free and may be called any number of times.
func (d *Document) Serialize() string {
	var b strings.Builder
	for _, blk := range d.blocks {
		b.WriteString(blk.String())
		b.WriteByte('\n')
	}
	b.WriteString(EndOfFile)
	b.WriteByte('\n')
	return b.String()
}

// ChecksumSource renders every block, without the end-of-file instruction,
// concatenated with no separators and with every line-ending character
// stripped. A content hash computed over it is stable across platforms'
// line-ending conventions.
func (d *Document) ChecksumSource() string {
	var b strings.Builder
	for _, blk := range d.blocks {
		b.WriteString(blk.String())
	}
	src := b.String()
	src = strings.ReplaceAll(src, "\r", "")
	src = strings.ReplaceAll(src, "\n", "")
	return src
}

// command appends an internally generated command. All such text is
// grammar-valid by construction; a failure is a programming error.
func (d *Document) command(text string) {
	c, err := core.NewCommand(text)
	if err != nil {
		panic(err)
	}
	d.Append(c)
}

// word appends an internally generated word.
func (d *Document) word(text string) {
	w, err := core.NewWord(text)
	if err != nil {
		panic(err)
	}
	d.Append(w)
}
