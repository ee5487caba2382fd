// Package pcblin provides a fluent API for generating Gerber X2 photoplot
// files.
//
// Basic usage:
//
//	doc, err := pcblin.Build(
//	    pcblin.WithUnit(format.Millimeter),
//	    pcblin.WithPrecision(3, 6),
//	)
//	if err != nil {
//	    // handle error
//	}
//	pad, _ := doc.DefineAperture(aperture.Circle{Diameter: 0.5})
//	doc.SetAperture(pad)
//	doc.Flash(10.0, 10.0)
//	output := doc.Serialize()
//
// Build writes the file attributes and the unit and format-specification
// headers; everything after that goes through the document's own
// operations. For lower-level control the document, aperture, attribute,
// and macro packages are also available.
package pcblin

import (
	"github.com/xdevs23/pcblin/attribute"
	"github.com/xdevs23/pcblin/document"
	"github.com/xdevs23/pcblin/format"
)

// Build creates a document, applies the options, and appends the header
// instructions: the configured file attributes first, then the
// measurement-unit and format-specification instructions.
func Build(opts ...Option) (*document.Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	coord, err := format.NewFormat(o.coord.IntegerDigits, o.coord.DecimalDigits)
	if err != nil {
		return nil, err
	}

	doc := document.New(o.unit, coord)
	for _, fa := range o.fileAttributes {
		cmd, err := attribute.Set(attribute.File, fa.name, fa.values...)
		if err != nil {
			return nil, err
		}
		doc.Append(cmd)
	}
	doc.WriteUnit()
	doc.WriteFormatSpecification()
	return doc, nil
}

// Checksum appends the .MD5 file attribute computed over the document's
// current content. It belongs at the very end of the build, after the last
// content instruction.
func Checksum(doc *document.Document) error {
	cmd, err := attribute.Set(attribute.File, attribute.MD5,
		attribute.ChecksumValue(doc.ChecksumSource()))
	if err != nil {
		return err
	}
	doc.Append(cmd)
	return nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	pad := pcblin.Must(doc.DefineAperture(aperture.Circle{Diameter: 0.5}))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
