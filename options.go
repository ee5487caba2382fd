package pcblin

import (
	"time"

	"github.com/xdevs23/pcblin/attribute"
	"github.com/xdevs23/pcblin/core"
	"github.com/xdevs23/pcblin/format"
)

type fileAttribute struct {
	name   core.Name
	values []string
}

type options struct {
	unit           format.Unit
	coord          format.Format
	fileAttributes []fileAttribute
}

func defaultOptions() options {
	return options{
		unit: format.Millimeter,
		coord: format.Format{
			IntegerDigits: 3,
			DecimalDigits: format.DecimalDigits,
		},
	}
}

// Option configures a document build.
type Option func(*options)

// WithUnit sets the measurement unit. The default is millimeters.
func WithUnit(u format.Unit) Option {
	return func(o *options) {
		o.unit = u
	}
}

// WithPrecision sets the coordinate format. The digit counts are validated
// when the document is created; the default is (3,6).
func WithPrecision(integerDigits, decimalDigits int) Option {
	return func(o *options) {
		o.coord = format.Format{
			IntegerDigits: integerDigits,
			DecimalDigits: decimalDigits,
		}
	}
}

// WithFileAttribute appends an arbitrary file attribute to the header.
func WithFileAttribute(name core.Name, values ...string) Option {
	return func(o *options) {
		o.fileAttributes = append(o.fileAttributes, fileAttribute{name: name, values: values})
	}
}

// WithGenerationSoftware sets the .GenerationSoftware file attribute.
func WithGenerationSoftware(vendor, application, version string) Option {
	return WithFileAttribute(attribute.GenerationSoftware, vendor, application, version)
}

// WithCreationDate sets the .CreationDate file attribute.
func WithCreationDate(t time.Time) Option {
	return WithFileAttribute(attribute.CreationDate, attribute.CreationDateValue(t))
}

// WithPart sets the .Part file attribute.
func WithPart(values ...string) Option {
	return WithFileAttribute(attribute.Part, values...)
}

// WithFileFunction sets the .FileFunction file attribute.
func WithFileFunction(values ...string) Option {
	return WithFileAttribute(attribute.FileFunction, values...)
}
