package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for coordinate formatting.
var (
	// ErrPrecision indicates integer/decimal digit counts outside the
	// supported profile.
	ErrPrecision = errors.New("format: precision out of range")

	// ErrOverflow indicates a value whose integer part needs more digits
	// than the format provides.
	ErrOverflow = errors.New("format: integer part overflows coordinate format")
)

// The format profile in use fixes the fractional width at six digits and
// allows one to six integer digits.
const (
	MinIntegerDigits = 1
	MaxIntegerDigits = 6
	DecimalDigits    = 6
)

// Format is a fixed-point coordinate format: how many digits the integer and
// fractional parts of an encoded coordinate occupy.
type Format struct {
	IntegerDigits int
	DecimalDigits int
}

// NewFormat validates the digit counts and returns the coordinate format.
// The decimal digit count must be exactly six; the integer digit count must
// lie in [1,6].
func NewFormat(integerDigits, decimalDigits int) (Format, error) {
	if integerDigits < MinIntegerDigits || integerDigits > MaxIntegerDigits {
		return Format{}, fmt.Errorf("%w: integer digits %d not in [%d,%d]",
			ErrPrecision, integerDigits, MinIntegerDigits, MaxIntegerDigits)
	}
	if decimalDigits != DecimalDigits {
		return Format{}, fmt.Errorf("%w: decimal digits %d, profile requires %d",
			ErrPrecision, decimalDigits, DecimalDigits)
	}
	return Format{IntegerDigits: integerDigits, DecimalDigits: decimalDigits}, nil
}

// Encode renders a value in the fixed-point encoding: the integer part with
// leading zeros stripped, immediately followed by the fractional part
// rounded to exactly DecimalDigits places, with no separator. A result whose
// digits are all zero collapses to "0" (negative zero included). A value
// whose integer part does not fit in IntegerDigits digits, including one
// pushed over the boundary by rounding, is an error.
func (f Format) Encode(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: cannot encode %v", ErrOverflow, value)
	}

	// FormatFloat applies round-to-nearest at the requested precision, so a
	// carry out of the fractional part is already folded into the integer
	// part before the width check.
	rendered := strconv.FormatFloat(math.Abs(value), 'f', f.DecimalDigits, 64)
	dot := strings.IndexByte(rendered, '.')
	integerPart, fractionPart := rendered[:dot], rendered[dot+1:]

	if len(integerPart) > f.IntegerDigits {
		return "", fmt.Errorf("%w: %v needs %d integer digits, format allows %d",
			ErrOverflow, value, len(integerPart), f.IntegerDigits)
	}

	digits := strings.TrimLeft(integerPart, "0") + fractionPart
	if strings.Trim(digits, "0") == "" {
		return "0", nil
	}
	if math.Signbit(value) {
		return "-" + digits, nil
	}
	return digits, nil
}
