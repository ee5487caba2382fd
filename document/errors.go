package document

import "errors"

// Sentinel errors for document operations. The wrapped message always
// carries the offending value.
var (
	// ErrApertureReserved indicates an aperture identifier below the
	// format's reserved minimum of 10.
	ErrApertureReserved = errors.New("document: aperture identifier is reserved")

	// ErrApertureRedefined indicates an aperture identifier that is
	// already defined in this document.
	ErrApertureRedefined = errors.New("document: aperture already defined")

	// ErrApertureUndefined indicates selection of an aperture identifier
	// with no definition in this document.
	ErrApertureUndefined = errors.New("document: aperture not defined")

	// ErrNoAperture indicates a plot or flash operation with no aperture
	// selected.
	ErrNoAperture = errors.New("document: no aperture selected")

	// ErrNoMode indicates a plot operation with no plotting mode set.
	ErrNoMode = errors.New("document: no plotting mode set")

	// ErrModeNotCircular indicates an arc operation while the plotting
	// mode is not circular.
	ErrModeNotCircular = errors.New("document: plotting mode is not circular")

	// ErrModeNotLinear indicates a straight plot operation while the
	// plotting mode is circular (offsets would be mandatory).
	ErrModeNotLinear = errors.New("document: plotting mode is not linear")

	// ErrScaleRange indicates a scale factor that is not strictly
	// positive.
	ErrScaleRange = errors.New("document: scale must be positive")
)
