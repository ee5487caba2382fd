package attribute

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/xdevs23/pcblin/core"
)

// Standard file attribute names.
const (
	// Part declares which part the file describes (Single, Array, ...).
	Part core.Name = ".Part"

	// FileFunction declares the function of the file in the fabrication
	// data set (Copper, Soldermask, Profile, ...).
	FileFunction core.Name = ".FileFunction"

	// FilePolarity declares whether the image is positive or negative.
	FilePolarity core.Name = ".FilePolarity"

	// GenerationSoftware identifies the software that generated the file.
	GenerationSoftware core.Name = ".GenerationSoftware"

	// CreationDate holds the moment the file was generated.
	CreationDate core.Name = ".CreationDate"

	// ProjectID links the file to a project and revision.
	ProjectID core.Name = ".ProjectId"

	// MD5 holds the content checksum of the file.
	MD5 core.Name = ".MD5"

	// SameCoordinates declares that all files in the set share one
	// coordinate system.
	SameCoordinates core.Name = ".SameCoordinates"
)

// Standard aperture and object attribute names.
const (
	// AperFunction declares the function of objects created with an
	// aperture (ViaPad, ComponentPad, Conductor, ...).
	AperFunction core.Name = ".AperFunction"

	// DrillTolerance declares the plus/minus drill tolerance.
	DrillTolerance core.Name = ".DrillTolerance"

	// Net declares the net name of subsequent objects.
	Net core.Name = ".N"

	// Pin declares the reference descriptor and pin of subsequent pads.
	Pin core.Name = ".P"

	// Component declares the component reference of subsequent objects.
	Component core.Name = ".C"
)

// CreationDateValue renders a time for the .CreationDate attribute in the
// ISO-8601 form the format requires, including the UTC offset.
func CreationDateValue(t time.Time) string {
	return t.Format("2006-01-02T15:04:05-07:00")
}

// ChecksumValue computes the .MD5 attribute value over a document's
// checksum source (the serialized content without the end-of-file
// instruction and without line endings).
func ChecksumValue(checksumSource string) string {
	sum := md5.Sum([]byte(checksumSource))
	return hex.EncodeToString(sum[:])
}
