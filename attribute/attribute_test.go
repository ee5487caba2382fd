package attribute_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdevs23/pcblin/attribute"
	"github.com/xdevs23/pcblin/core"
)

func TestSet(t *testing.T) {
	cmd, err := attribute.Set(attribute.File, attribute.Part, "Single")
	require.NoError(t, err)
	assert.Equal(t, "%TF.Part,Single*%", cmd.String())

	cmd, err = attribute.Set(attribute.File, attribute.FileFunction, "Copper", "L1", "Top")
	require.NoError(t, err)
	assert.Equal(t, "%TF.FileFunction,Copper,L1,Top*%", cmd.String())

	cmd, err = attribute.Set(attribute.Aperture, attribute.AperFunction, "ViaPad")
	require.NoError(t, err)
	assert.Equal(t, "%TA.AperFunction,ViaPad*%", cmd.String())

	cmd, err = attribute.Set(attribute.Object, attribute.Net, "GND")
	require.NoError(t, err)
	assert.Equal(t, "%TO.N,GND*%", cmd.String())

	// Attribute without values.
	cmd, err = attribute.Set(attribute.File, attribute.SameCoordinates)
	require.NoError(t, err)
	assert.Equal(t, "%TF.SameCoordinates*%", cmd.String())
}

func TestSetRejectsInvalidName(t *testing.T) {
	_, err := attribute.Set(attribute.File, core.Name("1bad"))
	assert.ErrorIs(t, err, core.ErrInvalidName)
}

func TestDelete(t *testing.T) {
	cmd, err := attribute.Delete(attribute.AperFunction)
	require.NoError(t, err)
	assert.Equal(t, "%TD.AperFunction*%", cmd.String())

	cmd, err = attribute.Delete("")
	require.NoError(t, err)
	assert.Equal(t, "%TD*%", cmd.String())
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"plain", "Copper", `Copper`},
		{"comma", "a,b", `a\u002Cb`},
		{"asterisk", "a*b", `a\u002Ab`},
		{"percent", "100%", `100\u0025`},
		{"backslash", `a\b`, `a\u005Cb`},
		{"newline", "a\nb", `a\u000Ab`},
		{"non-ascii", "µ", `\u00B5`},
		{"outside bmp", "\U0001D11E", `\uD834\uDD1E`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attribute.Escape(tt.field))
		})
	}
}

func TestEscapedValueInCommand(t *testing.T) {
	cmd, err := attribute.Set(attribute.File, attribute.ProjectID, "rev*2,final")
	require.NoError(t, err)
	assert.Equal(t, `%TF.ProjectId,rev\u002A2\u002Cfinal*%`, cmd.String())
}

func TestCreationDateValue(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2026, 8, 31, 14, 5, 9, 0, loc)
	assert.Equal(t, "2026-08-31T14:05:09+01:00", attribute.CreationDateValue(ts))
}

func TestChecksumValue(t *testing.T) {
	// md5("") is the well-known empty-input digest.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", attribute.ChecksumValue(""))

	sum := attribute.ChecksumValue("%MOMM*%%FSLAX36Y36*%")
	assert.Len(t, sum, 32)
	assert.Equal(t, sum, attribute.ChecksumValue("%MOMM*%%FSLAX36Y36*%"))
}
