package document_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdevs23/pcblin/aperture"
	"github.com/xdevs23/pcblin/core"
	"github.com/xdevs23/pcblin/document"
	"github.com/xdevs23/pcblin/format"
	"github.com/xdevs23/pcblin/graphicsstate"
)

func newDoc(t *testing.T) *document.Document {
	t.Helper()
	coord, err := format.NewFormat(3, 6)
	require.NoError(t, err)
	return document.New(format.Millimeter, coord)
}

func TestEndToEndScenario(t *testing.T) {
	doc := newDoc(t)
	doc.WriteUnit()
	doc.WriteFormatSpecification()

	pad, err := doc.DefineAperture(aperture.Circle{Diameter: 0.15})
	require.NoError(t, err)
	assert.Equal(t, 10, pad)

	via, err := doc.DefineAperture(aperture.Circle{Diameter: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 11, via)

	require.NoError(t, doc.SetAperture(pad))
	err = doc.WithPolarity(graphicsstate.PolarityDark, func() error {
		return doc.Flash(10.0, 10.0)
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"%MOMM*%",
		"%FSLAX36Y36*%",
		"%ADD10C,0.15*%",
		"%ADD11C,0.2*%",
		"D10*",
		"%LPD*%",
		"X10000000Y10000000D03*",
		"M02*",
	}, "\n") + "\n"
	assert.Equal(t, want, doc.Serialize())

	// No prior polarity existed, so no restoring instruction is emitted
	// and the in-memory polarity is unset again.
	assert.Nil(t, doc.State().Polarity)
}

func TestSerializeIdempotent(t *testing.T) {
	doc := newDoc(t)
	doc.WriteUnit()
	doc.WriteFormatSpecification()
	doc.Comment("layer: top copper")

	first := doc.Serialize()
	second := doc.Serialize()
	assert.Equal(t, first, second)
}

func TestChecksumSourceStripsLineEndings(t *testing.T) {
	doc := newDoc(t)
	doc.WriteUnit()
	doc.Comment("one\ntwo\r\nthree")

	src := doc.ChecksumSource()
	assert.NotContains(t, src, "\n")
	assert.NotContains(t, src, "\r")
	assert.NotContains(t, src, document.EndOfFile)
}

func TestNestedScopesSameAxis(t *testing.T) {
	doc := newDoc(t)

	err := doc.WithRotation(20, func() error {
		require.NotNil(t, doc.State().Rotation)
		assert.Equal(t, 20.0, *doc.State().Rotation)
		return doc.WithRotation(10, func() error {
			assert.Equal(t, 10.0, *doc.State().Rotation)
			return nil
		})
	})
	require.NoError(t, err)

	// Back to "unset", exactly as before either scope began.
	assert.Nil(t, doc.State().Rotation)

	want := strings.Join([]string{
		"%LR20*%",
		"%LR10*%",
		"%LR20*%",
		"M02*",
	}, "\n") + "\n"
	assert.Equal(t, want, doc.Serialize())
}

func TestScopeRestoresOnError(t *testing.T) {
	doc := newDoc(t)
	boom := errors.New("boom")

	err := doc.WithPolarity(graphicsstate.PolarityDark, func() error {
		return doc.WithPolarity(graphicsstate.PolarityClear, func() error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, doc.State().Polarity)

	// The inner scope still emitted its restoring instruction on the way
	// out; the outer one had no prior value to restore.
	want := strings.Join([]string{
		"%LPD*%",
		"%LPC*%",
		"%LPD*%",
		"M02*",
	}, "\n") + "\n"
	assert.Equal(t, want, doc.Serialize())
}

func TestScopedAxes(t *testing.T) {
	doc := newDoc(t)

	err := doc.WithMirror(graphicsstate.MirrorXY, func() error {
		return doc.WithScale(2.5, func() error {
			assert.Equal(t, 2.5, *doc.State().Scale)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Nil(t, doc.State().Mirror)
	assert.Nil(t, doc.State().Scale)

	out := doc.Serialize()
	assert.Contains(t, out, "%LMXY*%")
	assert.Contains(t, out, "%LS2.5*%")
}

func TestWithScaleRejectsNonPositive(t *testing.T) {
	doc := newDoc(t)

	err := doc.WithScale(0, func() error { return nil })
	assert.ErrorIs(t, err, document.ErrScaleRange)
	err = doc.WithScale(-1, func() error { return nil })
	assert.ErrorIs(t, err, document.ErrScaleRange)

	// Nothing was emitted for the rejected scopes.
	assert.Equal(t, 0, doc.Len())
}

func TestApertureAllocation(t *testing.T) {
	doc := newDoc(t)

	assert.Equal(t, 10, doc.NextApertureID())
	assert.Equal(t, 11, doc.NextApertureID())

	require.NoError(t, doc.DefineApertureWithID(20, aperture.Circle{Diameter: 0.1}))
	id, err := doc.DefineAperture(aperture.Circle{Diameter: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 21, id, "allocator moves past explicitly used identifiers")

	assert.Equal(t, []int{20, 21}, doc.Apertures())
}

func TestApertureErrors(t *testing.T) {
	doc := newDoc(t)

	err := doc.DefineApertureWithID(5, aperture.Circle{Diameter: 0.1})
	assert.ErrorIs(t, err, document.ErrApertureReserved)

	require.NoError(t, doc.DefineApertureWithID(10, aperture.Circle{Diameter: 0.1}))
	err = doc.DefineApertureWithID(10, aperture.Circle{Diameter: 0.2})
	assert.ErrorIs(t, err, document.ErrApertureRedefined)

	err = doc.SetAperture(99)
	assert.ErrorIs(t, err, document.ErrApertureUndefined)
}

func TestPlotPreconditions(t *testing.T) {
	doc := newDoc(t)

	err := doc.Flash(1, 1)
	assert.ErrorIs(t, err, document.ErrNoAperture)

	id, err := doc.DefineAperture(aperture.Circle{Diameter: 0.1})
	require.NoError(t, err)
	require.NoError(t, doc.SetAperture(id))

	err = doc.Plot(1, 1)
	assert.ErrorIs(t, err, document.ErrNoMode)

	err = doc.Arc(1, 1, 0.5, 0)
	assert.ErrorIs(t, err, document.ErrModeNotCircular)

	doc.SetPlottingMode(graphicsstate.ModeClockwise)
	err = doc.Plot(1, 1)
	assert.ErrorIs(t, err, document.ErrModeNotLinear)

	doc.SetPlottingMode(graphicsstate.ModeLinear)
	err = doc.Arc(1, 1, 0.5, 0)
	assert.ErrorIs(t, err, document.ErrModeNotCircular)
}

func TestPlotOperations(t *testing.T) {
	doc := newDoc(t)
	id, err := doc.DefineAperture(aperture.Circle{Diameter: 0.15})
	require.NoError(t, err)
	require.NoError(t, doc.SetAperture(id))

	doc.SetPlottingMode(graphicsstate.ModeLinear)
	require.NoError(t, doc.Move(0, 0))
	require.NoError(t, doc.Plot(10, 0))

	doc.EnableMultiQuadrant()
	doc.SetPlottingMode(graphicsstate.ModeCounterclockwise)
	require.NoError(t, doc.Arc(10, 10, 0, 5))

	out := doc.Serialize()
	assert.Contains(t, out, "G01*\nX0Y0D02*\nX10000000Y0D01*")
	assert.Contains(t, out, "G75*\nG03*\nX10000000Y10000000I0J5000000D01*")
}

func TestRegion(t *testing.T) {
	doc := newDoc(t)
	doc.SetPlottingMode(graphicsstate.ModeLinear)

	// Contours inside a region plot without a selected aperture.
	err := doc.Region(func() error {
		if err := doc.Move(0, 0); err != nil {
			return err
		}
		if err := doc.Plot(10, 0); err != nil {
			return err
		}
		return doc.Plot(0, 0)
	})
	require.NoError(t, err)

	out := doc.Serialize()
	assert.Contains(t, out, "G36*\nX0Y0D02*")
	assert.Contains(t, out, "G37*")
}

func TestRegionClosesOnError(t *testing.T) {
	doc := newDoc(t)
	boom := errors.New("boom")

	err := doc.Region(func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, doc.Serialize(), "G36*\nG37*")
}

func TestSetPrecision(t *testing.T) {
	doc := newDoc(t)

	require.NoError(t, doc.SetPrecision(4, 6))
	doc.WriteFormatSpecification()
	assert.Contains(t, doc.Serialize(), "%FSLAX46Y46*%")

	enc, err := doc.EncodeCoordinate(1.0)
	require.NoError(t, err)
	assert.Equal(t, "1000000", enc)

	err = doc.SetPrecision(0, 6)
	assert.ErrorIs(t, err, format.ErrPrecision)
	err = doc.SetPrecision(3, 4)
	assert.ErrorIs(t, err, format.ErrPrecision)
}

func TestAppendAndComment(t *testing.T) {
	doc := newDoc(t)

	w, err := core.NewWord("G04 legacy comment*")
	require.NoError(t, err)
	doc.Append(w)
	doc.Comment("two\nlines")

	want := strings.Join([]string{
		"G04 legacy comment*",
		"# two",
		"# lines",
		"M02*",
	}, "\n") + "\n"
	assert.Equal(t, want, doc.Serialize())
}
