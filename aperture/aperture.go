package aperture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdevs23/pcblin/format"
)

// Polygon vertex counts supported by the standard polygon template.
const (
	MinVertices = 3
	MaxVertices = 12
)

// Sentinel errors for template validation.
var (
	// ErrDimension indicates a diameter or side length that is not
	// strictly positive, or a hole no smaller than its aperture.
	ErrDimension = errors.New("aperture: invalid dimension")

	// ErrVertexCount indicates a polygon vertex count outside [3,12].
	ErrVertexCount = errors.New("aperture: polygon vertex count out of range")
)

// Circle is the standard circle template: a solid disc with an optional
// round hole.
type Circle struct {
	Diameter     float64
	HoleDiameter float64 // zero means no hole
}

// Parameters renders the AD parameter list, e.g. "C,0.15" or "C,0.15X0.08".
func (c Circle) Parameters() (string, error) {
	if c.Diameter <= 0 {
		return "", fmt.Errorf("%w: circle diameter %v", ErrDimension, c.Diameter)
	}
	if err := checkHole(c.HoleDiameter, c.Diameter); err != nil {
		return "", err
	}
	return "C," + params(c.Diameter, hole(c.HoleDiameter)...), nil
}

// Rectangle is the standard rectangle template.
type Rectangle struct {
	Width        float64
	Height       float64
	HoleDiameter float64
}

// Parameters renders the AD parameter list, e.g. "R,0.5X0.3".
func (r Rectangle) Parameters() (string, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return "", fmt.Errorf("%w: rectangle %vx%v", ErrDimension, r.Width, r.Height)
	}
	if err := checkHole(r.HoleDiameter, min(r.Width, r.Height)); err != nil {
		return "", err
	}
	return "R," + params(r.Width, append([]float64{r.Height}, hole(r.HoleDiameter)...)...), nil
}

// Obround is the standard obround template: a rectangle with fully rounded
// short sides.
type Obround struct {
	Width        float64
	Height       float64
	HoleDiameter float64
}

// Parameters renders the AD parameter list, e.g. "O,0.5X0.3".
func (o Obround) Parameters() (string, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return "", fmt.Errorf("%w: obround %vx%v", ErrDimension, o.Width, o.Height)
	}
	if err := checkHole(o.HoleDiameter, min(o.Width, o.Height)); err != nil {
		return "", err
	}
	return "O," + params(o.Width, append([]float64{o.Height}, hole(o.HoleDiameter)...)...), nil
}

// Polygon is the standard regular-polygon template. The vertex count must
// lie in [3,12]; the rotation is in degrees counterclockwise from the
// positive X axis.
type Polygon struct {
	OuterDiameter float64
	Vertices      int
	Rotation      float64
	HoleDiameter  float64
}

// Parameters renders the AD parameter list, e.g. "P,1X6" or "P,1X6X30X0.2".
// The rotation field is included whenever it is nonzero or a hole follows
// it.
func (p Polygon) Parameters() (string, error) {
	if p.OuterDiameter <= 0 {
		return "", fmt.Errorf("%w: polygon outer diameter %v", ErrDimension, p.OuterDiameter)
	}
	if p.Vertices < MinVertices || p.Vertices > MaxVertices {
		return "", fmt.Errorf("%w: %d not in [%d,%d]",
			ErrVertexCount, p.Vertices, MinVertices, MaxVertices)
	}
	if err := checkHole(p.HoleDiameter, p.OuterDiameter); err != nil {
		return "", err
	}
	rest := []float64{float64(p.Vertices)}
	if p.Rotation != 0 || p.HoleDiameter > 0 {
		rest = append(rest, p.Rotation)
	}
	rest = append(rest, hole(p.HoleDiameter)...)
	return "P," + params(p.OuterDiameter, rest...), nil
}

func checkHole(holeDiameter, limit float64) error {
	if holeDiameter == 0 {
		return nil
	}
	if holeDiameter < 0 || holeDiameter >= limit {
		return fmt.Errorf("%w: hole diameter %v", ErrDimension, holeDiameter)
	}
	return nil
}

func hole(holeDiameter float64) []float64 {
	if holeDiameter > 0 {
		return []float64{holeDiameter}
	}
	return nil
}

// params renders an X-separated parameter list in plain decimal notation.
func params(first float64, rest ...float64) string {
	parts := make([]string, 0, 1+len(rest))
	parts = append(parts, format.Real(first).Text())
	for _, v := range rest {
		parts = append(parts, format.Real(v).Text())
	}
	return strings.Join(parts, "X")
}
