package boardspec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Point is a 2D coordinate from a board description.
type Point struct {
	X float64
	Y float64
}

// decodePoint evaluates an expression expected to be a two-element number
// tuple like [10.0, 10.0].
func decodePoint(expr hcl.Expression) (Point, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return Point{}, fmt.Errorf("boardspec: evaluating point: %w", diags)
	}
	return pointFromValue(val)
}

// decodePath evaluates an expression expected to be a tuple of points like
// [[0, 0], [10, 0]].
func decodePath(expr hcl.Expression) ([]Point, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardspec: evaluating path: %w", diags)
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("boardspec: path must be a list of points, got %s", val.Type().FriendlyName())
	}
	var points []Point
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		p, err := pointFromValue(elem)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func pointFromValue(val cty.Value) (Point, error) {
	if !val.CanIterateElements() || val.LengthInt() != 2 {
		return Point{}, fmt.Errorf("boardspec: point must be [x, y], got %s", val.Type().FriendlyName())
	}
	coords := make([]float64, 0, 2)
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			return Point{}, fmt.Errorf("boardspec: point coordinate must be a number, got %s", elem.Type().FriendlyName())
		}
		f, _ := elem.AsBigFloat().Float64()
		coords = append(coords, f)
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}
