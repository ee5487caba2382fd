package boardspec

import (
	"errors"
	"fmt"

	"github.com/xdevs23/pcblin"
	"github.com/xdevs23/pcblin/aperture"
	"github.com/xdevs23/pcblin/core"
	"github.com/xdevs23/pcblin/document"
	"github.com/xdevs23/pcblin/format"
	"github.com/xdevs23/pcblin/graphicsstate"
)

// Sentinel errors for board compilation.
var (
	// ErrUnknownUnit indicates a unit other than "mm" or "in".
	ErrUnknownUnit = errors.New("boardspec: unknown unit")

	// ErrUnknownShape indicates an aperture shape the compiler does not
	// support.
	ErrUnknownShape = errors.New("boardspec: unknown aperture shape")

	// ErrUnknownAperture indicates an operation referencing an aperture
	// name with no declaration.
	ErrUnknownAperture = errors.New("boardspec: unknown aperture")

	// ErrEmptyPath indicates a trace or region contour with fewer than
	// two points.
	ErrEmptyPath = errors.New("boardspec: path needs at least two points")
)

// Compile translates a board description into a complete Gerber document,
// ready to serialize.
func Compile(board *Board) (*document.Document, error) {
	opts, err := buildOptions(board)
	if err != nil {
		return nil, err
	}
	doc, err := pcblin.Build(opts...)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int, len(board.Apertures))
	for _, decl := range board.Apertures {
		tpl, err := template(decl)
		if err != nil {
			return nil, fmt.Errorf("aperture %q: %w", decl.Name, err)
		}
		id, err := doc.DefineAperture(tpl)
		if err != nil {
			return nil, fmt.Errorf("aperture %q: %w", decl.Name, err)
		}
		ids[decl.Name] = id
	}

	for _, flash := range board.Flashes {
		if err := compileFlash(doc, ids, flash); err != nil {
			return nil, err
		}
	}
	for _, trace := range board.Traces {
		if err := compileTrace(doc, ids, trace); err != nil {
			return nil, err
		}
	}
	for _, region := range board.Regions {
		if err := compileRegion(doc, region); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func buildOptions(board *Board) ([]pcblin.Option, error) {
	var opts []pcblin.Option
	switch board.Unit {
	case "mm":
		opts = append(opts, pcblin.WithUnit(format.Millimeter))
	case "in":
		opts = append(opts, pcblin.WithUnit(format.Inch))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, board.Unit)
	}
	if len(board.Precision) > 0 {
		if len(board.Precision) != 2 {
			return nil, fmt.Errorf("boardspec: precision must be [integer, decimal], got %v", board.Precision)
		}
		opts = append(opts, pcblin.WithPrecision(board.Precision[0], board.Precision[1]))
	}
	for _, attr := range board.Attributes {
		name, err := core.NewName(attr.Name)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
		}
		opts = append(opts, pcblin.WithFileAttribute(name, attr.Values...))
	}
	return opts, nil
}

func template(decl Aperture) (document.Aperture, error) {
	switch decl.Shape {
	case "circle":
		return aperture.Circle{Diameter: decl.Diameter, HoleDiameter: decl.Hole}, nil
	case "rectangle":
		return aperture.Rectangle{Width: decl.Width, Height: decl.Height, HoleDiameter: decl.Hole}, nil
	case "obround":
		return aperture.Obround{Width: decl.Width, Height: decl.Height, HoleDiameter: decl.Hole}, nil
	case "polygon":
		return aperture.Polygon{
			OuterDiameter: decl.Diameter,
			Vertices:      decl.Vertices,
			Rotation:      decl.Rotation,
			HoleDiameter:  decl.Hole,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, decl.Shape)
	}
}

func compileFlash(doc *document.Document, ids map[string]int, flash Flash) error {
	id, ok := ids[flash.Aperture]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAperture, flash.Aperture)
	}
	at, err := decodePoint(flash.At)
	if err != nil {
		return err
	}
	if err := doc.SetAperture(id); err != nil {
		return err
	}
	return doc.Flash(at.X, at.Y)
}

func compileTrace(doc *document.Document, ids map[string]int, trace Trace) error {
	id, ok := ids[trace.Aperture]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAperture, trace.Aperture)
	}
	path, err := decodePath(trace.Path)
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return fmt.Errorf("%w: trace with %d points", ErrEmptyPath, len(path))
	}
	if err := doc.SetAperture(id); err != nil {
		return err
	}
	doc.SetPlottingMode(graphicsstate.ModeLinear)
	if err := doc.Move(path[0].X, path[0].Y); err != nil {
		return err
	}
	for _, p := range path[1:] {
		if err := doc.Plot(p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func compileRegion(doc *document.Document, region Region) error {
	contour, err := decodePath(region.Contour)
	if err != nil {
		return err
	}
	if len(contour) < 2 {
		return fmt.Errorf("%w: region with %d points", ErrEmptyPath, len(contour))
	}
	doc.SetPlottingMode(graphicsstate.ModeLinear)

	fill := func() error {
		return doc.Region(func() error {
			if err := doc.Move(contour[0].X, contour[0].Y); err != nil {
				return err
			}
			for _, p := range contour[1:] {
				if err := doc.Plot(p.X, p.Y); err != nil {
					return err
				}
			}
			// Close the contour back to its start point.
			return doc.Plot(contour[0].X, contour[0].Y)
		})
	}

	switch region.Polarity {
	case "", "dark":
		return fill()
	case "clear":
		return doc.WithPolarity(graphicsstate.PolarityClear, fill)
	default:
		return fmt.Errorf("boardspec: unknown polarity %q", region.Polarity)
	}
}
