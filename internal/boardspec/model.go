package boardspec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Board is the root of a board-layer description file.
type Board struct {
	Unit       string      `hcl:"unit"`
	Precision  []int       `hcl:"precision,optional"`
	Attributes []Attribute `hcl:"attribute,block"`
	Apertures  []Aperture  `hcl:"aperture,block"`
	Flashes    []Flash     `hcl:"flash,block"`
	Traces     []Trace     `hcl:"trace,block"`
	Regions    []Region    `hcl:"region,block"`
}

// Attribute is a file attribute to place in the header.
type Attribute struct {
	Name   string   `hcl:"name,label"`
	Values []string `hcl:"values,optional"`
}

// Aperture declares a named aperture. Which dimension fields apply depends
// on the shape: circle uses diameter; rectangle and obround use width and
// height; polygon uses diameter, vertices, and rotation. Every shape
// accepts an optional hole.
type Aperture struct {
	Name     string  `hcl:"name,label"`
	Shape    string  `hcl:"shape"`
	Diameter float64 `hcl:"diameter,optional"`
	Width    float64 `hcl:"width,optional"`
	Height   float64 `hcl:"height,optional"`
	Vertices int     `hcl:"vertices,optional"`
	Rotation float64 `hcl:"rotation,optional"`
	Hole     float64 `hcl:"hole,optional"`
}

// Flash stamps an aperture at a point.
type Flash struct {
	Aperture string         `hcl:"aperture"`
	At       hcl.Expression `hcl:"at"`
}

// Trace draws an aperture along a polyline.
type Trace struct {
	Aperture string         `hcl:"aperture"`
	Path     hcl.Expression `hcl:"path"`
}

// Region fills a closed contour, optionally under a non-default polarity.
type Region struct {
	Polarity string         `hcl:"polarity,optional"`
	Contour  hcl.Expression `hcl:"contour"`
}

// Load parses and decodes a board description file.
func Load(path string) (*Board, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardspec: parsing %s: %w", path, diags)
	}
	return decode(file)
}

// LoadSource parses and decodes a board description from an in-memory
// buffer, attributing diagnostics to filename.
func LoadSource(filename string, src []byte) (*Board, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardspec: parsing %s: %w", filename, diags)
	}
	return decode(file)
}

func decode(file *hcl.File) (*Board, error) {
	var board Board
	if diags := gohcl.DecodeBody(file.Body, nil, &board); diags.HasErrors() {
		return nil, fmt.Errorf("boardspec: decoding: %w", diags)
	}
	return &board, nil
}
