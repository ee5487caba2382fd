// Package boardspec loads the HCL board-layer description consumed by the
// pcblin command and compiles it into a Gerber document.
//
// A board file declares the unit and precision, the file attributes, a set
// of named apertures, and the operations that use them:
//
//	unit      = "mm"
//	precision = [3, 6]
//
//	aperture "pad" {
//	  shape    = "circle"
//	  diameter = 0.5
//	}
//
//	flash {
//	  aperture = "pad"
//	  at       = [10.0, 10.0]
//	}
//
//	trace {
//	  aperture = "track"
//	  path     = [[0, 0], [10, 0], [10, 10]]
//	}
//
// Operations are emitted grouped by kind (flashes, then traces, then
// regions); within a kind, file order is preserved. The grouping does not
// change the plotted image.
package boardspec
