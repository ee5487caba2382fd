// Package aperture provides the standard aperture templates of the format
// (circle, rectangle, obround, polygon) and macro-backed apertures, each
// rendering its aperture-definition parameter list. Templates validate
// their dimensions at rendering time; the document layer emits the
// resulting AD (and, for macros, AM) commands.
package aperture
