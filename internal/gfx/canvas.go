// Package gfx defines the drawing context the plane renderer paints on,
// along with a raster implementation and a recording implementation.
package gfx

import (
	"image/color"
	"strings"

	"cartesian-plane/pkg/geometry"
)

// Canvas is the minimal set of drawing primitives needed to paint a plane.
// Coordinates are device pixels with the origin at the top-left corner.
type Canvas interface {
	SetColor(c color.Color)
	SetStrokeWidth(w float64)
	DrawLine(l geometry.Line2D)
	FillRect(r geometry.Rect)

	// SetFont selects the face used by MeasureText and DrawText. A font
	// that cannot be resolved leaves a usable fallback face selected and
	// returns an error describing the substitution.
	SetFont(f Font) error

	// MeasureText returns the bounding box of s relative to its baseline
	// origin: X and Y are the offsets of the top-left corner.
	MeasureText(s string) geometry.Rect

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64)
}

// Style is a set of font style flags.
type Style uint8

const (
	Plain  Style = 0
	Bold   Style = 1
	Italic Style = 2
)

func (s Style) String() string {
	var parts []string
	if s&Bold != 0 {
		parts = append(parts, "bold")
	}
	if s&Italic != 0 {
		parts = append(parts, "italic")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, "+")
}

// Font describes a label font.
type Font struct {
	Name  string
	Style Style
	Size  float64 // points; rounded to the nearest integer when resolved
}

// RoundedSize returns the size rounded half up to a whole point, with a
// minimum of 1.
func (f Font) RoundedSize() int {
	n := int(f.Size + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
