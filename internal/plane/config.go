// Package plane paints a Cartesian plane onto a gfx.Canvas.
//
// A paint pass takes an explicit Config and the current pixel size of the
// drawing surface. Every rectangle, line and label is computed inside the
// pass; nothing is cached between calls, so repeated calls with the same
// inputs issue identical draw commands.
package plane

import (
	"image/color"

	"cartesian-plane/internal/gfx"
)

// Margin is a colored band along one edge of the surface.
type Margin struct {
	Width float64
	Color color.Color
}

// Margins holds the four independently configured margins.
type Margins struct {
	Top, Right, Bottom, Left Margin
}

// LineFamily configures one family of lines: grid lines, minor tics,
// major tics or axes.
type LineFamily struct {
	Color  color.Color
	Stroke float64

	// PerUnit is the number of lines (or marks) per grid unit. The pixel
	// spacing between lines is GridUnit / PerUnit.
	PerUnit float64

	// Length is the tic mark length in pixels. Unused by grid lines and axes.
	Length float64

	// Draw enables the family. Axes are always drawn.
	Draw bool
}

// LabelStyle configures the numeric labels next to major tics.
type LabelStyle struct {
	Font  gfx.Font
	Color color.Color
	Draw  bool
}

// Config is everything a paint pass needs besides the surface size.
type Config struct {
	// GridUnit is the number of pixels per logical unit on both axes.
	GridUnit   float64
	Background color.Color
	Margins    Margins

	GridLines LineFamily
	MinorTics LineFamily
	MajorTics LineFamily
	Axes      LineFamily

	Labels LabelStyle
}

var black = color.RGBA{A: 255}

func colorOr(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
