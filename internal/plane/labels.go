package plane

import (
	"fmt"
	"math"

	"cartesian-plane/internal/linegen"
	"cartesian-plane/pkg/geometry"
)

// LabelPadding is the gap in pixels between a major tic and its label.
const LabelPadding = 3

// TextMeasurer measures rendered text. Every gfx.Canvas is one.
type TextMeasurer interface {
	MeasureText(s string) geometry.Rect
}

// Axis names which axis a label annotates.
type Axis int

const (
	// XAxis labels sit below the vertical tics on the horizontal axis.
	XAxis Axis = iota
	// YAxis labels sit right of the horizontal tics on the vertical axis.
	YAxis
)

func (a Axis) String() string {
	if a == YAxis {
		return "y"
	}
	return "x"
}

// Label is a placed axis label.
type Label struct {
	Axis  Axis
	Value float64
	Text  string

	// Tic is the major tic mark the label belongs to.
	Tic geometry.Line2D

	// Bounds is the measured text box relative to the baseline origin.
	Bounds geometry.Rect

	// At is the baseline origin the text is drawn from.
	At geometry.Point2D
}

// FormatLabel renders a label value with two decimals.
func FormatLabel(v float64) string {
	return fmt.Sprintf("%3.2f", v)
}

// Labels computes the y-axis labels followed by the x-axis labels for
// the major tics of grid. It returns nil when major tics have no usable
// density.
func Labels(m TextMeasurer, cfg Config, grid geometry.Rect) []Label {
	perUnit := cfg.MajorTics.PerUnit
	if !(perUnit > 0) || math.IsInf(perUnit, 0) {
		return nil
	}
	frame := Frame{Grid: grid}
	inv, ok := frame.Transform(cfg.GridUnit).Inverse()
	if !ok {
		return nil
	}

	length := cfg.MajorTics.Length
	var labels []Label

	yTics := linegen.NewTics(grid, cfg.GridUnit, perUnit, length, linegen.Horizontal)
	for tic := range yTics.All() {
		v := markValue(inv.Apply(geometry.NewPoint2D(grid.CenterX(), tic.P1.Y)).Y, perUnit)
		text := FormatLabel(v)
		b := m.MeasureText(text)
		labels = append(labels, Label{
			Axis:   YAxis,
			Value:  v,
			Text:   text,
			Tic:    tic,
			Bounds: b,
			At:     geometry.NewPoint2D(tic.P2.X+LabelPadding, tic.P1.Y+b.Height/2),
		})
	}

	xTics := linegen.NewTics(grid, cfg.GridUnit, perUnit, length, linegen.Vertical)
	for tic := range xTics.All() {
		v := markValue(inv.Apply(geometry.NewPoint2D(tic.P2.X, grid.CenterY())).X, perUnit)
		text := FormatLabel(v)
		b := m.MeasureText(text)
		labels = append(labels, Label{
			Axis:   XAxis,
			Value:  v,
			Text:   text,
			Tic:    tic,
			Bounds: b,
			At:     geometry.NewPoint2D(tic.P2.X-b.Width/2, tic.P2.Y+b.Height+LabelPadding),
		})
	}

	return labels
}

// markValue snaps a logical coordinate to the nearest tic and returns the
// tic's value in units. The snap absorbs floating-point error, and the
// integer step keeps the center label from printing as -0.00.
func markValue(logical, perUnit float64) float64 {
	step := int(math.Round(logical * perUnit))
	return float64(step) / perUnit
}
