// Package linegen generates the grid lines, tic marks and axes of a
// Cartesian plane for a drawing rectangle.
//
// Every generator is centered on the rectangle's midpoint: lines are
// placed at center + k*spacing for each integer k whose position falls
// inside the rectangle, so the emitted set is symmetric about the center
// in both directions. Generators hold only their construction inputs and
// can be iterated any number of times.
package linegen

import (
	"iter"
	"math"

	"cartesian-plane/pkg/geometry"

	"gonum.org/v1/gonum/floats/scalar"
)

// Orientation selects which tic marks a generator emits.
type Orientation uint8

const (
	// Horizontal tics are horizontal segments placed along the vertical axis.
	Horizontal Orientation = 1 << iota
	// Vertical tics are vertical segments placed along the horizontal axis.
	Vertical

	Both = Horizontal | Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Both:
		return "both"
	}
	return "none"
}

const (
	// Tolerances for deciding whether the outermost line lies on the
	// rectangle edge. A line that close to the edge is kept.
	boundaryAbsTol = 1e-9
	boundaryRelTol = 1e-9

	// maxPerDirection bounds the lines emitted on one side of the center.
	// Spacings that would exceed it are treated as degenerate.
	maxPerDirection = 1 << 16
)

type mode uint8

const (
	modeGrid mode = iota
	modeTics
)

// LineGenerator produces a finite, deterministic sequence of segments.
type LineGenerator struct {
	rect        geometry.Rect
	spacing     float64
	length      float64
	mode        mode
	orientation Orientation
}

// NewGridLines returns a generator of full-width horizontal lines and
// full-height vertical lines spaced gridUnit/linesPerUnit pixels apart.
func NewGridLines(rect geometry.Rect, gridUnit, linesPerUnit float64) *LineGenerator {
	return &LineGenerator{
		rect:        rect,
		spacing:     spacingFor(gridUnit, linesPerUnit),
		mode:        modeGrid,
		orientation: Both,
	}
}

// NewTics returns a generator of tic marks markLength pixels long,
// centered on the axes and spaced gridUnit/marksPerUnit pixels apart.
func NewTics(rect geometry.Rect, gridUnit, marksPerUnit, markLength float64, orientation Orientation) *LineGenerator {
	return &LineGenerator{
		rect:        rect,
		spacing:     spacingFor(gridUnit, marksPerUnit),
		length:      markLength,
		mode:        modeTics,
		orientation: orientation,
	}
}

// Axes returns the horizontal line through the vertical center of rect
// followed by the vertical line through its horizontal center.
func Axes(rect geometry.Rect) []geometry.Line2D {
	cx, cy := rect.CenterX(), rect.CenterY()
	return []geometry.Line2D{
		geometry.NewLine2D(rect.MinX(), cy, rect.MaxX(), cy),
		geometry.NewLine2D(cx, rect.MinY(), cx, rect.MaxY()),
	}
}

// spacingFor returns the pixel distance between lines, or 0 when the
// inputs cannot produce a usable spacing.
func spacingFor(gridUnit, perUnit float64) float64 {
	if !(perUnit > 0) || !(gridUnit > 0) {
		return 0
	}
	s := gridUnit / perUnit
	if math.IsInf(s, 0) || math.IsNaN(s) || s <= 0 {
		return 0
	}
	return s
}

// Spacing returns the distance in pixels between consecutive lines.
// It is 0 for a generator that emits nothing.
func (g *LineGenerator) Spacing() float64 {
	return g.spacing
}

// Rect returns the rectangle the generator covers.
func (g *LineGenerator) Rect() geometry.Rect {
	return g.rect
}

// Positions returns the offsets from center, in pixels, at which lines are
// placed along one direction of the given half extent. The result is
// ordered from most negative to most positive and is symmetric.
func Positions(half, spacing float64) []float64 {
	if !(spacing > 0) || !(half >= 0) || math.IsInf(half, 0) {
		return nil
	}
	steps := math.Floor(half / spacing)
	if steps > maxPerDirection {
		return nil
	}
	count := int(steps)
	if scalar.EqualWithinAbsOrRel(float64(count+1)*spacing, half, boundaryAbsTol, boundaryRelTol) {
		count++
	}
	offsets := make([]float64, 0, 2*count+1)
	for k := -count; k <= count; k++ {
		offsets = append(offsets, float64(k)*spacing)
	}
	return offsets
}

// All yields each segment in order: horizontal lines from top to bottom,
// then vertical lines from left to right.
func (g *LineGenerator) All() iter.Seq[geometry.Line2D] {
	return func(yield func(geometry.Line2D) bool) {
		if g.spacing == 0 || g.rect.Empty() {
			return
		}
		r := g.rect
		cx, cy := r.CenterX(), r.CenterY()

		if g.orientation&Horizontal != 0 {
			x1, x2 := r.MinX(), r.MaxX()
			if g.mode == modeTics {
				x1, x2 = cx-g.length/2, cx+g.length/2
			}
			for _, off := range Positions(r.Height/2, g.spacing) {
				y := cy + off
				if !yield(geometry.NewLine2D(x1, y, x2, y)) {
					return
				}
			}
		}

		if g.orientation&Vertical != 0 {
			y1, y2 := r.MinY(), r.MaxY()
			if g.mode == modeTics {
				y1, y2 = cy-g.length/2, cy+g.length/2
			}
			for _, off := range Positions(r.Width/2, g.spacing) {
				x := cx + off
				if !yield(geometry.NewLine2D(x, y1, x, y2)) {
					return
				}
			}
		}
	}
}

// Lines collects the full sequence into a fresh slice.
func (g *LineGenerator) Lines() []geometry.Line2D {
	var lines []geometry.Line2D
	for l := range g.All() {
		lines = append(lines, l)
	}
	return lines
}

// Len returns the number of segments the generator emits.
func (g *LineGenerator) Len() int {
	if g.spacing == 0 || g.rect.Empty() {
		return 0
	}
	n := 0
	if g.orientation&Horizontal != 0 {
		n += len(Positions(g.rect.Height/2, g.spacing))
	}
	if g.orientation&Vertical != 0 {
		n += len(Positions(g.rect.Width/2, g.spacing))
	}
	return n
}
