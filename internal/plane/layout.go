package plane

import (
	"cartesian-plane/pkg/geometry"
)

// Frame is the geometry of one paint pass.
type Frame struct {
	// Surface covers the whole drawing surface.
	Surface geometry.Rect

	// Grid is the surface minus the margins; all lines are drawn in it.
	Grid geometry.Rect

	Top, Right, Bottom, Left geometry.Rect
}

// Layout computes the frame for a surface of the given pixel size.
func Layout(cfg Config, width, height int) Frame {
	w, h := float64(width), float64(height)
	m := cfg.Margins
	return Frame{
		Surface: geometry.NewRect(0, 0, w, h),
		Grid:    geometry.NewRect(0, 0, w, h).Inset(m.Top.Width, m.Right.Width, m.Bottom.Width, m.Left.Width),
		Top:     geometry.NewRect(0, 0, w, m.Top.Width),
		Right:   geometry.NewRect(w-m.Right.Width, 0, m.Right.Width, h),
		Bottom:  geometry.NewRect(0, h-m.Bottom.Width, w, m.Bottom.Width),
		Left:    geometry.NewRect(0, 0, m.Left.Width, h),
	}
}

// Transform maps logical plane coordinates to pixels: the origin sits at
// the center of the grid rectangle and y grows upward.
func (f Frame) Transform(gridUnit float64) geometry.AffineTransform {
	return geometry.Translation(f.Grid.CenterX(), f.Grid.CenterY()).
		Compose(geometry.Scale(gridUnit, -gridUnit))
}

// ToLogical maps a pixel to logical plane coordinates. The second result
// is false when gridUnit is zero.
func (f Frame) ToLogical(gridUnit float64, p geometry.Point2D) (geometry.Point2D, bool) {
	inv, ok := f.Transform(gridUnit).Inverse()
	if !ok {
		return geometry.Point2D{}, false
	}
	return inv.Apply(p), true
}
