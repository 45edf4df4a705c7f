// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect represents a rectangle with floating-point coordinates.
// X and Y locate the top-left corner in device space (y grows downward).
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.CenterX(), Y: r.CenterY()}
}

// Empty reports whether the rectangle encloses no area.
// Rectangles with NaN dimensions are empty.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Inset shrinks the rectangle by independent amounts on each side.
// Insets larger than the rectangle produce a negative size, which
// reports as Empty.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}

// Line2D is a line segment between two points.
type Line2D struct {
	P1 Point2D `json:"p1" yaml:"p1"`
	P2 Point2D `json:"p2" yaml:"p2"`
}

// NewLine2D creates a segment from (x1, y1) to (x2, y2).
func NewLine2D(x1, y1, x2, y2 float64) Line2D {
	return Line2D{P1: Point2D{X: x1, Y: y1}, P2: Point2D{X: x2, Y: y2}}
}

// IsHorizontal reports whether both endpoints share a y-coordinate.
func (l Line2D) IsHorizontal() bool { return l.P1.Y == l.P2.Y }

// IsVertical reports whether both endpoints share an x-coordinate.
func (l Line2D) IsVertical() bool { return l.P1.X == l.P2.X }

// Length returns the segment length.
func (l Line2D) Length() float64 { return l.P1.Distance(l.P2) }

// Midpoint returns the point halfway between the endpoints.
func (l Line2D) Midpoint() Point2D {
	return Point2D{X: (l.P1.X + l.P2.X) / 2, Y: (l.P1.Y + l.P2.Y) / 2}
}

// AffineTransform represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a translation transform.
func Translation(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: tx, TY: ty}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns this transform composed with another (this * other).
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-10 {
		return AffineTransform{}, false
	}

	invDet := 1.0 / det
	return AffineTransform{
		A:  t.D * invDet,
		B:  -t.B * invDet,
		TX: (t.B*t.TY - t.D*t.TX) * invDet,
		C:  -t.C * invDet,
		D:  t.A * invDet,
		TY: (t.C*t.TX - t.A*t.TY) * invDet,
	}, true
}
