package gfx

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cartesian-plane/pkg/geometry"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Raster is a Canvas that paints onto an RGBA image. Lines are drawn
// without antialiasing; text is rendered through the selected face.
type Raster struct {
	img    *image.RGBA
	color  color.RGBA
	stroke int
	font   Font
	face   font.Face
	faces  map[faceKey]font.Face
}

// NewRaster allocates a width x height image and a canvas over it.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return NewRasterFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterFor paints onto an existing image.
func NewRasterFor(img *image.RGBA) *Raster {
	return &Raster{
		img:    img,
		color:  color.RGBA{A: 255},
		stroke: 1,
		faces:  make(map[faceKey]font.Face),
	}
}

// Image returns the image being painted.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) SetColor(c color.Color) {
	r.color = toRGBA(c)
}

// SetStrokeWidth sets the line thickness, rounded to whole pixels.
// Widths below one pixel draw hairlines.
func (r *Raster) SetStrokeWidth(w float64) {
	n := int(math.Round(w))
	if n < 1 {
		n = 1
	}
	r.stroke = n
}

func (r *Raster) DrawLine(l geometry.Line2D) {
	drawThickLine(r.img, l.P1.X, l.P1.Y, l.P2.X, l.P2.Y, r.stroke, r.color)
}

func (r *Raster) FillRect(rect geometry.Rect) {
	if rect.Empty() {
		return
	}
	bounds := image.Rect(
		int(math.Round(rect.MinX())), int(math.Round(rect.MinY())),
		int(math.Round(rect.MaxX())), int(math.Round(rect.MaxY())),
	).Intersect(r.img.Bounds())
	draw.Draw(r.img, bounds, image.NewUniform(r.color), image.Point{}, draw.Src)
}

func (r *Raster) SetFont(f Font) error {
	r.font = f
	face, err := r.resolveFace(f)
	r.face = face
	return err
}

func (r *Raster) currentFace() font.Face {
	if r.face == nil {
		r.face, _ = r.resolveFace(Font{Name: DefaultFontName, Size: 10})
	}
	return r.face
}

func (r *Raster) resolveFace(f Font) (font.Face, error) {
	v, known := variantFor(f)
	key := faceKey{variant: v, size: f.RoundedSize()}
	if face, ok := r.faces[key]; ok {
		return face, unknownFont(f, known)
	}
	face, err := newFace(v, key.size)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", f.Name, err)
	}
	r.faces[key] = face
	return face, unknownFont(f, known)
}

func (r *Raster) MeasureText(s string) geometry.Rect {
	face := r.currentFace()
	if face == nil {
		return geometry.Rect{}
	}
	b, _ := font.BoundString(face, s)
	return geometry.NewRect(
		fromFixed(b.Min.X), fromFixed(b.Min.Y),
		fromFixed(b.Max.X-b.Min.X), fromFixed(b.Max.Y-b.Min.Y),
	)
}

func (r *Raster) DrawText(s string, x, y float64) {
	face := r.currentFace()
	if face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.color),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// drawThickLine draws a line with given thickness as parallel one-pixel
// lines offset along the perpendicular.
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 float64, thickness int, c color.RGBA) {
	bounds := img.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}

	// Perpendicular unit vector
	px := -dy / length
	py := dx / length

	start := -float64(thickness-1) / 2
	for i := 0; i < thickness; i++ {
		t := start + float64(i)
		ax, ay, bx, by, ok := clipSegment(x1+px*t, y1+py*t, x2+px*t, y2+py*t, bounds)
		if !ok {
			continue
		}
		drawLine(img, pixelOf(ax), pixelOf(ay), pixelOf(bx), pixelOf(by), c, bounds)
	}
}

// clipSegment trims a segment to the image bounds (Liang-Barsky) so that
// Bresenham never walks pixels far outside the image.
func clipSegment(x1, y1, x2, y2 float64, bounds image.Rectangle) (float64, float64, float64, float64, bool) {
	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y)
	maxX, maxY := float64(bounds.Max.X), float64(bounds.Max.Y)
	dx, dy := x2-x1, y2-y1

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// drawLine draws a line using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, bounds image.Rectangle) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// pixelOf maps a coordinate to the pixel that contains it.
func pixelOf(v float64) int {
	return int(math.Floor(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
