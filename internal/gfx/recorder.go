package gfx

import (
	"image/color"

	"cartesian-plane/pkg/geometry"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpColor OpKind = iota
	OpStroke
	OpLine
	OpRect
	OpFont
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpColor:
		return "color"
	case OpStroke:
		return "stroke"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpFont:
		return "font"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Color  color.RGBA
	Stroke float64
	Line   geometry.Line2D
	Rect   geometry.Rect
	Font   Font
	Text   string
	At     geometry.Point2D
}

// Recorder is a Canvas that stores every call for later inspection.
// Text is measured with a fixed-pitch metric derived from the font size:
// each rune is 0.6em wide and glyphs rise 0.7em above the baseline.
type Recorder struct {
	Ops  []Op
	font Font
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{font: Font{Size: 10}}
}

func (r *Recorder) SetColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpColor, Color: toRGBA(c)})
}

func (r *Recorder) SetStrokeWidth(w float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Stroke: w})
}

func (r *Recorder) DrawLine(l geometry.Line2D) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Line: l})
}

func (r *Recorder) FillRect(rect geometry.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect})
}

func (r *Recorder) SetFont(f Font) error {
	r.font = f
	r.Ops = append(r.Ops, Op{Kind: OpFont, Font: f})
	return nil
}

func (r *Recorder) MeasureText(s string) geometry.Rect {
	size := float64(r.font.RoundedSize())
	w := 0.6 * size * float64(len([]rune(s)))
	h := 0.7 * size
	return geometry.NewRect(0, -h, w, h)
}

func (r *Recorder) DrawText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, At: geometry.NewPoint2D(x, y)})
}

// Filter returns the recorded operations of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Lines returns every line drawn, in order.
func (r *Recorder) Lines() []geometry.Line2D {
	var out []geometry.Line2D
	for _, op := range r.Filter(OpLine) {
		out = append(out, op.Line)
	}
	return out
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
