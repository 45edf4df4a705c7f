package plane

import (
	"image/color"
	"testing"

	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/linegen"
	"cartesian-plane/pkg/geometry"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bg     = color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 255}
	teal   = color.RGBA{G: 0x80, B: 0x80, A: 255}
	gray   = color.RGBA{R: 0x4B, G: 0x4B, B: 0x4B, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
)

// testConfig draws on a 500x500 surface with 50px margins, so the grid
// rectangle is (50,50,400,400) centered at (250,250).
func testConfig() Config {
	m := Margin{Width: 50, Color: teal}
	return Config{
		GridUnit:   100,
		Background: bg,
		Margins:    Margins{Top: m, Right: m, Bottom: m, Left: m},
		GridLines:  LineFamily{Color: gray, Stroke: 1, PerUnit: 1, Draw: true},
		MinorTics:  LineFamily{Color: green, Stroke: 1, PerUnit: 4, Length: 4, Draw: true},
		MajorTics:  LineFamily{Color: blue, Stroke: 2, PerUnit: 1, Length: 8, Draw: true},
		Axes:       LineFamily{Color: red, Stroke: 3},
		Labels: LabelStyle{
			Font:  gfx.Font{Name: "Monospaced", Size: 10},
			Color: yellow,
			Draw:  true,
		},
	}
}

func TestLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Margins.Left.Width = 20
	cfg.Margins.Bottom.Width = 30

	f := Layout(cfg, 500, 400)
	assert.Equal(t, geometry.NewRect(0, 0, 500, 400), f.Surface)
	assert.Equal(t, geometry.NewRect(20, 50, 430, 320), f.Grid)
	assert.Equal(t, geometry.NewRect(0, 0, 500, 50), f.Top)
	assert.Equal(t, geometry.NewRect(450, 0, 50, 400), f.Right)
	assert.Equal(t, geometry.NewRect(0, 370, 500, 30), f.Bottom)
	assert.Equal(t, geometry.NewRect(0, 0, 20, 400), f.Left)
}

func TestToLogical(t *testing.T) {
	f := Layout(testConfig(), 500, 500)

	p, ok := f.ToLogical(100, geometry.NewPoint2D(250, 250))
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint2D(0, 0), p)

	p, ok = f.ToLogical(100, geometry.NewPoint2D(350, 50))
	require.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 2.0, p.Y, 1e-12)

	_, ok = f.ToLogical(0, geometry.NewPoint2D(1, 1))
	assert.False(t, ok)
}

func TestRenderPaintOrder(t *testing.T) {
	cfg := testConfig()
	rec := gfx.NewRecorder()
	f := Render(rec, cfg, 500, 500)

	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, gfx.OpColor, rec.Ops[0].Kind)
	assert.Equal(t, bg, rec.Ops[0].Color)
	assert.Equal(t, gfx.Op{Kind: gfx.OpRect, Rect: f.Surface}, rec.Ops[1])

	var want []geometry.Line2D
	want = append(want, linegen.NewGridLines(f.Grid, 100, 1).Lines()...)
	want = append(want, linegen.NewTics(f.Grid, 100, 4, 4, linegen.Both).Lines()...)
	want = append(want, linegen.NewTics(f.Grid, 100, 1, 8, linegen.Both).Lines()...)
	want = append(want, linegen.Axes(f.Grid)...)
	assert.Len(t, want, 10+34+10+2)
	assert.Empty(t, cmp.Diff(want, rec.Lines(), cmpopts.EquateApprox(0, 1e-9)))

	var strokes []float64
	for _, op := range rec.Filter(gfx.OpStroke) {
		strokes = append(strokes, op.Stroke)
	}
	assert.Equal(t, []float64{1, 1, 2, 3}, strokes)

	// The tail is the four margins, top to bottom-left, each color then fill.
	tail := rec.Ops[len(rec.Ops)-8:]
	rects := []geometry.Rect{f.Top, f.Right, f.Bottom, f.Left}
	for i, r := range rects {
		assert.Equal(t, gfx.Op{Kind: gfx.OpColor, Color: teal}, tail[2*i])
		assert.Equal(t, gfx.Op{Kind: gfx.OpRect, Rect: r}, tail[2*i+1])
	}

	// Labels come after the last line and before the margins.
	lastLine, firstText := -1, -1
	for i, op := range rec.Ops {
		switch op.Kind {
		case gfx.OpLine:
			lastLine = i
		case gfx.OpText:
			if firstText < 0 {
				firstText = i
			}
		}
	}
	assert.Less(t, lastLine, firstText)
	assert.Less(t, firstText, len(rec.Ops)-8)
}

func TestRenderLabels(t *testing.T) {
	rec := gfx.NewRecorder()
	Render(rec, testConfig(), 500, 500)

	texts := rec.Filter(gfx.OpText)
	require.Len(t, texts, 10)

	var got []string
	for _, op := range texts {
		got = append(got, op.Text)
	}
	assert.Equal(t, []string{
		"2.00", "1.00", "0.00", "-1.00", "-2.00",
		"-2.00", "-1.00", "0.00", "1.00", "2.00",
	}, got)

	// Recorder text metrics at size 10: 6px per rune, 7px tall.
	// Top y label: right of the tic end (254) plus padding, centered on y=50.
	assert.Equal(t, geometry.NewPoint2D(257, 53.5), texts[0].At)
	// Leftmost x label: centered on x=50, below the tic end (254).
	assert.Equal(t, geometry.NewPoint2D(35, 264), texts[5].At)

	fonts := rec.Filter(gfx.OpFont)
	require.Len(t, fonts, 1)
	assert.Equal(t, "Monospaced", fonts[0].Font.Name)
}

func TestLabelsNoNegativeZero(t *testing.T) {
	cfg := testConfig()
	cfg.MajorTics.PerUnit = 3
	grid := geometry.NewRect(0, 0, 301, 301)
	for _, l := range Labels(gfx.NewRecorder(), cfg, grid) {
		assert.NotEqual(t, "-0.00", l.Text)
	}
}

func TestLabelsFractional(t *testing.T) {
	cfg := testConfig()
	cfg.MajorTics.PerUnit = 2
	labels := Labels(gfx.NewRecorder(), cfg, geometry.NewRect(0, 0, 200, 200))

	var ys []string
	for _, l := range labels {
		if l.Axis == YAxis {
			ys = append(ys, l.Text)
		}
	}
	assert.Equal(t, []string{"1.00", "0.50", "0.00", "-0.50", "-1.00"}, ys)
}

func TestRenderDisabledFamilies(t *testing.T) {
	cfg := testConfig()
	cfg.GridLines.Draw = false
	cfg.MinorTics.Draw = false
	cfg.MajorTics.Draw = false
	cfg.Labels.Draw = false

	rec := gfx.NewRecorder()
	f := Render(rec, cfg, 500, 500)

	assert.Equal(t, linegen.Axes(f.Grid), rec.Lines())
	assert.Empty(t, rec.Filter(gfx.OpText))
	assert.Empty(t, rec.Filter(gfx.OpFont))
}

func TestRenderZeroDensity(t *testing.T) {
	cfg := testConfig()
	cfg.GridLines.PerUnit = 0
	cfg.MinorTics.PerUnit = -1
	cfg.MajorTics.PerUnit = 0

	rec := gfx.NewRecorder()
	f := Render(rec, cfg, 500, 500)

	assert.Equal(t, linegen.Axes(f.Grid), rec.Lines())
	assert.Empty(t, rec.Filter(gfx.OpText))
}

func TestRenderMarginsCoverGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Margins.Top.Width = 300
	cfg.Margins.Bottom.Width = 300

	rec := gfx.NewRecorder()
	f := Render(rec, cfg, 500, 500)

	assert.True(t, f.Grid.Empty())
	assert.Empty(t, rec.Filter(gfx.OpText))
	rects := rec.Filter(gfx.OpRect)
	assert.Len(t, rects, 5)
}

func TestRenderDeterministic(t *testing.T) {
	a, b := gfx.NewRecorder(), gfx.NewRecorder()
	Render(a, testConfig(), 640, 480)
	Render(b, testConfig(), 640, 480)
	assert.Empty(t, cmp.Diff(a.Ops, b.Ops))
}

func TestRenderNilColors(t *testing.T) {
	rec := gfx.NewRecorder()
	Render(rec, Config{GridUnit: 50}, 100, 100)
	for _, op := range rec.Filter(gfx.OpColor) {
		assert.Equal(t, black, op.Color)
	}
}

func TestRenderRaster(t *testing.T) {
	r := gfx.NewRaster(500, 500)
	Render(r, testConfig(), 500, 500)

	img := r.Image()
	assert.Equal(t, teal, img.RGBAAt(10, 10))
	assert.Equal(t, teal, img.RGBAAt(490, 250))
	assert.Equal(t, red, img.RGBAAt(250, 250))
	assert.Equal(t, red, img.RGBAAt(120, 250))
	assert.Equal(t, gray, img.RGBAAt(150, 80))
	assert.Equal(t, bg, img.RGBAAt(120, 120))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", XAxis.String())
	assert.Equal(t, "y", YAxis.String())
}
