package plane

import (
	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/linegen"
	"cartesian-plane/pkg/geometry"

	"github.com/charmbracelet/log"
)

// Render paints the plane onto c for a surface of width x height pixels
// and returns the frame it used. Paint order is background, grid lines,
// minor tics, major tics, axes, labels and finally the margins, which
// cover anything that spilled outside the grid rectangle.
func Render(c gfx.Canvas, cfg Config, width, height int) Frame {
	f := Layout(cfg, width, height)

	c.SetColor(colorOr(cfg.Background, black))
	c.FillRect(f.Surface)

	if cfg.GridLines.Draw {
		drawLines(c, cfg.GridLines, linegen.NewGridLines(f.Grid, cfg.GridUnit, cfg.GridLines.PerUnit))
	}
	if cfg.MinorTics.Draw {
		drawLines(c, cfg.MinorTics, linegen.NewTics(f.Grid, cfg.GridUnit, cfg.MinorTics.PerUnit, cfg.MinorTics.Length, linegen.Both))
	}
	if cfg.MajorTics.Draw {
		drawLines(c, cfg.MajorTics, linegen.NewTics(f.Grid, cfg.GridUnit, cfg.MajorTics.PerUnit, cfg.MajorTics.Length, linegen.Both))
	}

	c.SetColor(colorOr(cfg.Axes.Color, black))
	c.SetStrokeWidth(cfg.Axes.Stroke)
	for _, axis := range linegen.Axes(f.Grid) {
		c.DrawLine(axis)
	}

	if cfg.Labels.Draw {
		drawLabels(c, cfg, f.Grid)
	}

	paintMargins(c, cfg.Margins, f)
	return f
}

func drawLines(c gfx.Canvas, fam LineFamily, gen *linegen.LineGenerator) {
	c.SetColor(colorOr(fam.Color, black))
	c.SetStrokeWidth(fam.Stroke)
	for line := range gen.All() {
		c.DrawLine(line)
	}
}

func drawLabels(c gfx.Canvas, cfg Config, grid geometry.Rect) {
	if err := c.SetFont(cfg.Labels.Font); err != nil {
		log.Warn("Label font substituted", "font", cfg.Labels.Font.Name, "error", err)
	}
	c.SetColor(colorOr(cfg.Labels.Color, black))
	for _, l := range Labels(c, cfg, grid) {
		c.DrawText(l.Text, l.At.X, l.At.Y)
	}
}

func paintMargins(c gfx.Canvas, m Margins, f Frame) {
	margins := []struct {
		margin Margin
		rect   geometry.Rect
	}{
		{m.Top, f.Top},
		{m.Right, f.Right},
		{m.Bottom, f.Bottom},
		{m.Left, f.Left},
	}
	for _, mg := range margins {
		if mg.rect.Empty() {
			continue
		}
		c.SetColor(colorOr(mg.margin.Color, black))
		c.FillRect(mg.rect)
	}
}
