package lines

import (
	"fmt"
	"io"
	"strings"

	"cartesian-plane/internal/cliutil"
	"cartesian-plane/internal/linegen"
	"cartesian-plane/internal/plane"
	"cartesian-plane/internal/profile"
	"cartesian-plane/pkg/geometry"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Families accepted by --family.
var Families = []string{"grid", "minor", "major", "axes"}

// Dump is the geometry of one line family.
type Dump struct {
	Family  string            `json:"family" yaml:"family"`
	Grid    geometry.Rect     `json:"grid" yaml:"grid"`
	Spacing float64           `json:"spacing" yaml:"spacing"`
	Lines   []geometry.Line2D `json:"lines" yaml:"lines"`
}

// NewLinesCmd creates the command that prints the segments of a family.
func NewLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Print the line segments of one line family",
		Long: heredoc.Doc(`
			Lay out the plane for the given surface size and print the
			segments the renderer would draw for one line family, in draw
			order. The family's draw flag is ignored.
		`),
		Example: heredoc.Doc(`
			# Major tic marks of the defaults as YAML
			$ planerender lines --family major --format yaml

			# Grid lines of a profile at 800x600
			$ planerender lines -p my.profile --width 800 --height 600
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("profile")
			p, err := cliutil.LoadProfile(path)
			if err != nil {
				log.Error("Failed to load profile", "path", path, "error", err)
				return fmt.Errorf("failed to load profile: %w", err)
			}
			d, err := Collect(p, viper.GetString("family"), viper.GetInt("width"), viper.GetInt("height"))
			if err != nil {
				return err
			}
			return Print(cmd.OutOrStdout(), viper.GetString("format"), d)
		},
	}

	cmd.Flags().StringP("profile", "p", "", "Profile file (default is the built-in profile)")
	cmd.Flags().Int("width", 500, "Surface width in pixels")
	cmd.Flags().Int("height", 500, "Surface height in pixels")
	cmd.Flags().String("family", "grid", "Line family: "+strings.Join(Families, ", "))
	cmd.Flags().String("format", cliutil.FormatText, "Output format: text, json or yaml")

	return cmd
}

// Collect lays out p on a width x height surface and gathers one family.
func Collect(p *profile.Profile, family string, width, height int) (Dump, error) {
	cfg := p.Config()
	grid := plane.Layout(cfg, width, height).Grid
	d := Dump{Family: family, Grid: grid}

	var gen *linegen.LineGenerator
	switch family {
	case "grid":
		gen = linegen.NewGridLines(grid, cfg.GridUnit, cfg.GridLines.PerUnit)
	case "minor":
		gen = linegen.NewTics(grid, cfg.GridUnit, cfg.MinorTics.PerUnit, cfg.MinorTics.Length, linegen.Both)
	case "major":
		gen = linegen.NewTics(grid, cfg.GridUnit, cfg.MajorTics.PerUnit, cfg.MajorTics.Length, linegen.Both)
	case "axes":
		d.Lines = linegen.Axes(grid)
		return d, nil
	default:
		return Dump{}, fmt.Errorf("unknown line family %q (want one of %s)", family, strings.Join(Families, ", "))
	}

	d.Spacing = gen.Spacing()
	d.Lines = gen.Lines()
	if d.Lines == nil {
		d.Lines = []geometry.Line2D{}
	}
	return d, nil
}

// Print writes d as text, one "x1 y1 x2 y2" row per segment, or as JSON
// or YAML.
func Print(w io.Writer, format string, d Dump) error {
	if format != cliutil.FormatText {
		return cliutil.WriteOutput(w, format, d)
	}
	if _, err := fmt.Fprintf(w, "# %s: %d lines, spacing %g\n", d.Family, len(d.Lines), d.Spacing); err != nil {
		return err
	}
	for _, l := range d.Lines {
		if _, err := fmt.Fprintf(w, "%g %g %g %g\n", l.P1.X, l.P1.Y, l.P2.X, l.P2.Y); err != nil {
			return err
		}
	}
	return nil
}
