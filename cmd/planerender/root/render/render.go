package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cartesian-plane/internal/cliutil"
	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/plane"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRenderCmd creates the command that paints a profile into an image.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile to a PNG or TIFF image",
		Long: heredoc.Doc(`
			Paint the plane described by a profile at the given pixel size
			and write it as an image. Without --profile the built-in
			defaults are used.
		`),
		Example: heredoc.Doc(`
			# Render the defaults
			$ planerender render -o plane.png

			# Render a profile as a TIFF at 1024x768
			$ planerender render --profile my.profile --width 1024 --height 768 -o plane.tif
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), options{
				profile: viper.GetString("profile"),
				width:   viper.GetInt("width"),
				height:  viper.GetInt("height"),
				output:  viper.GetString("output"),
				format:  viper.GetString("format"),
			})
		},
	}

	cmd.Flags().StringP("profile", "p", "", "Profile file (default is the built-in profile)")
	cmd.Flags().Int("width", 500, "Image width in pixels")
	cmd.Flags().Int("height", 500, "Image height in pixels")
	cmd.Flags().StringP("output", "o", "plane.png", "Output file, or - for stdout")
	cmd.Flags().String("format", "", "Image format: png or tiff (default from the output extension)")

	return cmd
}

type options struct {
	profile       string
	width, height int
	output        string
	format        string
}

func runRender(stdout io.Writer, opts options) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	format := strings.ToLower(opts.format)
	switch format {
	case "":
		format = gfx.FormatFromPath(opts.output)
	case "tif":
		format = gfx.FormatTIFF
	}
	if format != gfx.FormatPNG && format != gfx.FormatTIFF {
		return fmt.Errorf("unsupported image format %q", format)
	}

	p, err := cliutil.LoadProfile(opts.profile)
	if err != nil {
		log.Error("Failed to load profile", "path", opts.profile, "error", err)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	r := gfx.NewRaster(opts.width, opts.height)
	plane.Render(r, p.Config(), opts.width, opts.height)

	if opts.output == "-" {
		return gfx.Encode(stdout, r.Image(), format)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		log.Error("Failed to create output", "path", opts.output, "error", err)
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := gfx.Encode(f, r.Image(), format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("Rendered plane", "profile", p.Name, "output", opts.output, "width", opts.width, "height", opts.height)
	return nil
}
