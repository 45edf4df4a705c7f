package gfx

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatTIFF = "tiff"
)

// FormatFromPath guesses the output format from a file extension,
// defaulting to PNG.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return FormatTIFF
	}
	return FormatPNG
}

// Encode writes img in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatTIFF, "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("unsupported image format %q", format)
}
