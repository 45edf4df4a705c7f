// Package colorutil converts between opaque RGB colors and their text forms.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// FromRGB returns the opaque color for a packed 0xRRGGBB value. Bits above
// the low 24 are ignored.
func FromRGB(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// RGB packs the color channels of c into 0xRRGGBB, dropping alpha.
func RGB(c color.Color) uint32 {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
}

// Parse reads a color written as 0xRRGGBB, #RRGGBB or a decimal integer.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	case strings.HasPrefix(s, "#"):
		digits, base = s[1:], 16
	}
	if digits == "" {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if v > 0xFFFFFF {
		return color.RGBA{}, fmt.Errorf("invalid color %q: out of range", s)
	}
	return FromRGB(uint32(v)), nil
}

// Hex formats c as 0xRRGGBB.
func Hex(c color.Color) string {
	return fmt.Sprintf("0x%06x", RGB(c))
}
