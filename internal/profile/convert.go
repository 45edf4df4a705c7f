package profile

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"cartesian-plane/internal/gfx"
	"cartesian-plane/pkg/colorutil"
)

// AsInt parses a decimal integer.
func AsInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// AsFloat parses a finite decimal number.
func AsFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// AsBoolean reports whether s is "true", ignoring case. Any other text is
// false.
func AsBoolean(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// AsColor parses a color written as 0xRRGGBB, #RRGGBB or a decimal integer.
func AsColor(s string) (color.RGBA, error) {
	return colorutil.Parse(s)
}

// AsFontStyle parses PLAIN, BOLD or ITALIC, ignoring case.
func AsFontStyle(s string) (gfx.Style, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PLAIN":
		return gfx.Plain, nil
	case "BOLD":
		return gfx.Bold, nil
	case "ITALIC":
		return gfx.Italic, nil
	}
	return gfx.Plain, fmt.Errorf("invalid font style %q", s)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
