package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlaneTheme is the previewer theme: the default theme with the margin
// teal as primary color.
type PlaneTheme struct{}

var _ fyne.Theme = (*PlaneTheme)(nil)

func (t *PlaneTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x00, G: 0x80, B: 0x80, A: 0x40}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *PlaneTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PlaneTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PlaneTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
