// Package apptheme holds the fixed dark theme of the application.
package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	background = color.NRGBA{R: 0x01, G: 0x16, B: 0x27, A: 0xff}
	primary    = color.NRGBA{R: 0x82, G: 0xaa, B: 0xff, A: 0xff}
	border     = color.NRGBA{R: 0x82, G: 0xaa, B: 0xff, A: 0x66}
)

// Theme forces the dark variant of the default theme whatever the OS prefers.
type Theme struct {
	fyne.Theme
}

// New creates the application theme.
func New() fyne.Theme {
	return &Theme{Theme: theme.DefaultTheme()}
}

// Color returns the dark palette colour for name.
func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return background
	case theme.ColorNamePrimary:
		return primary
	}
	return t.Theme.Color(name, theme.VariantDark)
}

// BorderColor is the weak primary colour used for the window frame.
func BorderColor() color.Color {
	return border
}
