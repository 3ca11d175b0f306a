package apptheme

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestThemeIgnoresVariant(t *testing.T) {
	appTheme := New()

	names := []fyne.ThemeColorName{theme.ColorNameForeground, theme.ColorNameButton, theme.ColorNameInputBackground}
	for _, name := range names {
		dark := appTheme.Color(name, theme.VariantDark)
		light := appTheme.Color(name, theme.VariantLight)
		assert.Equal(t, dark, light, string(name))
		assert.Equal(t, theme.DefaultTheme().Color(name, theme.VariantDark), dark, string(name))
	}
}

func TestThemePalette(t *testing.T) {
	appTheme := New()

	assert.Equal(t, background, appTheme.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, primary, appTheme.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.Equal(t, border, BorderColor())
}
