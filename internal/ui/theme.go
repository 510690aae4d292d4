package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names accepted in model.AppConfig.Theme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ThemeNames lists the selectable themes in display order.
var ThemeNames = []string{ThemeSystem, ThemeLight, ThemeDark}

// CalculatorTheme wraps the default Fyne theme with a fixed light/dark
// variant and slightly larger text for the size fields.
type CalculatorTheme struct {
	base       fyne.Theme
	variant    fyne.ThemeVariant
	useVariant bool
}

// NewCalculatorTheme returns the theme for a config theme name. Unknown
// names follow the system setting.
func NewCalculatorTheme(name string) *CalculatorTheme {
	t := &CalculatorTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// SetName switches between "system", "light" and "dark".
func (t *CalculatorTheme) SetName(name string) {
	switch name {
	case ThemeLight:
		t.variant, t.useVariant = theme.VariantLight, true
	case ThemeDark:
		t.variant, t.useVariant = theme.VariantDark, true
	default:
		t.useVariant = false
	}
}

func (t *CalculatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.useVariant {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *CalculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *CalculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *CalculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNamePadding:
		return 4
	default:
		return t.base.Size(name)
	}
}
