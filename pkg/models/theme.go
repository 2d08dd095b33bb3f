package models

// Theme is the display mode of the list.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no theme has been stored yet.
const DefaultTheme = ThemeLight

// Toggle returns the opposite theme (light<->dark). Unknown values toggle to dark,
// matching how they are read back as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Title returns the capitalized theme name for headings.
func (t Theme) Title() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

// ParseTheme converts a stored string into a Theme. ok is false for anything
// other than "light" or "dark".
func ParseTheme(s string) (theme Theme, ok bool) {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return DefaultTheme, false
	}
}
