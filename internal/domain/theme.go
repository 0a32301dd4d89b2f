package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle bascule entre clair et sombre.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme retombe sur le thème clair pour toute valeur inconnue.
func ParseTheme(s string) Theme {
	t := Theme(s)
	if !t.Valid() {
		return ThemeLight
	}
	return t
}
