package nav

import "strings"

// PrefersColorSchemeHeader is the client hint carrying the OS color preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// Theme is the page's light/dark mode. It lives for the page lifetime only.
type Theme struct {
	Dark bool
}

// ThemeFromHint derives the initial theme from the client hint value.
// Anything other than "dark" yields light mode.
func ThemeFromHint(hint string) Theme {
	v := strings.Trim(strings.TrimSpace(hint), `"`)
	return Theme{Dark: strings.EqualFold(v, "dark")}
}

// Toggle flips the mode and returns the new theme.
func (t *Theme) Toggle() Theme {
	t.Dark = !t.Dark
	return *t
}

// Class is the class applied to the root element.
func (t Theme) Class() string {
	if t.Dark {
		return "dark"
	}
	return ""
}
