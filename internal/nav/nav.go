// Package nav holds the navigation bar's state rules: which section is
// highlighted for a scroll position, when the bar counts as scrolled, and
// the light/dark theme switch.
package nav

import "strings"

const (
	// DefaultThreshold is the distance from the viewport top, in pixels, at
	// which a section becomes the highlighted one.
	DefaultThreshold = 100
	// ScrolledOffset is the scrollY past which the bar gets its solid backdrop.
	ScrolledOffset = 40
	// Home is highlighted when no section qualifies.
	Home = "home"
)

// Highlighter picks the current section from element offsets.
type Highlighter struct {
	Sections  []string
	Threshold float64
}

// NewHighlighter returns a Highlighter over sections in document order.
func NewHighlighter(sections []string) Highlighter {
	return Highlighter{Sections: sections, Threshold: DefaultThreshold}
}

// Active returns the bottom-most section whose top is at or above the
// threshold. tops maps section id to its element's top relative to the
// viewport; ids missing from tops are skipped.
func (h Highlighter) Active(tops map[string]float64) string {
	for i := len(h.Sections) - 1; i >= 0; i-- {
		id := h.Sections[i]
		top, ok := tops[id]
		if ok && top <= h.Threshold {
			return id
		}
	}
	return Home
}

// Attr renders the section list for the client script's data attribute.
func (h Highlighter) Attr() string {
	return strings.Join(h.Sections, ",")
}

// Scrolled reports whether the page is scrolled past the bar's offset.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrolledOffset
}
