package nav

import "testing"

var sections = []string{"home", "about", "experience", "skills", "projects", "education", "contact"}

func TestActive(t *testing.T) {
	h := NewHighlighter(sections)

	tests := []struct {
		name string
		tops map[string]float64
		want string
	}{
		{
			name: "top of page",
			tops: map[string]float64{"home": 0, "about": 900, "experience": 1800, "skills": 2700, "projects": 3600, "education": 4500, "contact": 5400},
			want: "home",
		},
		{
			name: "exactly at threshold",
			tops: map[string]float64{"home": -900, "about": 100, "experience": 1000},
			want: "about",
		},
		{
			name: "just below threshold",
			tops: map[string]float64{"home": -900, "about": 100.5, "experience": 1000},
			want: "home",
		},
		{
			name: "bottom-most qualifying wins",
			tops: map[string]float64{"home": -4000, "about": -3000, "experience": -2000, "skills": -1000, "projects": 50, "education": 800, "contact": 1600},
			want: "projects",
		},
		{
			name: "scrolled to the end",
			tops: map[string]float64{"home": -6000, "about": -5000, "experience": -4000, "skills": -3000, "projects": -2000, "education": -1000, "contact": 20},
			want: "contact",
		},
		{
			name: "none qualify",
			tops: map[string]float64{"about": 400, "contact": 2000},
			want: "home",
		},
		{
			name: "no elements",
			tops: nil,
			want: "home",
		},
		{
			name: "missing sections skipped",
			tops: map[string]float64{"skills": -10},
			want: "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Active(tt.tops); got != tt.want {
				t.Errorf("Active() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttr(t *testing.T) {
	h := NewHighlighter([]string{"home", "about"})
	if got := h.Attr(); got != "home,about" {
		t.Errorf("Attr() = %q", got)
	}
}

func TestScrolled(t *testing.T) {
	if Scrolled(40) {
		t.Error("40 should not count as scrolled")
	}
	if !Scrolled(41) {
		t.Error("41 should count as scrolled")
	}
}

func TestThemeToggle(t *testing.T) {
	for _, start := range []bool{false, true} {
		th := Theme{Dark: start}
		if got := th.Toggle(); got.Dark == start {
			t.Errorf("first toggle from %v did not flip", start)
		}
		th.Toggle()
		if th.Dark != start {
			t.Errorf("two toggles from %v ended at %v", start, th.Dark)
		}
	}
}

func TestThemeFromHint(t *testing.T) {
	tests := []struct {
		hint string
		dark bool
	}{
		{"dark", true},
		{`"dark"`, true},
		{" Dark ", true},
		{"light", false},
		{`"light"`, false},
		{"", false},
	}
	for _, tt := range tests {
		th := ThemeFromHint(tt.hint)
		if th.Dark != tt.dark {
			t.Errorf("ThemeFromHint(%q).Dark = %v, want %v", tt.hint, th.Dark, tt.dark)
		}
		if tt.dark && th.Class() != "dark" {
			t.Errorf("expected dark class for %q", tt.hint)
		}
		if !tt.dark && th.Class() != "" {
			t.Errorf("expected no class for %q", tt.hint)
		}
	}
}
