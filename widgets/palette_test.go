package widgets_test

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/settings"
	"github.com/deevus/erp-tui/widgets"
)

func TestPaletteFor(t *testing.T) {
	seen := map[vaxis.Color]bool{}
	for _, th := range settings.Themes {
		p := widgets.PaletteFor(th)
		if p.Accent == 0 {
			t.Errorf("%s: expected an accent colour", th)
		}
		seen[p.Accent] = true
	}
	if len(seen) != len(settings.Themes) {
		t.Errorf("expected a distinct accent per theme, got %d", len(seen))
	}

	if widgets.PaletteFor("unknown") != widgets.PaletteFor(settings.DefaultTheme) {
		t.Error("expected unknown themes to use the default palette")
	}
}

func TestPalette_StatusColor(t *testing.T) {
	p := widgets.PaletteFor(settings.Modern)
	tests := map[string]vaxis.Color{
		"Paid":         p.Good,
		"Received":     p.Good,
		"Pending":      p.Warn,
		"In Transit":   p.Warn,
		"Overdue":      p.Bad,
		"Out of Stock": p.Bad,
		"":             p.Muted,
	}
	for status, want := range tests {
		if got := p.StatusColor(status); got != want {
			t.Errorf("%q: expected %v, got %v", status, want, got)
		}
	}
}
