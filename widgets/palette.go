package widgets

import (
	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/settings"
)

// Palette is the set of colours a theme draws with.
type Palette struct {
	Accent vaxis.Color
	Muted  vaxis.Color
	Good   vaxis.Color
	Warn   vaxis.Color
	Bad    vaxis.Color
	Chart  vaxis.Color
}

var palettes = map[settings.Theme]Palette{
	settings.Modern: {
		Accent: vaxis.IndexColor(6), // cyan
		Muted:  vaxis.IndexColor(8),
		Good:   vaxis.IndexColor(2),
		Warn:   vaxis.IndexColor(3),
		Bad:    vaxis.IndexColor(1),
		Chart:  vaxis.IndexColor(6),
	},
	settings.Fluent: {
		Accent: vaxis.IndexColor(4), // blue
		Muted:  vaxis.IndexColor(8),
		Good:   vaxis.IndexColor(2),
		Warn:   vaxis.IndexColor(11),
		Bad:    vaxis.IndexColor(9),
		Chart:  vaxis.IndexColor(12),
	},
	settings.GlassyDark: {
		Accent: vaxis.IndexColor(13), // bright magenta
		Muted:  vaxis.IndexColor(240),
		Good:   vaxis.IndexColor(10),
		Warn:   vaxis.IndexColor(11),
		Bad:    vaxis.IndexColor(9),
		Chart:  vaxis.IndexColor(14),
	},
	settings.NordicLight: {
		Accent: vaxis.IndexColor(24), // steel blue
		Muted:  vaxis.IndexColor(245),
		Good:   vaxis.IndexColor(65),
		Warn:   vaxis.IndexColor(137),
		Bad:    vaxis.IndexColor(131),
		Chart:  vaxis.IndexColor(67),
	},
}

// PaletteFor returns the palette of t, falling back to the default theme.
func PaletteFor(t settings.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[settings.DefaultTheme]
}

// Title is the style of page and section titles.
func (p Palette) Title() vaxis.Style {
	return vaxis.Style{Foreground: p.Accent, Attribute: vaxis.AttrBold}
}

// Dim is the style of secondary text.
func (p Palette) Dim() vaxis.Style {
	return vaxis.Style{Foreground: p.Muted}
}

// StatusColor maps a record status to a traffic-light colour.
func (p Palette) StatusColor(status string) vaxis.Color {
	switch status {
	case "Paid", "Completed", "Received", "In Stock":
		return p.Good
	case "Overdue", "Cancelled", "Out of Stock":
		return p.Bad
	case "":
		return p.Muted
	default:
		return p.Warn
	}
}
