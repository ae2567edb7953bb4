package widgets

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/tabs"
)

// TabBar is a horizontal strip of open tabs. The active tab is the one whose
// path matches Active and may be absent from the strip.
type TabBar struct {
	tabs   []tabs.Tab
	active string

	Accent vaxis.Color
	RTL    bool // lay tabs out from the right edge
}

// NewTabBar creates an empty TabBar.
func NewTabBar() *TabBar {
	return &TabBar{}
}

// SetTabs replaces the tabs shown and the active path.
func (tb *TabBar) SetTabs(t []tabs.Tab, active string) {
	tb.tabs = t
	tb.active = active
}

// Len returns the number of tabs shown.
func (tb *TabBar) Len() int {
	return len(tb.tabs)
}

// ActiveIndex returns the position of the active tab, or -1.
func (tb *TabBar) ActiveIndex() int {
	for i, t := range tb.tabs {
		if t.Path == tb.active {
			return i
		}
	}
	return -1
}

// Next returns the path after the active tab, wrapping around. When the
// active path has no tab the first tab is returned.
func (tb *TabBar) Next() (string, bool) {
	if len(tb.tabs) == 0 {
		return "", false
	}
	i := tb.ActiveIndex()
	return tb.tabs[(i+1)%len(tb.tabs)].Path, true
}

// Prev returns the path before the active tab, wrapping around. When the
// active path has no tab the last tab is returned.
func (tb *TabBar) Prev() (string, bool) {
	if len(tb.tabs) == 0 {
		return "", false
	}
	i := tb.ActiveIndex()
	if i < 0 {
		i = 0
	}
	return tb.tabs[(i-1+len(tb.tabs))%len(tb.tabs)].Path, true
}

// At returns the path of the i-th tab (0-based).
func (tb *TabBar) At(i int) (string, bool) {
	if i < 0 || i >= len(tb.tabs) {
		return "", false
	}
	return tb.tabs[i].Path, true
}

const tabSep = "│"

// Draw renders the tab bar as a single row: " 1 Sales ×│ 2 Inventory × "
// Tabs before the active one are dropped when the row is too narrow.
func (tb *TabBar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, tb)
	if len(tb.tabs) == 0 {
		return s, nil
	}

	type chunk struct {
		chars []vaxis.Character
		style vaxis.Style
		width int
	}
	measure := func(text string, style vaxis.Style) chunk {
		c := chunk{chars: ctx.Characters(text), style: style}
		for _, ch := range c.chars {
			c.width += ch.Width
		}
		return c
	}

	active := tb.ActiveIndex()
	chunks := make([]chunk, 0, len(tb.tabs))
	for i, t := range tb.tabs {
		style := vaxis.Style{Attribute: vaxis.AttrDim}
		if i == active {
			style = vaxis.Style{Foreground: tb.Accent, Attribute: vaxis.AttrReverse | vaxis.AttrBold}
		}
		label := " " + t.Label + " ×"
		if i < 9 {
			label = " " + string(rune('1'+i)) + " " + t.Label + " ×"
		}
		chunks = append(chunks, measure(label+" ", style))
	}
	sep := measure(tabSep, vaxis.Style{Attribute: vaxis.AttrDim})

	total := func(from int) int {
		w := 0
		for i := from; i < len(chunks); i++ {
			if i > from {
				w += sep.width
			}
			w += chunks[i].width
		}
		return w
	}
	start := 0
	for start < active && total(start) > int(ctx.Max.Width) {
		start++
	}

	col := 0
	if tb.RTL {
		if w := total(start); w < int(ctx.Max.Width) {
			col = int(ctx.Max.Width) - w
		}
	}
	write := func(c chunk) {
		for _, ch := range c.chars {
			if col+ch.Width > int(ctx.Max.Width) {
				return
			}
			s.WriteCell(uint16(col), 0, vaxis.Cell{Character: ch, Style: c.style})
			col += ch.Width
		}
	}
	for i := start; i < len(chunks); i++ {
		if i > start {
			write(sep)
		}
		write(chunks[i])
	}

	return s, nil
}
