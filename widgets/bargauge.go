package widgets

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// BarGauge is a horizontal bar gauge widget.
//
//	AC Unit 1.5 Ton  [████████████████████] 100.0%  450 units
type BarGauge struct {
	Label       string      // left column, padded to LabelWidth
	LabelWidth  int         // defaults to 4
	Value       float64     // 0.0–100.0
	Suffix      string      // text after %, e.g. "450 units"
	BarWidth    int         // character width of the [████░░░░] portion (excluding brackets)
	Color       vaxis.Color // fill colour; zero picks one from Value
	HidePercent bool
}

const (
	barFilled = '█' // U+2588
	barEmpty  = '░' // U+2591
)

// barColor returns the appropriate color for the given percentage.
func barColor(pct float64) vaxis.Color {
	switch {
	case pct >= 85:
		return vaxis.IndexColor(1) // red
	case pct >= 60:
		return vaxis.IndexColor(3) // yellow
	default:
		return vaxis.IndexColor(2) // green
	}
}

// Draw renders the bar gauge as a single row.
func (bg *BarGauge) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, bg)

	col := uint16(0)

	lw := bg.LabelWidth
	if lw == 0 {
		lw = 4
	}
	label := fmt.Sprintf("%-*s ", lw, truncate(bg.Label, lw))
	for _, ch := range ctx.Characters(label) {
		s.WriteCell(col, 0, vaxis.Cell{
			Character: ch,
			Style:     vaxis.Style{Attribute: vaxis.AttrBold},
		})
		col += uint16(ch.Width)
	}

	// Opening bracket
	for _, ch := range ctx.Characters("[") {
		s.WriteCell(col, 0, vaxis.Cell{Character: ch})
		col += uint16(ch.Width)
	}

	// Bar fill
	v := bg.Value
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	filled := int(v / 100 * float64(bg.BarWidth))
	color := bg.Color
	if color == 0 {
		color = barColor(v)
	}

	for i := 0; i < bg.BarWidth; i++ {
		ch := barEmpty
		style := vaxis.Style{Foreground: vaxis.IndexColor(8)} // dim for empty
		if i < filled {
			ch = barFilled
			style = vaxis.Style{Foreground: color}
		}
		for _, c := range ctx.Characters(string(ch)) {
			s.WriteCell(col, 0, vaxis.Cell{Character: c, Style: style})
			col += uint16(c.Width)
		}
	}

	pctStr := "]"
	if !bg.HidePercent {
		pctStr = fmt.Sprintf("] %5.1f%%", v)
	}
	for _, ch := range ctx.Characters(pctStr) {
		s.WriteCell(col, 0, vaxis.Cell{Character: ch})
		col += uint16(ch.Width)
	}

	// Suffix
	if bg.Suffix != "" {
		suffix := "  " + bg.Suffix
		dimStyle := vaxis.Style{Attribute: vaxis.AttrDim}
		for _, ch := range ctx.Characters(suffix) {
			s.WriteCell(col, 0, vaxis.Cell{Character: ch, Style: dimStyle})
			col += uint16(ch.Width)
		}
	}

	return s, nil
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
