package widgets

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// TableColumn defines a column in a Table or Row.
type TableColumn struct {
	Width      int         // fixed character width, or the minimum width when Flex
	AlignRight bool        // right-align text within the column
	Flex       bool        // absorb the width left over by fixed columns
	Style      vaxis.Style // applied to all cells in this column
}

// Layout resolves Flex columns against totalWidth. Leftover space is split
// evenly between flex columns, which never shrink below their Width.
func Layout(cols []TableColumn, totalWidth, gap int) []TableColumn {
	out := make([]TableColumn, len(cols))
	copy(out, cols)

	used := 0
	flex := 0
	for i, c := range out {
		if i > 0 {
			used += gap
		}
		if c.Flex {
			flex++
			continue
		}
		used += c.Width
	}
	if flex == 0 {
		return out
	}
	share := (totalWidth - used) / flex
	for i, c := range out {
		if c.Flex && share > c.Width {
			out[i].Width = share
		}
	}
	return out
}

// Table renders rows of text with fixed-width columns using WriteCell.
// Each row is a []string matching the Columns slice.
type Table struct {
	Columns     []TableColumn
	Rows        [][]string
	Header      []string    // optional header row
	HeaderStyle vaxis.Style // defaults to AttrDim
	Gap         int         // spaces between columns (default 1)
}

// WriteText writes s into surf at (col, row) within maxWidth. Right-aligned
// text is padded on the left. Text wider than maxWidth is clipped.
func WriteText(surf *vxfw.Surface, col, row uint16, maxWidth int, s string, style vaxis.Style, alignRight bool) {
	chars := vaxis.Characters(s)

	displayWidth := 0
	for _, ch := range chars {
		displayWidth += ch.Width
	}

	offset := 0
	if alignRight && displayWidth < maxWidth {
		offset = maxWidth - displayWidth
	}

	pos := offset
	for _, ch := range chars {
		if pos+ch.Width > maxWidth {
			break
		}
		surf.WriteCell(col+uint16(pos), row, vaxis.Cell{
			Character: ch,
			Style:     style,
		})
		pos += ch.Width
	}
}

func (t *Table) gap() int {
	if t.Gap == 0 {
		return 1
	}
	return t.Gap
}

// Draw renders the table header (if set) and all rows.
func (t *Table) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	gap := t.gap()
	cols := Layout(t.Columns, int(ctx.Max.Width), gap)

	totalRows := len(t.Rows)
	if t.Header != nil {
		totalRows++
	}

	height := uint16(totalRows)
	if height > ctx.Max.Height {
		height = ctx.Max.Height
	}

	s := vxfw.NewSurface(ctx.Max.Width, height, t)
	row := uint16(0)

	if t.Header != nil && row < height {
		style := t.HeaderStyle
		if style == (vaxis.Style{}) {
			style = vaxis.Style{Attribute: vaxis.AttrDim}
		}
		writeRow(&s, row, int(ctx.Max.Width), gap, cols, t.Header, func(int) vaxis.Style { return style })
		row++
	}

	for _, cells := range t.Rows {
		if row >= height {
			break
		}
		writeRow(&s, row, int(ctx.Max.Width), gap, cols, cells, func(i int) vaxis.Style { return cols[i].Style })
		row++
	}

	return s, nil
}

func writeRow(s *vxfw.Surface, row uint16, width, gap int, cols []TableColumn, cells []string, style func(int) vaxis.Style) {
	col := 0
	for i, c := range cols {
		if col >= width {
			break
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		w := c.Width
		if col+w > width {
			w = width - col
		}
		WriteText(s, uint16(col), row, w, text, style(i), c.AlignRight)
		col += c.Width + gap
	}
}

// Row is a single table row sized to the available width, used as a list
// item so every row shares the same column layout as its header.
type Row struct {
	Columns []TableColumn
	Cells   []string
	Styles  []vaxis.Style // per-cell overrides of the column style
	Gap     int
}

func (r *Row) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	gap := r.Gap
	if gap == 0 {
		gap = 1
	}
	s := vxfw.NewSurface(ctx.Max.Width, 1, r)
	cols := Layout(r.Columns, int(ctx.Max.Width), gap)
	writeRow(&s, 0, int(ctx.Max.Width), gap, cols, r.Cells, func(i int) vaxis.Style {
		if i < len(r.Styles) && r.Styles[i] != (vaxis.Style{}) {
			return r.Styles[i]
		}
		return cols[i].Style
	})
	return s, nil
}

func (r *Row) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}
