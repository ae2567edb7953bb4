package views

import (
	"strings"
	"unicode/utf8"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/widgets"
)

// MenuItem is a tile that opens a page in a new tab.
type MenuItem struct {
	Path  string
	Label string // catalog key
}

// MenuSection is a titled group of tiles.
type MenuSection struct {
	Title string // catalog key
	Items []MenuItem
}

// MainMenuViewParams holds configuration for creating a MainMenuView.
type MainMenuViewParams struct {
	Sections []MenuSection
	// Open is called with the selected tile when Enter is pressed.
	Open func(MenuItem)
	Env  Env
}

// MainMenuView is the home page: tiles grouped into sections.
type MainMenuView struct {
	staticPage
	p      MainMenuViewParams
	items  []MenuItem
	cursor int
}

// NewMainMenuView creates a MainMenuView backed by the given params.
func NewMainMenuView(p MainMenuViewParams) *MainMenuView {
	mv := &MainMenuView{p: p}
	for _, s := range p.Sections {
		mv.items = append(mv.items, s.Items...)
	}
	return mv
}

// Selected returns the tile under the cursor.
func (mv *MainMenuView) Selected() (MenuItem, bool) {
	if len(mv.items) == 0 {
		return MenuItem{}, false
	}
	return mv.items[mv.cursor], true
}

const (
	tileWidth = 26
	tileGap   = 2
)

// Draw renders each section title followed by its tiles, wrapping tiles onto
// as many rows as the width requires.
func (mv *MainMenuView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := mv.p.Env.format()
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, mv)
	line := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	title, err := drawLine(line, vaxis.Segment{Text: f.t("main_menu"), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, title)

	perRow := max(1, (int(ctx.Max.Width)+tileGap)/(tileWidth+tileGap))
	row := 2
	index := 0
	for _, sec := range mv.p.Sections {
		if row >= int(ctx.Max.Height) {
			break
		}
		widgets.WriteText(&s, 0, uint16(row), int(ctx.Max.Width), f.t(sec.Title), vaxis.Style{Attribute: vaxis.AttrBold}, false)
		row++

		for i, item := range sec.Items {
			if i > 0 && i%perRow == 0 {
				row++
			}
			if row >= int(ctx.Max.Height) {
				break
			}
			style := vaxis.Style{Foreground: f.palette.Accent}
			if index == mv.cursor {
				style = vaxis.Style{Foreground: f.palette.Accent, Attribute: vaxis.AttrReverse | vaxis.AttrBold}
			}
			col := (i % perRow) * (tileWidth + tileGap)
			w := min(tileWidth, int(ctx.Max.Width)-col)
			label := f.t(item.Label)
			if pad := tileWidth - 2 - utf8.RuneCountInString(label); pad > 0 {
				label += strings.Repeat(" ", pad)
			}
			widgets.WriteText(&s, uint16(col), uint16(row), w, "▌ "+label, style, false)
			index++
		}
		row += 2
	}
	return s, nil
}

// HandleEvent moves the cursor across tiles and opens the selected one.
func (mv *MainMenuView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok || len(mv.items) == 0 {
		return nil, nil
	}
	switch {
	case key.Matches('j'), key.Matches(vaxis.KeyDown), key.Matches('l'), key.Matches(vaxis.KeyRight):
		mv.cursor = (mv.cursor + 1) % len(mv.items)
	case key.Matches('k'), key.Matches(vaxis.KeyUp), key.Matches(vaxis.KeyLeft):
		mv.cursor = (mv.cursor - 1 + len(mv.items)) % len(mv.items)
	case key.Matches(vaxis.KeyEnter):
		if mv.p.Open != nil {
			mv.p.Open(mv.items[mv.cursor])
		}
	default:
		return nil, nil
	}
	return vxfw.ConsumeAndRedraw(), nil
}
