package views

import (
	"context"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/list"
	"github.com/deevus/erp-tui/sortfilter"
	"github.com/deevus/erp-tui/widgets"
)

// column describes one table column of a listPage.
type column[T any, K comparable] struct {
	title  string // catalog key
	width  int
	flex   bool
	right  bool
	hotkey rune // sorts by sortKey when pressed; 0 for unsortable columns
	key    K
	text   func(row T, f format) string
	style  func(row T, f format) vaxis.Style
}

// listParams configures a listPage.
type listParams[T any, K comparable] struct {
	env         Env
	title       string // catalog key
	placeholder string // catalog key for the empty search box
	columns     []column[T, K]
	fields      []func(T) string
	keys        map[K]sortfilter.Compare[T]
	fetch       func(ctx context.Context) ([]T, error)

	// summary, when set, is appended to the record count in the footer.
	summary func(rows []T, f format) string
	// detail, when set, renders the row under the cursor below the list.
	detail       func(row T, f format) vxfw.Widget
	detailHeight int
}

// listPage is a searchable, sortable table over a fetched collection.
type listPage[T any, K comparable] struct {
	loadState
	p    listParams[T, K]
	view *sortfilter.View[T, K]
	list list.Dynamic

	// UI goroutine only.
	rows      []T
	searching bool
	f         format
}

const (
	listGap      = 2
	cursorIndent = 2
)

func newListPage[T any, K comparable](p listParams[T, K]) *listPage[T, K] {
	lp := &listPage[T, K]{
		p: p,
		view: sortfilter.New(sortfilter.Params[T, K]{
			Fields: p.fields,
			Keys:   p.keys,
		}),
	}
	lp.staleTTL = p.env.StaleTTL
	lp.list.DrawCursor = true
	lp.list.Builder = lp.buildItem
	return lp
}

// Load fetches the collection from the data source.
func (lp *listPage[T, K]) Load(ctx context.Context) error {
	items, err := lp.p.fetch(ctx)

	lp.mu.Lock()
	defer lp.mu.Unlock()
	if err == nil {
		lp.view.SetItems(items)
	}
	lp.finish(err)
	return err
}

// View exposes the underlying projection.
func (lp *listPage[T, K]) View() *sortfilter.View[T, K] {
	return lp.view
}

// Rows returns the filtered and sorted rows.
func (lp *listPage[T, K]) Rows() []T {
	return lp.view.Rows()
}

// ItemCount returns the number of rows after filtering.
func (lp *listPage[T, K]) ItemCount() int {
	return lp.view.Len()
}

// Editing reports whether the search box has focus.
func (lp *listPage[T, K]) Editing() bool {
	return lp.searching
}

func (lp *listPage[T, K]) tableColumns() []widgets.TableColumn {
	cols := make([]widgets.TableColumn, len(lp.p.columns))
	for i, c := range lp.p.columns {
		cols[i] = widgets.TableColumn{Width: c.width, Flex: c.flex, AlignRight: c.right}
	}
	return cols
}

func (lp *listPage[T, K]) buildItem(i uint, cursor uint) vxfw.Widget {
	if int(i) >= len(lp.rows) {
		return nil
	}
	row := lp.rows[i]
	cells := make([]string, len(lp.p.columns))
	styles := make([]vaxis.Style, len(lp.p.columns))
	for j, c := range lp.p.columns {
		cells[j] = c.text(row, lp.f)
		if c.style != nil {
			styles[j] = c.style(row, lp.f)
		}
	}
	return &widgets.Row{
		Columns: lp.tableColumns(),
		Cells:   cells,
		Styles:  styles,
		Gap:     listGap,
	}
}

func (lp *listPage[T, K]) headerCells(f format) []string {
	cfg, sorted := lp.view.SortConfig()
	cells := make([]string, len(lp.p.columns))
	for i, c := range lp.p.columns {
		text := f.t(c.title)
		if c.hotkey != 0 {
			text += " [" + string(c.hotkey) + "]"
			if sorted && cfg.Key == c.key {
				if cfg.Direction == sortfilter.Descending {
					text += " ▼"
				} else {
					text += " ▲"
				}
			}
		}
		cells[i] = text
	}
	return cells
}

func (lp *listPage[T, K]) searchLine(f format) []vaxis.Segment {
	term := lp.view.SearchTerm()
	switch {
	case lp.searching:
		return []vaxis.Segment{
			{Text: "/ ", Style: f.palette.Title()},
			{Text: term},
			{Text: " ", Style: vaxis.Style{Attribute: vaxis.AttrReverse}},
		}
	case term != "":
		return []vaxis.Segment{
			{Text: f.t("search") + ": ", Style: f.palette.Dim()},
			{Text: term, Style: vaxis.Style{Attribute: vaxis.AttrBold}},
			{Text: "  (esc)", Style: f.palette.Dim()},
		}
	default:
		return []vaxis.Segment{{Text: "/ " + f.t(lp.p.placeholder), Style: f.palette.Dim()}}
	}
}

// Draw renders title, search box, header, rows, detail and footer, or a
// loading or error state.
func (lp *listPage[T, K]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := lp.p.env.format()
	lp.f = f

	lp.mu.Lock()
	loaded, loadErr := lp.loaded, lp.err
	lp.mu.Unlock()

	if loadErr != nil {
		return drawErrorState(ctx, lp, f, loadErr)
	}
	if !loaded {
		return drawLoadingState(ctx, lp, f)
	}

	lp.rows = lp.view.Rows()

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, lp)
	line := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})
	row := 0

	title, err := drawLine(line, vaxis.Segment{Text: f.t(lp.p.title), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, title)
	row++

	search, err := drawLine(line, lp.searchLine(f)...)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, search)
	row++

	headerStyles := make([]vaxis.Style, len(lp.p.columns))
	for i := range headerStyles {
		headerStyles[i] = vaxis.Style{Foreground: f.palette.Accent, Attribute: vaxis.AttrBold}
	}
	header := &widgets.Row{
		Columns: lp.tableColumns(),
		Cells:   lp.headerCells(f),
		Styles:  headerStyles,
		Gap:     listGap,
	}
	// Rows are indented past the list cursor column.
	headerSurf, err := header.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width - min(ctx.Max.Width, cursorIndent), Height: 1}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(cursorIndent, row, headerSurf)
	row++

	footerRows := 1
	detailRows := 0
	if lp.p.detail != nil && len(lp.rows) > 0 {
		detailRows = lp.p.detailHeight + 1
	}
	listHeight := int(ctx.Max.Height) - row - footerRows - detailRows
	if listHeight < 1 {
		listHeight = 1
		detailRows = 0
	}

	if len(lp.rows) == 0 {
		empty, err := drawLine(line, vaxis.Segment{Text: f.t("no_results"), Style: f.palette.Dim()})
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, empty)
	} else {
		listSurf, err := lp.list.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: uint16(listHeight)}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, listSurf)
	}
	row += listHeight

	if detailRows > 0 {
		cur := int(lp.list.Cursor())
		if cur >= len(lp.rows) {
			cur = len(lp.rows) - 1
		}
		detailSurf, err := lp.p.detail(lp.rows[cur], f).Draw(ctx.WithMax(vxfw.Size{
			Width:  ctx.Max.Width,
			Height: uint16(lp.p.detailHeight),
		}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row+1, detailSurf)
	}

	footer := f.locale.Tf("records", len(lp.rows))
	if lp.p.summary != nil {
		footer += "  ·  " + lp.p.summary(lp.rows, f)
	}
	footerSurf, err := drawLine(line, vaxis.Segment{Text: footer, Style: f.palette.Dim()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, int(ctx.Max.Height)-1, footerSurf)

	return s, nil
}

// HandleEvent drives the search box and sort hotkeys, and otherwise delegates
// to the list for cursor movement.
func (lp *listPage[T, K]) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return lp.list.HandleEvent(ev, phase)
	}

	if lp.searching {
		term := lp.view.SearchTerm()
		switch {
		case key.Matches(vaxis.KeyEsc):
			lp.searching = false
			lp.view.SetSearchTerm("")
		case key.Matches(vaxis.KeyEnter):
			lp.searching = false
		case key.Matches(vaxis.KeyBackspace):
			if r := []rune(term); len(r) > 0 {
				lp.view.SetSearchTerm(string(r[:len(r)-1]))
			}
		case key.Text != "" && key.Modifiers&^vaxis.ModShift == 0:
			lp.view.SetSearchTerm(term + key.Text)
		default:
			return nil, nil
		}
		return vxfw.ConsumeAndRedraw(), nil
	}

	switch {
	case key.Matches('/'):
		lp.searching = true
		return vxfw.ConsumeAndRedraw(), nil
	case key.Matches(vaxis.KeyEsc):
		if lp.view.SearchTerm() == "" {
			return nil, nil
		}
		lp.view.SetSearchTerm("")
		return vxfw.ConsumeAndRedraw(), nil
	}
	for _, c := range lp.p.columns {
		if c.hotkey != 0 && key.Matches(c.hotkey) {
			lp.view.RequestSort(c.key)
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return lp.list.HandleEvent(ev, phase)
}

// SortKey names a sortable column.
type SortKey string

const (
	KeyName       SortKey = "name"
	KeySKU        SortKey = "sku"
	KeyCategory   SortKey = "category"
	KeyTotalStock SortKey = "totalStock"
	KeyPrice      SortKey = "price"
	KeyCustomer   SortKey = "customer"
	KeyDate       SortKey = "date"
	KeyTotal      SortKey = "total"
	KeyQuantity   SortKey = "quantity"
	KeyBranch     SortKey = "branch"
)
