package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/widgets"
	"golang.org/x/sync/errgroup"
)

// ReportsViewParams holds configuration for creating a ReportsView.
type ReportsViewParams struct {
	Inventory  erp.InventoryServiceAPI
	Sales      erp.SalesServiceAPI
	Purchasing erp.PurchasingServiceAPI
	Env        Env
}

// ReportSummary holds the figures shown on the reports page.
type ReportSummary struct {
	Items          int
	FinishedGoods  int
	TotalQuantity  int
	Reserved       int
	InventoryValue float64
	LowStock       int

	Invoices    int
	Paid        float64
	Outstanding float64

	TotalSales     float64
	TotalPurchases float64
}

// NetPosition is sales less purchases.
func (r ReportSummary) NetPosition() float64 {
	return r.TotalSales - r.TotalPurchases
}

// Summarize computes the report figures from raw collections.
func Summarize(products []erp.Product, sales []erp.Sale, orders []erp.PurchaseOrder) ReportSummary {
	r := ReportSummary{
		Items:          len(products),
		FinishedGoods:  len(erp.FinishedGoods(products)),
		TotalQuantity:  erp.TotalQuantity(products),
		InventoryValue: erp.InventoryValue(products),
		Invoices:       len(sales),
		TotalPurchases: erp.PurchaseTotal(orders),
	}
	for _, p := range products {
		r.Reserved += erp.TotalReserved(p)
		if p.Status != erp.InStock {
			r.LowStock++
		}
	}
	for status, total := range erp.SalesByStatus(sales) {
		r.TotalSales += total
		if status == erp.SalePaid {
			r.Paid += total
		} else {
			r.Outstanding += total
		}
	}
	return r
}

// ReportsView groups computed summaries into inventory, sales and financial
// sections.
type ReportsView struct {
	loadState
	env  Env
	p    ReportsViewParams
	data ReportSummary // protected by mu
}

// NewReportsView creates a ReportsView backed by the given params.
func NewReportsView(p ReportsViewParams) *ReportsView {
	rv := &ReportsView{env: p.Env, p: p}
	rv.staleTTL = p.Env.StaleTTL
	return rv
}

// Load fetches products, invoices and purchase orders concurrently.
func (rv *ReportsView) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var products []erp.Product
	var sales []erp.Sale
	var orders []erp.PurchaseOrder

	g.Go(func() error {
		list, err := rv.p.Inventory.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("inventory.products: %w", err)
		}
		products = list
		return nil
	})

	g.Go(func() error {
		list, err := rv.p.Sales.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("sales.invoices: %w", err)
		}
		sales = list
		return nil
	})

	g.Go(func() error {
		list, err := rv.p.Purchasing.ListPurchaseOrders(gctx)
		if err != nil {
			return fmt.Errorf("purchasing.orders: %w", err)
		}
		orders = list
		return nil
	})

	err := g.Wait()

	rv.mu.Lock()
	defer rv.mu.Unlock()
	if err == nil {
		rv.data = Summarize(products, sales, orders)
	}
	rv.finish(err)
	return err
}

// Summary returns the last computed figures.
func (rv *ReportsView) Summary() ReportSummary {
	rv.mu.Lock()
	defer rv.mu.Unlock()
	return rv.data
}

func (rv *ReportsView) sections(f format) []*widgets.Table {
	d := rv.data
	section := func(title string, rows ...[]string) *widgets.Table {
		return &widgets.Table{
			Columns:     []widgets.TableColumn{{Width: 28}, {Width: 24, AlignRight: true}},
			Header:      []string{f.t(title)},
			HeaderStyle: f.palette.Title(),
			Rows:        rows,
			Gap:         2,
		}
	}
	return []*widgets.Table{
		section("inventory_reports",
			[]string{f.t("item_count"), f.number(d.Items)},
			[]string{f.t("finished_goods"), f.number(d.FinishedGoods)},
			[]string{f.t("total_quantity"), f.number(d.TotalQuantity)},
			[]string{f.t("reserved"), f.number(d.Reserved)},
			[]string{f.t("inventory_value"), f.money(d.InventoryValue)},
			[]string{f.t("low_stock"), f.number(d.LowStock)},
		),
		section("sales_reports",
			[]string{f.t("invoices"), f.number(d.Invoices)},
			[]string{f.t("paid_invoices"), f.money(d.Paid)},
			[]string{f.t("outstanding_invoices"), f.money(d.Outstanding)},
		),
		section("financials",
			[]string{f.t("total_sales"), f.money(d.TotalSales)},
			[]string{f.t("total_purchases"), f.money(d.TotalPurchases)},
			[]string{f.t("net_position"), f.money(d.NetPosition())},
		),
	}
}

// Draw renders one table per report category.
func (rv *ReportsView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := rv.env.format()

	rv.mu.Lock()
	defer rv.mu.Unlock()

	if rv.err != nil {
		return drawErrorState(ctx, rv, f, rv.err)
	}
	if !rv.loaded {
		return drawLoadingState(ctx, rv, f)
	}

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, rv)
	title, err := drawLine(ctx, vaxis.Segment{Text: f.t("all_reports"), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, title)

	row := 2
	for _, t := range rv.sections(f) {
		if row >= int(ctx.Max.Height) {
			break
		}
		surf, err := t.Draw(ctx.WithMax(vxfw.Size{
			Width:  ctx.Max.Width,
			Height: ctx.Max.Height - uint16(row),
		}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, surf)
		row += int(surf.Size.Height) + 1
	}
	return s, nil
}

// HandleEvent is a no-op; the reports page is read-only.
func (rv *ReportsView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}
