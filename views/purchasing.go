package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
	"golang.org/x/sync/errgroup"
)

// PurchaseRow is a purchase order with its supplier name resolved.
type PurchaseRow struct {
	erp.PurchaseOrder
	Supplier string
}

// PurchasingViewParams holds configuration for creating a PurchasingView.
type PurchasingViewParams struct {
	Service erp.PurchasingServiceAPI
	Env     Env
}

// PurchasingView lists purchase orders, searchable by supplier or order ID
// and sortable by date and total.
type PurchasingView struct {
	*listPage[PurchaseRow, SortKey]
}

// NewPurchasingView creates a PurchasingView backed by the given params.
func NewPurchasingView(p PurchasingViewParams) *PurchasingView {
	return &PurchasingView{newListPage(listParams[PurchaseRow, SortKey]{
		env:         p.Env,
		title:       "purchase_orders",
		placeholder: "search",
		fields: []func(PurchaseRow) string{
			func(r PurchaseRow) string { return r.Supplier },
			func(r PurchaseRow) string { return r.ID },
		},
		keys: map[SortKey]sortfilter.Compare[PurchaseRow]{
			KeyDate:  sortfilter.By(func(r PurchaseRow) string { return r.Date }),
			KeyTotal: sortfilter.By(func(r PurchaseRow) float64 { return r.Total }),
		},
		columns: []column[PurchaseRow, SortKey]{
			{title: "id", width: 8,
				text: func(r PurchaseRow, _ format) string { return r.ID }},
			{title: "supplier", width: 20, flex: true,
				text: func(r PurchaseRow, _ format) string { return r.Supplier }},
			{title: "date", width: 14, hotkey: 'd', key: KeyDate,
				text: func(r PurchaseRow, _ format) string { return r.Date }},
			{title: "total_amount", width: 22, right: true, hotkey: 'a', key: KeyTotal,
				text: func(r PurchaseRow, f format) string { return f.money(r.Total) }},
			{title: "status", width: 10,
				text:  func(r PurchaseRow, _ format) string { return string(r.Status) },
				style: func(r PurchaseRow, f format) vaxis.Style { return vaxis.Style{Foreground: f.palette.StatusColor(string(r.Status))} }},
		},
		fetch: func(ctx context.Context) ([]PurchaseRow, error) {
			return loadPurchases(ctx, p.Service)
		},
		summary: func(rows []PurchaseRow, f format) string {
			orders := make([]erp.PurchaseOrder, len(rows))
			open := 0
			for i, r := range rows {
				orders[i] = r.PurchaseOrder
				if r.Status == erp.PODraft || r.Status == erp.POSent {
					open++
				}
			}
			return fmt.Sprintf("%s %s  ·  %s %s",
				f.t("total_purchases"), f.money(erp.PurchaseTotal(orders)),
				f.t("open_orders"), f.number(open))
		},
	})}
}

func loadPurchases(ctx context.Context, svc erp.PurchasingServiceAPI) ([]PurchaseRow, error) {
	g, gctx := errgroup.WithContext(ctx)

	var orders []erp.PurchaseOrder
	var suppliers []erp.Supplier

	g.Go(func() error {
		list, err := svc.ListPurchaseOrders(gctx)
		if err != nil {
			return fmt.Errorf("purchasing.orders: %w", err)
		}
		orders = list
		return nil
	})

	g.Go(func() error {
		list, err := svc.ListSuppliers(gctx)
		if err != nil {
			return fmt.Errorf("purchasing.suppliers: %w", err)
		}
		suppliers = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := erp.SupplierNames(suppliers)
	rows := make([]PurchaseRow, len(orders))
	for i, o := range orders {
		rows[i] = PurchaseRow{PurchaseOrder: o, Supplier: names.Lookup(o.SupplierID)}
	}
	return rows, nil
}
