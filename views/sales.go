package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
)

// SalesViewParams holds configuration for creating a SalesView.
type SalesViewParams struct {
	Service erp.SalesServiceAPI
	Env     Env
}

// SalesView lists invoices, searchable by customer or invoice ID and
// sortable by customer, date and total.
type SalesView struct {
	*listPage[erp.Sale, SortKey]
}

// NewSalesView creates a SalesView backed by the given params.
func NewSalesView(p SalesViewParams) *SalesView {
	return &SalesView{newListPage(listParams[erp.Sale, SortKey]{
		env:         p.Env,
		title:       "invoices",
		placeholder: "search_invoices",
		fields: []func(erp.Sale) string{
			func(s erp.Sale) string { return s.Customer },
			func(s erp.Sale) string { return s.ID },
		},
		keys: map[SortKey]sortfilter.Compare[erp.Sale]{
			KeyCustomer: sortfilter.By(func(s erp.Sale) string { return s.Customer }),
			KeyDate:     sortfilter.By(func(s erp.Sale) string { return s.Date }),
			KeyTotal:    sortfilter.By(func(s erp.Sale) float64 { return s.Total }),
		},
		columns: []column[erp.Sale, SortKey]{
			{title: "id", width: 8,
				text: func(s erp.Sale, _ format) string { return s.ID }},
			{title: "customer", width: 20, flex: true, hotkey: 'c', key: KeyCustomer,
				text: func(s erp.Sale, _ format) string { return s.Customer }},
			{title: "date", width: 14, hotkey: 'd', key: KeyDate,
				text: func(s erp.Sale, _ format) string { return s.Date }},
			{title: "total_amount", width: 22, right: true, hotkey: 'a', key: KeyTotal,
				text: func(s erp.Sale, f format) string { return f.money(s.Total) }},
			{title: "status", width: 10,
				text:  func(s erp.Sale, _ format) string { return string(s.Status) },
				style: func(s erp.Sale, f format) vaxis.Style { return vaxis.Style{Foreground: f.palette.StatusColor(string(s.Status))} }},
		},
		fetch: func(ctx context.Context) ([]erp.Sale, error) {
			list, err := p.Service.ListSales(ctx)
			if err != nil {
				return nil, fmt.Errorf("sales.invoices: %w", err)
			}
			return list, nil
		},
		summary: func(rows []erp.Sale, f format) string {
			var total float64
			for _, s := range rows {
				total += s.Total
			}
			return f.t("total_amount") + " " + f.money(total)
		},
	})}
}
