package views

import (
	"context"
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
)

// InventoryViewParams holds configuration for creating an InventoryView.
type InventoryViewParams struct {
	Service erp.InventoryServiceAPI
	Env     Env
}

// InventoryView lists products with their total stock, searchable by name or
// SKU and sortable by name, SKU, category, total stock and price.
type InventoryView struct {
	*listPage[StockRow, SortKey]
}

// NewInventoryView creates an InventoryView backed by the given params.
func NewInventoryView(p InventoryViewParams) *InventoryView {
	return &InventoryView{newListPage(listParams[StockRow, SortKey]{
		env:         p.Env,
		title:       "products",
		placeholder: "search_products",
		fields: []func(StockRow) string{
			func(r StockRow) string { return r.Name },
			func(r StockRow) string { return r.SKU },
		},
		keys: map[SortKey]sortfilter.Compare[StockRow]{
			KeyName:       sortfilter.By(func(r StockRow) string { return r.Name }),
			KeySKU:        sortfilter.By(func(r StockRow) string { return r.SKU }),
			KeyCategory:   sortfilter.By(func(r StockRow) string { return r.Category }),
			KeyTotalStock: sortfilter.By(func(r StockRow) int { return erp.TotalStock(r.Product) }),
			KeyPrice:      sortfilter.By(func(r StockRow) float64 { return r.Price }),
		},
		columns: []column[StockRow, SortKey]{
			{title: "product_name", width: 20, flex: true, hotkey: 'n', key: KeyName,
				text: func(r StockRow, _ format) string { return r.Name }},
			{title: "sku", width: 14, hotkey: 's', key: KeySKU,
				text: func(r StockRow, _ format) string { return r.SKU }},
			{title: "category", width: 22, hotkey: 'c', key: KeyCategory,
				text: func(r StockRow, _ format) string { return r.Category }},
			{title: "stock", width: 12, right: true, hotkey: 't', key: KeyTotalStock,
				text: func(r StockRow, f format) string { return f.number(r.Total) }},
			{title: "price", width: 18, right: true, hotkey: 'p', key: KeyPrice,
				text: func(r StockRow, f format) string { return f.money(r.Price) }},
			{title: "status", width: 12,
				text:  func(r StockRow, _ format) string { return string(r.Status) },
				style: func(r StockRow, f format) vaxis.Style { return vaxis.Style{Foreground: f.palette.StatusColor(string(r.Status))} }},
		},
		fetch: func(ctx context.Context) ([]StockRow, error) {
			return loadStock(ctx, p.Service)
		},
		summary: func(rows []StockRow, f format) string {
			low := 0
			for _, r := range rows {
				if r.Status != erp.InStock {
					low++
				}
			}
			return strings.Join([]string{
				f.t("inventory_value") + " " + f.money(inventoryValue(rows)),
				f.t("low_stock") + " " + f.number(low),
			}, "  ·  ")
		},
		detail:       stockDetail,
		detailHeight: 4,
	})}
}

func inventoryValue(rows []StockRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.Price * float64(r.Total)
	}
	return total
}
