package views

import (
	"context"

	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
)

// GoodsReceiptViewParams holds configuration for creating a GoodsReceiptView.
type GoodsReceiptViewParams struct {
	Service erp.InventoryServiceAPI
	Env     Env
}

// GoodsReceiptView lists every item with its quantity per warehouse and the
// total quantity on hand.
type GoodsReceiptView struct {
	*listPage[StockRow, SortKey]
}

// NewGoodsReceiptView creates a GoodsReceiptView backed by the given params.
func NewGoodsReceiptView(p GoodsReceiptViewParams) *GoodsReceiptView {
	return &GoodsReceiptView{newListPage(listParams[StockRow, SortKey]{
		env:         p.Env,
		title:       "goods_receipt",
		placeholder: "search_products",
		fields: []func(StockRow) string{
			func(r StockRow) string { return r.ID },
			func(r StockRow) string { return r.Name },
		},
		keys: map[SortKey]sortfilter.Compare[StockRow]{
			KeyName:       sortfilter.By(func(r StockRow) string { return r.Name }),
			KeyTotalStock: sortfilter.By(func(r StockRow) int { return r.Total }),
		},
		columns: []column[StockRow, SortKey]{
			{title: "id", width: 8,
				text: func(r StockRow, _ format) string { return r.ID }},
			{title: "product_name", width: 20, flex: true, hotkey: 'n', key: KeyName,
				text: func(r StockRow, _ format) string { return r.Name }},
			{title: "item_type", width: 14,
				text: func(r StockRow, _ format) string { return string(r.ItemType) }},
			{title: "total_quantity", width: 18, right: true, hotkey: 't', key: KeyTotalStock,
				text: func(r StockRow, f format) string { return f.number(r.Total) }},
			{title: "price", width: 18, right: true,
				text: func(r StockRow, f format) string { return f.money(r.Price) }},
		},
		fetch: func(ctx context.Context) ([]StockRow, error) {
			return loadStock(ctx, p.Service)
		},
		summary: func(rows []StockRow, f format) string {
			total := 0
			for _, r := range rows {
				total += r.Total
			}
			return f.t("total_quantity") + " " + f.number(total)
		},
		detail:       stockDetail,
		detailHeight: 4,
	})}
}
