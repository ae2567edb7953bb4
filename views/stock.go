package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/widgets"
	"golang.org/x/sync/errgroup"
)

// WarehouseStock is a product's stock at one named warehouse.
type WarehouseStock struct {
	Warehouse string
	erp.StockLevel
}

// StockRow is a product with its stock resolved per warehouse.
type StockRow struct {
	erp.Product
	Total  int
	Levels []WarehouseStock
}

// loadStock fetches products and warehouses together and joins them.
func loadStock(ctx context.Context, svc erp.InventoryServiceAPI) ([]StockRow, error) {
	g, gctx := errgroup.WithContext(ctx)

	var products []erp.Product
	var warehouses []erp.Warehouse

	g.Go(func() error {
		list, err := svc.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("inventory.products: %w", err)
		}
		products = list
		return nil
	})

	g.Go(func() error {
		list, err := svc.ListWarehouses(gctx)
		if err != nil {
			return fmt.Errorf("inventory.warehouses: %w", err)
		}
		warehouses = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stockRows(products, warehouses), nil
}

func stockRows(products []erp.Product, warehouses []erp.Warehouse) []StockRow {
	rows := make([]StockRow, len(products))
	for i, p := range products {
		levels := make([]WarehouseStock, len(warehouses))
		for j, w := range warehouses {
			levels[j] = WarehouseStock{Warehouse: w.Name, StockLevel: erp.StockAt(p, w.ID)}
		}
		rows[i] = StockRow{Product: p, Total: erp.TotalStock(p), Levels: levels}
	}
	return rows
}

// stockDetail renders the per-warehouse breakdown of one product.
func stockDetail(r StockRow, f format) vxfw.Widget {
	rows := make([][]string, len(r.Levels))
	for i, l := range r.Levels {
		rows[i] = []string{l.Warehouse, f.number(l.Available), f.number(l.Reserved)}
	}
	return &widgets.Table{
		Columns: []widgets.TableColumn{
			{Width: 24},
			{Width: 10, AlignRight: true},
			{Width: 10, AlignRight: true},
		},
		Header:      []string{f.t("warehouse_quantity") + ": " + r.Name, f.t("available"), f.t("reserved")},
		HeaderStyle: f.palette.Title(),
		Rows:        rows,
		Gap:         2,
	}
}
