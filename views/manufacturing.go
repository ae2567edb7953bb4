package views

import (
	"context"
	"fmt"
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
	"github.com/deevus/erp-tui/widgets"
	"golang.org/x/sync/errgroup"
)

// ProductionRow is a production order with its finished good name resolved.
type ProductionRow struct {
	erp.ProductionOrder
	Product string
}

// ComponentLine is one resolved raw material line of a bill of materials.
type ComponentLine struct {
	Material string
	Quantity int
}

// BOMRow is a bill of materials with product names resolved.
type BOMRow struct {
	ID           string
	FinishedGood string
	Components   []ComponentLine
}

// ManufacturingViewParams holds configuration for the manufacturing pages.
// Inventory resolves product names.
type ManufacturingViewParams struct {
	Service   erp.ManufacturingServiceAPI
	Inventory erp.InventoryServiceAPI
	Env       Env
}

// ProductionView lists production orders, searchable by product or order ID
// and sortable by date and quantity.
type ProductionView struct {
	*listPage[ProductionRow, SortKey]
}

// NewProductionView creates a ProductionView backed by the given params.
func NewProductionView(p ManufacturingViewParams) *ProductionView {
	return &ProductionView{newListPage(listParams[ProductionRow, SortKey]{
		env:         p.Env,
		title:       "production_orders",
		placeholder: "search",
		fields: []func(ProductionRow) string{
			func(r ProductionRow) string { return r.Product },
			func(r ProductionRow) string { return r.ID },
		},
		keys: map[SortKey]sortfilter.Compare[ProductionRow]{
			KeyDate:     sortfilter.By(func(r ProductionRow) string { return r.Date }),
			KeyQuantity: sortfilter.By(func(r ProductionRow) int { return r.Quantity }),
		},
		columns: []column[ProductionRow, SortKey]{
			{title: "id", width: 8,
				text: func(r ProductionRow, _ format) string { return r.ID }},
			{title: "product", width: 20, flex: true,
				text: func(r ProductionRow, _ format) string { return r.Product }},
			{title: "quantity", width: 12, right: true, hotkey: 'u', key: KeyQuantity,
				text: func(r ProductionRow, f format) string { return f.number(r.Quantity) }},
			{title: "date", width: 14, hotkey: 'd', key: KeyDate,
				text: func(r ProductionRow, _ format) string { return r.Date }},
			{title: "status", width: 12,
				text:  func(r ProductionRow, _ format) string { return string(r.Status) },
				style: func(r ProductionRow, f format) vaxis.Style { return vaxis.Style{Foreground: f.palette.StatusColor(string(r.Status))} }},
		},
		fetch: func(ctx context.Context) ([]ProductionRow, error) {
			return loadProduction(ctx, p.Service, p.Inventory)
		},
		summary: func(rows []ProductionRow, f format) string {
			open := 0
			for _, r := range rows {
				if r.Status != erp.ProductionCompleted {
					open++
				}
			}
			return f.t("open_orders") + " " + f.number(open)
		},
	})}
}

func loadProduction(ctx context.Context, svc erp.ManufacturingServiceAPI, inv erp.InventoryServiceAPI) ([]ProductionRow, error) {
	g, gctx := errgroup.WithContext(ctx)

	var orders []erp.ProductionOrder
	var products []erp.Product

	g.Go(func() error {
		list, err := svc.ListProductionOrders(gctx)
		if err != nil {
			return fmt.Errorf("manufacturing.production: %w", err)
		}
		orders = list
		return nil
	})

	g.Go(func() error {
		list, err := inv.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("inventory.products: %w", err)
		}
		products = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := erp.ProductNames(products)
	rows := make([]ProductionRow, len(orders))
	for i, o := range orders {
		rows[i] = ProductionRow{ProductionOrder: o, Product: names.Lookup(o.FinishedGoodID)}
	}
	return rows, nil
}

// BOMView lists bills of materials, searchable by finished good or BOM ID.
// The components of the row under the cursor are shown below the list.
type BOMView struct {
	*listPage[BOMRow, SortKey]
}

// NewBOMView creates a BOMView backed by the given params.
func NewBOMView(p ManufacturingViewParams) *BOMView {
	return &BOMView{newListPage(listParams[BOMRow, SortKey]{
		env:         p.Env,
		title:       "bill_of_materials",
		placeholder: "search",
		fields: []func(BOMRow) string{
			func(r BOMRow) string { return r.FinishedGood },
			func(r BOMRow) string { return r.ID },
		},
		keys: map[SortKey]sortfilter.Compare[BOMRow]{
			KeyName: sortfilter.By(func(r BOMRow) string { return r.FinishedGood }),
		},
		columns: []column[BOMRow, SortKey]{
			{title: "id", width: 8,
				text: func(r BOMRow, _ format) string { return r.ID }},
			{title: "finished_good", width: 20, hotkey: 'n', key: KeyName,
				text: func(r BOMRow, _ format) string { return r.FinishedGood }},
			{title: "components", width: 30, flex: true,
				text: func(r BOMRow, f format) string { return componentSummary(r, f) }},
		},
		fetch: func(ctx context.Context) ([]BOMRow, error) {
			return loadBOMs(ctx, p.Service, p.Inventory)
		},
		detail:       bomDetail,
		detailHeight: 5,
	})}
}

func componentSummary(r BOMRow, f format) string {
	parts := make([]string, len(r.Components))
	for i, c := range r.Components {
		parts[i] = c.Material + " ×" + f.number(c.Quantity)
	}
	return strings.Join(parts, ", ")
}

func bomDetail(r BOMRow, f format) vxfw.Widget {
	rows := make([][]string, len(r.Components))
	for i, c := range r.Components {
		rows[i] = []string{c.Material, f.number(c.Quantity)}
	}
	return &widgets.Table{
		Columns: []widgets.TableColumn{
			{Width: 30},
			{Width: 10, AlignRight: true},
		},
		Header:      []string{f.t("raw_materials") + ": " + r.FinishedGood, f.t("quantity")},
		HeaderStyle: f.palette.Title(),
		Rows:        rows,
		Gap:         2,
	}
}

func loadBOMs(ctx context.Context, svc erp.ManufacturingServiceAPI, inv erp.InventoryServiceAPI) ([]BOMRow, error) {
	g, gctx := errgroup.WithContext(ctx)

	var boms []erp.BillOfMaterials
	var products []erp.Product

	g.Go(func() error {
		list, err := svc.ListBOMs(gctx)
		if err != nil {
			return fmt.Errorf("manufacturing.boms: %w", err)
		}
		boms = list
		return nil
	})

	g.Go(func() error {
		list, err := inv.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("inventory.products: %w", err)
		}
		products = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := erp.ProductNames(products)
	rows := make([]BOMRow, len(boms))
	for i, b := range boms {
		lines := make([]ComponentLine, len(b.Components))
		for j, c := range b.Components {
			lines[j] = ComponentLine{Material: names.Lookup(c.RawMaterialID), Quantity: c.Quantity}
		}
		rows[i] = BOMRow{ID: b.ID, FinishedGood: names.Lookup(b.FinishedGoodID), Components: lines}
	}
	return rows, nil
}
