package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/sortfilter"
	"golang.org/x/sync/errgroup"
)

// WarehousesViewParams holds configuration for the warehouse pages.
type WarehousesViewParams struct {
	Service erp.InventoryServiceAPI
	Env     Env
}

// WarehousesView lists stock locations, searchable by name or branch and
// sortable by both.
type WarehousesView struct {
	*listPage[erp.Warehouse, SortKey]
}

// NewWarehousesView creates a WarehousesView backed by the given params.
func NewWarehousesView(p WarehousesViewParams) *WarehousesView {
	return &WarehousesView{newListPage(listParams[erp.Warehouse, SortKey]{
		env:         p.Env,
		title:       "branches_warehouses",
		placeholder: "search",
		fields: []func(erp.Warehouse) string{
			func(w erp.Warehouse) string { return w.Name },
			func(w erp.Warehouse) string { return w.Branch },
		},
		keys: map[SortKey]sortfilter.Compare[erp.Warehouse]{
			KeyName:   sortfilter.By(func(w erp.Warehouse) string { return w.Name }),
			KeyBranch: sortfilter.By(func(w erp.Warehouse) string { return w.Branch }),
		},
		columns: []column[erp.Warehouse, SortKey]{
			{title: "warehouse_name", width: 20, flex: true, hotkey: 'n', key: KeyName,
				text: func(w erp.Warehouse, _ format) string { return w.Name }},
			{title: "branch", width: 16, hotkey: 'b', key: KeyBranch,
				text: func(w erp.Warehouse, _ format) string { return w.Branch }},
			{title: "warehouse_type", width: 16,
				text: func(w erp.Warehouse, _ format) string { return w.Type }},
			{title: "location", width: 16,
				text: func(w erp.Warehouse, _ format) string { return w.Location }},
		},
		fetch: func(ctx context.Context) ([]erp.Warehouse, error) {
			list, err := p.Service.ListWarehouses(ctx)
			if err != nil {
				return nil, fmt.Errorf("inventory.warehouses: %w", err)
			}
			return list, nil
		},
	})}
}

// TransferRow is a stock transfer with product and warehouse names resolved.
type TransferRow struct {
	erp.InventoryTransfer
	Product string
	From    string
	To      string
}

// TransfersView lists stock transfers, searchable by product or transfer ID
// and sortable by date and quantity.
type TransfersView struct {
	*listPage[TransferRow, SortKey]
}

// NewTransfersView creates a TransfersView backed by the given params.
func NewTransfersView(p WarehousesViewParams) *TransfersView {
	return &TransfersView{newListPage(listParams[TransferRow, SortKey]{
		env:         p.Env,
		title:       "inventory_transfers",
		placeholder: "search",
		fields: []func(TransferRow) string{
			func(r TransferRow) string { return r.Product },
			func(r TransferRow) string { return r.ID },
		},
		keys: map[SortKey]sortfilter.Compare[TransferRow]{
			KeyDate:     sortfilter.By(func(r TransferRow) string { return r.Date }),
			KeyQuantity: sortfilter.By(func(r TransferRow) int { return r.Quantity }),
		},
		columns: []column[TransferRow, SortKey]{
			{title: "id", width: 8,
				text: func(r TransferRow, _ format) string { return r.ID }},
			{title: "date", width: 12, hotkey: 'd', key: KeyDate,
				text: func(r TransferRow, _ format) string { return r.Date }},
			{title: "product", width: 18, flex: true,
				text: func(r TransferRow, _ format) string { return r.Product }},
			{title: "from_warehouse", width: 16,
				text: func(r TransferRow, _ format) string { return r.From }},
			{title: "to_warehouse", width: 16,
				text: func(r TransferRow, _ format) string { return r.To }},
			{title: "quantity", width: 10, right: true, hotkey: 'u', key: KeyQuantity,
				text: func(r TransferRow, f format) string { return f.number(r.Quantity) }},
			{title: "status", width: 12,
				text:  func(r TransferRow, _ format) string { return string(r.Status) },
				style: func(r TransferRow, f format) vaxis.Style { return vaxis.Style{Foreground: f.palette.StatusColor(string(r.Status))} }},
		},
		fetch: func(ctx context.Context) ([]TransferRow, error) {
			return loadTransfers(ctx, p.Service)
		},
		summary: func(rows []TransferRow, f format) string {
			moving := 0
			for _, r := range rows {
				if r.Status == erp.TransferInTransit {
					moving++
				}
			}
			return f.t("in_transit") + " " + f.number(moving)
		},
	})}
}

func loadTransfers(ctx context.Context, svc erp.InventoryServiceAPI) ([]TransferRow, error) {
	g, gctx := errgroup.WithContext(ctx)

	var transfers []erp.InventoryTransfer
	var products []erp.Product
	var warehouses []erp.Warehouse

	g.Go(func() error {
		list, err := svc.ListTransfers(gctx)
		if err != nil {
			return fmt.Errorf("inventory.transfers: %w", err)
		}
		transfers = list
		return nil
	})

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

	items := erp.ProductNames(products)
	sites := erp.WarehouseNames(warehouses)
	rows := make([]TransferRow, len(transfers))
	for i, t := range transfers {
		rows[i] = TransferRow{
			InventoryTransfer: t,
			Product:           items.Lookup(t.ProductID),
			From:              sites.Lookup(t.FromWarehouseID),
			To:                sites.Lookup(t.ToWarehouseID),
		}
	}
	return rows, nil
}
