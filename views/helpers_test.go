package views_test

import (
	"context"
	"testing"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/views"
)

func testDrawContext(w, h uint16) vxfw.DrawContext {
	return vxfw.DrawContext{
		Max: vxfw.Size{Width: w, Height: h},
		Min: vxfw.Size{},
		Characters: func(s string) []vaxis.Character {
			chars := make([]vaxis.Character, 0, len(s))
			for _, r := range s {
				chars = append(chars, vaxis.Character{Grapheme: string(r), Width: 1})
			}
			return chars
		},
	}
}

func testEnv() views.Env {
	return views.Env{StaleTTL: 30 * time.Second}
}

// press sends each key to w as if typed.
func press(t *testing.T, w vxfw.EventHandler, keys ...vaxis.Key) {
	t.Helper()
	for _, k := range keys {
		if _, err := w.HandleEvent(k, vxfw.TargetPhase); err != nil {
			t.Fatalf("handle %v: %v", k, err)
		}
	}
}

func key(r rune) vaxis.Key {
	return vaxis.Key{Keycode: r, Text: string(r)}
}

func typed(s string) []vaxis.Key {
	keys := make([]vaxis.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, key(r))
	}
	return keys
}

var (
	keyEnter = vaxis.Key{Keycode: vaxis.KeyEnter}
	keyEsc   = vaxis.Key{Keycode: vaxis.KeyEsc}
	keyBS    = vaxis.Key{Keycode: vaxis.KeyBackspace}
)

func testWarehouses() []erp.Warehouse {
	return []erp.Warehouse{
		{ID: "WH01", Name: "Main Warehouse", Branch: "Cairo", Type: "Central", Location: "10th of Ramadan"},
		{ID: "WH02", Name: "Alexandria Depot", Branch: "Alexandria", Type: "Regional", Location: "Borg El Arab"},
	}
}

func testProducts() []erp.Product {
	return []erp.Product{
		{
			ID: "P001", Name: "AC Unit 1.5 Ton", SKU: "FP-AC-15T", Category: "Air Conditioners",
			ItemType: erp.FinishedGood, Price: 12500, Status: erp.InStock,
			Stock: map[string]erp.StockLevel{"WH01": {Available: 100, Reserved: 10}, "WH02": {Available: 50, Reserved: 5}},
		},
		{
			ID: "P002", Name: "Refrigerator 500L", SKU: "FP-RF-500", Category: "Refrigerators",
			ItemType: erp.FinishedGood, Price: 18000, Status: erp.LowStock,
			Stock: map[string]erp.StockLevel{"WH01": {Available: 8}},
		},
		{
			ID: "RM001", Name: "Rotary Compressor", SKU: "RM-COMP-01", Category: "Components",
			ItemType: erp.RawMaterial, Price: 2200, Status: erp.InStock,
			Stock: map[string]erp.StockLevel{"WH02": {Available: 300, Reserved: 20}},
		},
	}
}

func mockInventory() *erp.MockInventoryService {
	return &erp.MockInventoryService{
		ListProductsFunc: func(ctx context.Context) ([]erp.Product, error) {
			return testProducts(), nil
		},
		ListWarehousesFunc: func(ctx context.Context) ([]erp.Warehouse, error) {
			return testWarehouses(), nil
		},
		ListTransfersFunc: func(ctx context.Context) ([]erp.InventoryTransfer, error) {
			return []erp.InventoryTransfer{
				{ID: "T001", Date: "2024-07-20", ProductID: "P001", FromWarehouseID: "WH01", ToWarehouseID: "WH02", Quantity: 20, Status: erp.TransferCompleted},
				{ID: "T002", Date: "2024-07-22", ProductID: "RM001", FromWarehouseID: "WH02", ToWarehouseID: "WH09", Quantity: 5, Status: erp.TransferInTransit},
			}, nil
		},
	}
}
