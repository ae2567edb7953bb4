package views_test

import (
	"context"
	"testing"

	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockManufacturing() *erp.MockManufacturingService {
	return &erp.MockManufacturingService{
		ListProductionOrdersFunc: func(ctx context.Context) ([]erp.ProductionOrder, error) {
			return []erp.ProductionOrder{
				{ID: "PRD01", FinishedGoodID: "P001", Quantity: 50, Date: "2024-07-05", Status: erp.ProductionCompleted},
				{ID: "PRD02", FinishedGoodID: "P002", Quantity: 20, Date: "2024-07-12", Status: erp.ProductionInProgress},
			}, nil
		},
		ListBOMsFunc: func(ctx context.Context) ([]erp.BillOfMaterials, error) {
			return []erp.BillOfMaterials{
				{ID: "BOM01", FinishedGoodID: "P001", Components: []erp.BOMComponent{
					{RawMaterialID: "RM001", Quantity: 1},
					{RawMaterialID: "RM404", Quantity: 3},
				}},
				{ID: "BOM02", FinishedGoodID: "P002", Components: []erp.BOMComponent{
					{RawMaterialID: "RM001", Quantity: 2},
				}},
			}, nil
		},
	}
}

func manufacturingParams() views.ManufacturingViewParams {
	return views.ManufacturingViewParams{
		Service:   mockManufacturing(),
		Inventory: mockInventory(),
		Env:       testEnv(),
	}
}

func TestProductionView(t *testing.T) {
	pv := views.NewProductionView(manufacturingParams())
	require.NoError(t, pv.Load(context.Background()))

	rows := pv.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "AC Unit 1.5 Ton", rows[0].Product)

	press(t, pv, key('u'))
	assert.Equal(t, "PRD02", pv.Rows()[0].ID)

	pv.View().SetSearchTerm("fridge")
	assert.Equal(t, 0, pv.ItemCount())
	pv.View().SetSearchTerm("refriger")
	assert.Equal(t, 1, pv.ItemCount())

	_, err := pv.Draw(testDrawContext(90, 12))
	require.NoError(t, err)
}

func TestProductionView_InventoryError(t *testing.T) {
	p := manufacturingParams()
	p.Inventory = &erp.MockInventoryService{
		ListProductsFunc: func(ctx context.Context) ([]erp.Product, error) {
			return nil, context.DeadlineExceeded
		},
	}
	pv := views.NewProductionView(p)
	err := pv.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory.products")
}

func TestBOMView(t *testing.T) {
	bv := views.NewBOMView(manufacturingParams())
	require.NoError(t, bv.Load(context.Background()))

	rows := bv.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "AC Unit 1.5 Ton", rows[0].FinishedGood)
	assert.Equal(t, []views.ComponentLine{
		{Material: "Rotary Compressor", Quantity: 1},
		{Material: "RM404", Quantity: 3},
	}, rows[0].Components)

	bv.View().SetSearchTerm("bom02")
	require.Equal(t, 1, bv.ItemCount())
	assert.Equal(t, "Refrigerator 500L", bv.Rows()[0].FinishedGood)

	s, err := bv.Draw(testDrawContext(100, 20))
	require.NoError(t, err)
	assert.Equal(t, uint16(20), s.Size.Height)
}

func TestBOMView_SortByFinishedGood(t *testing.T) {
	bv := views.NewBOMView(manufacturingParams())
	require.NoError(t, bv.Load(context.Background()))

	press(t, bv, key('n'), key('n'))
	assert.Equal(t, "BOM02", bv.Rows()[0].ID)
}
