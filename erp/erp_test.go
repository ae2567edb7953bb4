package erp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deevus/erp-tui/erp"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultFixtures(t *testing.T) {
	f, err := erp.DefaultFixtures()
	require.NoError(t, err)

	assert.Len(t, f.Sales, 5)
	assert.Len(t, f.Warehouses, 3)
	assert.NotEmpty(t, f.Products)
	assert.NotEmpty(t, f.BOMs)
	assert.InDelta(t, 1.8, f.Dashboard.QuickRatio, 0.0001)

	p := f.Products[0]
	assert.Equal(t, "FP-AC-15T", p.SKU)
	assert.Equal(t, erp.FinishedGood, p.ItemType)
	assert.Equal(t, erp.StockLevel{Available: 100, Reserved: 10}, p.Stock["WH01"])
	assert.Equal(t, 150, erp.TotalStock(p))

	require.Len(t, f.BOMs[0].Components, 2)
	assert.Equal(t, "RM001", f.BOMs[0].Components[0].RawMaterialID)
}

func TestDecodeFixtures_UnknownKey(t *testing.T) {
	_, err := erp.DecodeFixtures(`
[[sales]]
id = "S1"
colour = "red"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestLoadFixtures_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[suppliers]]
id = "SUP9"
name = "Acme"
`), 0o644))

	f, err := erp.LoadFixtures(path)
	require.NoError(t, err)
	want := []erp.Supplier{{ID: "SUP9", Name: "Acme"}}
	if diff := cmp.Diff(want, f.Suppliers); diff != "" {
		t.Errorf("suppliers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFixtures_Missing(t *testing.T) {
	_, err := erp.LoadFixtures(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFixtures_EmptyPathUsesDefault(t *testing.T) {
	f, err := erp.LoadFixtures("")
	require.NoError(t, err)
	assert.Len(t, f.Sales, 5)
}

func newStore(t *testing.T, latency erp.Latency) *erp.MemoryStore {
	t.Helper()
	f, err := erp.DefaultFixtures()
	require.NoError(t, err)
	return erp.NewMemoryStore(f, latency)
}

func TestMemoryStore_ListsWithoutLatency(t *testing.T) {
	s := newStore(t, erp.Latency{})
	ctx := context.Background()

	sales, err := s.ListSales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 5)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1250000, stats.TotalSales, 0.01)

	monthly, err := s.ListMonthlySales(ctx)
	require.NoError(t, err)
	assert.Len(t, monthly, 6)

	top, err := s.ListTopProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 450, top[0].Sales)

	boms, err := s.ListBOMs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, boms)
}

func TestMemoryStore_SnapshotsAreIndependent(t *testing.T) {
	s := newStore(t, erp.Latency{})
	ctx := context.Background()

	first, err := s.ListProducts(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Stock["WH01"] = erp.StockLevel{}

	second, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fujiplus AC Unit 1.5 Ton", second[0].Name)
	assert.Equal(t, 100, second[0].Stock["WH01"].Available)
}

func TestMemoryStore_DelayHonoursCancel(t *testing.T) {
	s := newStore(t, erp.Latency{Sales: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.ListSales(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMemoryStore_Delay(t *testing.T) {
	s := newStore(t, erp.Latency{Stats: 20 * time.Millisecond})
	start := time.Now()
	_, err := s.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestMemoryStore_NilFixtures(t *testing.T) {
	s := erp.NewMemoryStore(nil, erp.Latency{})
	sales, err := s.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestLatency_Scale(t *testing.T) {
	l := erp.DefaultLatency()
	half := l.Scale(0.5)
	assert.Equal(t, 250*time.Millisecond, half.Products)
	assert.Equal(t, 400*time.Millisecond, half.TopProducts)

	off := l.Scale(0)
	assert.Equal(t, erp.Latency{}, off)
}

func TestDerived(t *testing.T) {
	products := []erp.Product{
		{ID: "a", Name: "A", Price: 10, ItemType: erp.FinishedGood, Stock: map[string]erp.StockLevel{
			"w1": {Available: 2, Reserved: 1},
			"w2": {Available: 3},
		}},
		{ID: "b", Name: "B", Price: 5, ItemType: erp.RawMaterial},
	}

	assert.Equal(t, 5, erp.TotalStock(products[0]))
	assert.Equal(t, 1, erp.TotalReserved(products[0]))
	assert.Equal(t, 0, erp.TotalStock(products[1]))
	assert.Equal(t, 5, erp.TotalQuantity(products))
	assert.InDelta(t, 50, erp.InventoryValue(products), 0.001)
	assert.Equal(t, erp.StockLevel{}, erp.StockAt(products[0], "missing"))
	assert.Len(t, erp.FinishedGoods(products), 1)

	names := erp.ProductNames(products)
	assert.Equal(t, "A", names.Lookup("a"))
	assert.Equal(t, "zzz", names.Lookup("zzz"))
}

func TestSalesByStatusAndPurchaseTotal(t *testing.T) {
	sales := []erp.Sale{
		{Total: 10, Status: erp.SalePaid},
		{Total: 5, Status: erp.SalePaid},
		{Total: 7, Status: erp.SaleOverdue},
	}
	by := erp.SalesByStatus(sales)
	assert.InDelta(t, 15, by[erp.SalePaid], 0.001)
	assert.InDelta(t, 7, by[erp.SaleOverdue], 0.001)

	orders := []erp.PurchaseOrder{
		{Total: 100, Status: erp.POReceived},
		{Total: 50, Status: erp.POCancelled},
		{Total: 25, Status: erp.PODraft},
	}
	assert.InDelta(t, 125, erp.PurchaseTotal(orders), 0.001)
}
