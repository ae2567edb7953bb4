package erp

import (
	"context"
	"slices"
	"time"
)

// Latency is the simulated response time of each MemoryStore call.
type Latency struct {
	Products     time.Duration
	Sales        time.Duration
	Stats        time.Duration
	MonthlySales time.Duration
	TopProducts  time.Duration
	Other        time.Duration
}

// DefaultLatency mirrors the response times of the demo back end.
func DefaultLatency() Latency {
	return Latency{
		Products:     500 * time.Millisecond,
		Sales:        500 * time.Millisecond,
		Stats:        300 * time.Millisecond,
		MonthlySales: 700 * time.Millisecond,
		TopProducts:  800 * time.Millisecond,
		Other:        500 * time.Millisecond,
	}
}

// Scale multiplies every latency by f. f <= 0 disables the delays.
func (l Latency) Scale(f float64) Latency {
	scale := func(d time.Duration) time.Duration {
		if f <= 0 {
			return 0
		}
		return time.Duration(float64(d) * f)
	}
	return Latency{
		Products:     scale(l.Products),
		Sales:        scale(l.Sales),
		Stats:        scale(l.Stats),
		MonthlySales: scale(l.MonthlySales),
		TopProducts:  scale(l.TopProducts),
		Other:        scale(l.Other),
	}
}

// MemoryStore serves fixtures after a fixed delay. It implements every
// service interface in this package. Each call returns a fresh snapshot.
type MemoryStore struct {
	data    *Fixtures
	latency Latency
}

var (
	_ InventoryServiceAPI     = (*MemoryStore)(nil)
	_ SalesServiceAPI         = (*MemoryStore)(nil)
	_ PurchasingServiceAPI    = (*MemoryStore)(nil)
	_ ManufacturingServiceAPI = (*MemoryStore)(nil)
	_ ReportingServiceAPI     = (*MemoryStore)(nil)
)

// NewMemoryStore creates a store over data.
func NewMemoryStore(data *Fixtures, latency Latency) *MemoryStore {
	if data == nil {
		data = &Fixtures{}
	}
	return &MemoryStore{data: data, latency: latency}
}

// simulateDelay waits for d or until ctx is done.
func simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]Product, error) {
	if err := simulateDelay(ctx, s.latency.Products); err != nil {
		return nil, err
	}
	out := make([]Product, len(s.data.Products))
	for i, p := range s.data.Products {
		if p.Stock != nil {
			stock := make(map[string]StockLevel, len(p.Stock))
			for k, v := range p.Stock {
				stock[k] = v
			}
			p.Stock = stock
		}
		out[i] = p
	}
	return out, nil
}

func (s *MemoryStore) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Warehouses), nil
}

func (s *MemoryStore) ListTransfers(ctx context.Context) ([]InventoryTransfer, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Transfers), nil
}

func (s *MemoryStore) ListSales(ctx context.Context) ([]Sale, error) {
	if err := simulateDelay(ctx, s.latency.Sales); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Sales), nil
}

func (s *MemoryStore) ListPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.PurchaseOrders), nil
}

func (s *MemoryStore) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Suppliers), nil
}

func (s *MemoryStore) ListProductionOrders(ctx context.Context) ([]ProductionOrder, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.ProductionOrders), nil
}

func (s *MemoryStore) ListBOMs(ctx context.Context) ([]BillOfMaterials, error) {
	if err := simulateDelay(ctx, s.latency.Other); err != nil {
		return nil, err
	}
	out := make([]BillOfMaterials, len(s.data.BOMs))
	for i, b := range s.data.BOMs {
		b.Components = slices.Clone(b.Components)
		out[i] = b
	}
	return out, nil
}

func (s *MemoryStore) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if err := simulateDelay(ctx, s.latency.Stats); err != nil {
		return nil, err
	}
	stats := s.data.Dashboard
	return &stats, nil
}

func (s *MemoryStore) ListMonthlySales(ctx context.Context) ([]MonthlySales, error) {
	if err := simulateDelay(ctx, s.latency.MonthlySales); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.MonthlySales), nil
}

func (s *MemoryStore) ListTopProducts(ctx context.Context) ([]TopProduct, error) {
	if err := simulateDelay(ctx, s.latency.TopProducts); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.TopProducts), nil
}
