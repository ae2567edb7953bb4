package erp

import "context"

// MockInventoryService is a test double for InventoryServiceAPI. Nil funcs
// return empty results.
type MockInventoryService struct {
	ListProductsFunc   func(ctx context.Context) ([]Product, error)
	ListWarehousesFunc func(ctx context.Context) ([]Warehouse, error)
	ListTransfersFunc  func(ctx context.Context) ([]InventoryTransfer, error)
}

func (m *MockInventoryService) ListProducts(ctx context.Context) ([]Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return nil, nil
}

func (m *MockInventoryService) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	if m.ListWarehousesFunc != nil {
		return m.ListWarehousesFunc(ctx)
	}
	return nil, nil
}

func (m *MockInventoryService) ListTransfers(ctx context.Context) ([]InventoryTransfer, error) {
	if m.ListTransfersFunc != nil {
		return m.ListTransfersFunc(ctx)
	}
	return nil, nil
}

// MockSalesService is a test double for SalesServiceAPI.
type MockSalesService struct {
	ListSalesFunc func(ctx context.Context) ([]Sale, error)
}

func (m *MockSalesService) ListSales(ctx context.Context) ([]Sale, error) {
	if m.ListSalesFunc != nil {
		return m.ListSalesFunc(ctx)
	}
	return nil, nil
}

// MockPurchasingService is a test double for PurchasingServiceAPI.
type MockPurchasingService struct {
	ListPurchaseOrdersFunc func(ctx context.Context) ([]PurchaseOrder, error)
	ListSuppliersFunc      func(ctx context.Context) ([]Supplier, error)
}

func (m *MockPurchasingService) ListPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error) {
	if m.ListPurchaseOrdersFunc != nil {
		return m.ListPurchaseOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPurchasingService) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	if m.ListSuppliersFunc != nil {
		return m.ListSuppliersFunc(ctx)
	}
	return nil, nil
}

// MockManufacturingService is a test double for ManufacturingServiceAPI.
type MockManufacturingService struct {
	ListProductionOrdersFunc func(ctx context.Context) ([]ProductionOrder, error)
	ListBOMsFunc             func(ctx context.Context) ([]BillOfMaterials, error)
}

func (m *MockManufacturingService) ListProductionOrders(ctx context.Context) ([]ProductionOrder, error) {
	if m.ListProductionOrdersFunc != nil {
		return m.ListProductionOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockManufacturingService) ListBOMs(ctx context.Context) ([]BillOfMaterials, error) {
	if m.ListBOMsFunc != nil {
		return m.ListBOMsFunc(ctx)
	}
	return nil, nil
}

// MockReportingService is a test double for ReportingServiceAPI.
type MockReportingService struct {
	GetDashboardStatsFunc func(ctx context.Context) (*DashboardStats, error)
	ListMonthlySalesFunc  func(ctx context.Context) ([]MonthlySales, error)
	ListTopProductsFunc   func(ctx context.Context) ([]TopProduct, error)
}

func (m *MockReportingService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if m.GetDashboardStatsFunc != nil {
		return m.GetDashboardStatsFunc(ctx)
	}
	return &DashboardStats{}, nil
}

func (m *MockReportingService) ListMonthlySales(ctx context.Context) ([]MonthlySales, error) {
	if m.ListMonthlySalesFunc != nil {
		return m.ListMonthlySalesFunc(ctx)
	}
	return nil, nil
}

func (m *MockReportingService) ListTopProducts(ctx context.Context) ([]TopProduct, error) {
	if m.ListTopProductsFunc != nil {
		return m.ListTopProductsFunc(ctx)
	}
	return nil, nil
}
