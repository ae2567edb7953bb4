package erp

import "context"

// InventoryServiceAPI lists stock, stock locations and stock movements.
type InventoryServiceAPI interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListWarehouses(ctx context.Context) ([]Warehouse, error)
	ListTransfers(ctx context.Context) ([]InventoryTransfer, error)
}

// SalesServiceAPI lists customer invoices.
type SalesServiceAPI interface {
	ListSales(ctx context.Context) ([]Sale, error)
}

// PurchasingServiceAPI lists purchase orders and suppliers.
type PurchasingServiceAPI interface {
	ListPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error)
	ListSuppliers(ctx context.Context) ([]Supplier, error)
}

// ManufacturingServiceAPI lists production orders and bills of materials.
type ManufacturingServiceAPI interface {
	ListProductionOrders(ctx context.Context) ([]ProductionOrder, error)
	ListBOMs(ctx context.Context) ([]BillOfMaterials, error)
}

// ReportingServiceAPI serves the dashboard figures.
type ReportingServiceAPI interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	ListMonthlySales(ctx context.Context) ([]MonthlySales, error)
	ListTopProducts(ctx context.Context) ([]TopProduct, error)
}
