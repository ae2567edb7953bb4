// Package erp holds the ERP data model and the data-source services that
// feed the dashboard.
package erp

// ProductStatus is the stock status shown for a product.
type ProductStatus string

const (
	InStock    ProductStatus = "In Stock"
	LowStock   ProductStatus = "Low Stock"
	OutOfStock ProductStatus = "Out of Stock"
)

// ItemType distinguishes sellable goods from manufacturing inputs.
type ItemType string

const (
	FinishedGood ItemType = "Finished Good"
	RawMaterial  ItemType = "Raw Material"
)

// StockLevel is the quantity of a product held at one warehouse.
type StockLevel struct {
	Available int `toml:"available"`
	Reserved  int `toml:"reserved"`
}

// Product is an inventory item. Stock is keyed by warehouse ID.
type Product struct {
	ID       string                `toml:"id"`
	Name     string                `toml:"name"`
	SKU      string                `toml:"sku"`
	Category string                `toml:"category"`
	ItemType ItemType              `toml:"item_type"`
	Price    float64               `toml:"price"`
	Status   ProductStatus         `toml:"status"`
	Stock    map[string]StockLevel `toml:"stock"`
}

// SaleStatus is the payment state of an invoice.
type SaleStatus string

const (
	SalePaid    SaleStatus = "Paid"
	SalePending SaleStatus = "Pending"
	SaleOverdue SaleStatus = "Overdue"
)

// Sale is a customer invoice. Date is an ISO-8601 calendar date.
type Sale struct {
	ID       string     `toml:"id"`
	Customer string     `toml:"customer"`
	Date     string     `toml:"date"`
	Total    float64    `toml:"total"`
	Status   SaleStatus `toml:"status"`
}

// Supplier is a vendor referenced by purchase orders.
type Supplier struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// PurchaseOrderStatus is the lifecycle state of a purchase order.
type PurchaseOrderStatus string

const (
	PODraft     PurchaseOrderStatus = "Draft"
	POSent      PurchaseOrderStatus = "Sent"
	POReceived  PurchaseOrderStatus = "Received"
	POCancelled PurchaseOrderStatus = "Cancelled"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID         string              `toml:"id"`
	SupplierID string              `toml:"supplier_id"`
	Date       string              `toml:"date"`
	Total      float64             `toml:"total"`
	Status     PurchaseOrderStatus `toml:"status"`
}

// ProductionStatus is the state of a production order.
type ProductionStatus string

const (
	ProductionPending    ProductionStatus = "Pending"
	ProductionInProgress ProductionStatus = "In Progress"
	ProductionCompleted  ProductionStatus = "Completed"
)

// ProductionOrder schedules manufacture of a finished good.
type ProductionOrder struct {
	ID             string           `toml:"id"`
	FinishedGoodID string           `toml:"finished_good_id"`
	Quantity       int              `toml:"quantity"`
	Date           string           `toml:"date"`
	Status         ProductionStatus `toml:"status"`
}

// BOMComponent is one raw material line of a bill of materials.
type BOMComponent struct {
	RawMaterialID string `toml:"raw_material_id"`
	Quantity      int    `toml:"quantity"`
}

// BillOfMaterials lists the raw materials needed for one finished good.
type BillOfMaterials struct {
	ID             string         `toml:"id"`
	FinishedGoodID string         `toml:"finished_good_id"`
	Components     []BOMComponent `toml:"components"`
}

// TransferStatus is the state of a stock transfer.
type TransferStatus string

const (
	TransferInTransit TransferStatus = "In Transit"
	TransferCompleted TransferStatus = "Completed"
)

// InventoryTransfer moves stock of one product between warehouses.
type InventoryTransfer struct {
	ID              string         `toml:"id"`
	Date            string         `toml:"date"`
	ProductID       string         `toml:"product_id"`
	FromWarehouseID string         `toml:"from_warehouse_id"`
	ToWarehouseID   string         `toml:"to_warehouse_id"`
	Quantity        int            `toml:"quantity"`
	Status          TransferStatus `toml:"status"`
}

// Warehouse is a stock location belonging to a branch.
type Warehouse struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Branch   string `toml:"branch"`
	Type     string `toml:"type"`
	Location string `toml:"location"`
}

// DashboardStats are the headline figures on the dashboard.
type DashboardStats struct {
	TotalSales     float64 `toml:"total_sales"`
	TotalPurchases float64 `toml:"total_purchases"`
	InventoryValue float64 `toml:"inventory_value"`
	QuickRatio     float64 `toml:"quick_ratio"`
}

// MonthlySales is one point of the monthly sales trend.
type MonthlySales struct {
	Month string  `toml:"month"`
	Sales float64 `toml:"sales"`
}

// TopProduct is a best seller by units sold.
type TopProduct struct {
	Name  string `toml:"name"`
	Sales int    `toml:"sales"`
}
