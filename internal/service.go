package internal

import "github.com/deevus/erp-tui/erp"

// Services holds the ERP data-source interfaces the views read from.
type Services struct {
	Inventory     erp.InventoryServiceAPI
	Sales         erp.SalesServiceAPI
	Purchasing    erp.PurchasingServiceAPI
	Manufacturing erp.ManufacturingServiceAPI
	Reporting     erp.ReportingServiceAPI
}

// NewServices creates a Services container served entirely by store.
func NewServices(store *erp.MemoryStore) *Services {
	return &Services{
		Inventory:     store,
		Sales:         store,
		Purchasing:    store,
		Manufacturing: store,
		Reporting:     store,
	}
}
