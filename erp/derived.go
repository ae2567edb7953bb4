package erp

// TotalStock is the quantity available across all warehouses. Reserved
// quantities are not counted.
func TotalStock(p Product) int {
	total := 0
	for _, lvl := range p.Stock {
		total += lvl.Available
	}
	return total
}

// TotalReserved is the quantity reserved across all warehouses.
func TotalReserved(p Product) int {
	total := 0
	for _, lvl := range p.Stock {
		total += lvl.Reserved
	}
	return total
}

// TotalQuantity sums TotalStock over products.
func TotalQuantity(products []Product) int {
	total := 0
	for _, p := range products {
		total += TotalStock(p)
	}
	return total
}

// InventoryValue is the price-weighted available stock of products.
func InventoryValue(products []Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * float64(TotalStock(p))
	}
	return total
}

// StockAt returns the stock level of p at warehouse id; missing entries are zero.
func StockAt(p Product, warehouseID string) StockLevel {
	return p.Stock[warehouseID]
}

// SalesByStatus totals invoice amounts per status.
func SalesByStatus(sales []Sale) map[SaleStatus]float64 {
	out := make(map[SaleStatus]float64)
	for _, s := range sales {
		out[s.Status] += s.Total
	}
	return out
}

// PurchaseTotal sums purchase orders that were not cancelled.
func PurchaseTotal(orders []PurchaseOrder) float64 {
	var total float64
	for _, o := range orders {
		if o.Status == POCancelled {
			continue
		}
		total += o.Total
	}
	return total
}

// Names indexes display names by ID.
type Names map[string]string

// Lookup returns the name for id, or id itself when it is unknown.
func (n Names) Lookup(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return id
}

// ProductNames indexes product names by ID.
func ProductNames(products []Product) Names {
	out := make(Names, len(products))
	for _, p := range products {
		out[p.ID] = p.Name
	}
	return out
}

// SupplierNames indexes supplier names by ID.
func SupplierNames(suppliers []Supplier) Names {
	out := make(Names, len(suppliers))
	for _, s := range suppliers {
		out[s.ID] = s.Name
	}
	return out
}

// WarehouseNames indexes warehouse names by ID.
func WarehouseNames(warehouses []Warehouse) Names {
	out := make(Names, len(warehouses))
	for _, w := range warehouses {
		out[w.ID] = w.Name
	}
	return out
}

// FinishedGoods filters products down to finished goods.
func FinishedGoods(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ItemType == FinishedGood {
			out = append(out, p)
		}
	}
	return out
}
