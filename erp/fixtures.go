package erp

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed fixtures.toml
var defaultFixtures string

// Fixtures is the full data set served by a MemoryStore.
type Fixtures struct {
	Dashboard        DashboardStats      `toml:"dashboard"`
	Products         []Product           `toml:"products"`
	Warehouses       []Warehouse         `toml:"warehouses"`
	Transfers        []InventoryTransfer `toml:"transfers"`
	Sales            []Sale              `toml:"sales"`
	Suppliers        []Supplier          `toml:"suppliers"`
	PurchaseOrders   []PurchaseOrder     `toml:"purchase_orders"`
	ProductionOrders []ProductionOrder   `toml:"production_orders"`
	BOMs             []BillOfMaterials   `toml:"boms"`
	MonthlySales     []MonthlySales      `toml:"monthly_sales"`
	TopProducts      []TopProduct        `toml:"top_products"`
}

// DefaultFixtures returns the built-in demo data set.
func DefaultFixtures() (*Fixtures, error) {
	return DecodeFixtures(defaultFixtures)
}

// DecodeFixtures parses a TOML fixture document.
func DecodeFixtures(data string) (*Fixtures, error) {
	var f Fixtures
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decoding fixtures: unknown keys %v", undecoded)
	}
	return &f, nil
}

// LoadFixtures reads fixtures from path, or returns the built-in set when path
// is empty.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading fixtures from %s: %w", path, err)
	}
	return DecodeFixtures(string(data))
}
