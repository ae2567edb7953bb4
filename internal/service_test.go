package internal_test

import (
	"testing"

	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/internal"
)

func TestNewServices(t *testing.T) {
	store := erp.NewMemoryStore(&erp.Fixtures{}, erp.Latency{})

	svc := internal.NewServices(store)

	if svc.Inventory == nil {
		t.Fatal("expected Inventory service")
	}
	if svc.Sales == nil {
		t.Fatal("expected Sales service")
	}
	if svc.Purchasing == nil {
		t.Fatal("expected Purchasing service")
	}
	if svc.Manufacturing == nil {
		t.Fatal("expected Manufacturing service")
	}
	if svc.Reporting == nil {
		t.Fatal("expected Reporting service")
	}
}
