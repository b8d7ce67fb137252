package stock

import (
	"testing"

	"bakery_frontdesk/pkg/models"
)

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		quantity int
		want     models.StockStatus
	}{
		{0, models.StockOut},
		{-1, models.StockOut},
		{1, models.StockLow},
		{4, models.StockLow},
		{5, models.StockAvailable},
		{100, models.StockAvailable},
	}
	for _, tc := range cases {
		if got := DeriveStockStatus(tc.quantity); got != tc.want {
			t.Errorf("DeriveStockStatus(%d) = %q, want %q", tc.quantity, got, tc.want)
		}
	}
}

// severity must never decrease as quantity decreases
func TestDeriveStockStatusMonotonic(t *testing.T) {
	severity := map[models.StockStatus]int{
		models.StockAvailable: 0,
		models.StockLow:       1,
		models.StockOut:       2,
	}
	prev := severity[DeriveStockStatus(50)]
	for q := 49; q >= 0; q-- {
		cur := severity[DeriveStockStatus(q)]
		if cur < prev {
			t.Fatalf("severity dropped from %d to %d at quantity %d", prev, cur, q)
		}
		prev = cur
	}
}

func TestNeedsRestockWarning(t *testing.T) {
	if !NeedsRestockWarning(models.StockLow) {
		t.Error("expected warning for low stock")
	}
	if !NeedsRestockWarning(models.StockOut) {
		t.Error("expected warning for out of stock")
	}
	if NeedsRestockWarning(models.StockAvailable) {
		t.Error("did not expect warning for available stock")
	}
}

func TestComputeTotal(t *testing.T) {
	total, err := ComputeTotal(50, 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 150 {
		t.Errorf("ComputeTotal(50, 3) = %v, want 150", total)
	}

	if _, err := ComputeTotal(50, 0, 10); err == nil {
		t.Error("expected error for quantity 0")
	}
	if _, err := ComputeTotal(50, 11, 10); err == nil {
		t.Error("expected error for quantity above available stock")
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1, 4); got != "25.0%" {
		t.Errorf("FormatPercent(1, 4) = %q, want 25.0%%", got)
	}
	if got := FormatPercent(3, 0); got != "0.0%" {
		t.Errorf("FormatPercent(3, 0) = %q, want 0.0%%", got)
	}
}
