package stock

import (
	"fmt"

	"bakery_frontdesk/pkg/models"
)

// LowStockThreshold is the quantity below which a product counts as low stock.
const LowStockThreshold = 5

// DeriveStockStatus maps a quantity to its three-state stock label. This is
// the single home of the threshold rule; handlers must never reimplement it.
func DeriveStockStatus(quantity int) models.StockStatus {
	switch {
	case quantity <= 0:
		return models.StockOut
	case quantity < LowStockThreshold:
		return models.StockLow
	default:
		return models.StockAvailable
	}
}

// NeedsRestockWarning reports whether a status should trigger a restock
// warning after a sale.
func NeedsRestockWarning(status models.StockStatus) bool {
	return status == models.StockLow || status == models.StockOut
}

// ComputeTotal returns unitPrice × quantity. Quantity must be at least 1 and
// no greater than the available stock.
func ComputeTotal(unitPrice float64, quantity, available int) (float64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("quantity must be at least 1")
	}
	if quantity > available {
		return 0, fmt.Errorf("quantity %d exceeds available stock %d", quantity, available)
	}
	return unitPrice * float64(quantity), nil
}

// FormatPercent renders a share of a total as a chart-legend percentage.
// A zero total yields "0.0%" rather than dividing by zero.
func FormatPercent(part, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", part/total*100)
}
