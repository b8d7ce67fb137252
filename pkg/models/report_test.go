package models

import (
	"encoding/json"
	"testing"
)

// a partial upstream response must render missing figures as zero, not panic
func TestProfitLossNormalizeDefaultsMissingFields(t *testing.T) {
	raw := `{
		"summary": {
			"startDate": "2025-01-01",
			"endDate": "2025-01-31",
			"totalSales": 1200.5,
			"expense": {
				"total": 400,
				"breakdown": {"labor": 250}
			}
		},
		"details": [{"date": "2025-01-02", "sales": 100}]
	}`

	var report ProfitLossReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	report.Normalize()

	if *report.Summary.Expense.Breakdown.Flour != 0 {
		t.Errorf("missing flour breakdown = %v, want 0", *report.Summary.Expense.Breakdown.Flour)
	}
	if *report.Summary.ProfitOrLoss != 0 {
		t.Errorf("missing profitOrLoss = %v, want 0", *report.Summary.ProfitOrLoss)
	}
	if *report.Summary.TotalSales != 1200.5 {
		t.Errorf("present totalSales = %v, want 1200.5", *report.Summary.TotalSales)
	}
	if *report.Summary.Expense.Breakdown.Labor != 250 {
		t.Errorf("present labor breakdown = %v, want 250", *report.Summary.Expense.Breakdown.Labor)
	}
	if *report.Details[0].Expense != 0 {
		t.Errorf("missing detail expense = %v, want 0", *report.Details[0].Expense)
	}
}

func TestProfitLossNormalizeEmptyReport(t *testing.T) {
	var report ProfitLossReport
	report.Normalize()

	if report.Summary.TotalSales == nil || *report.Summary.TotalSales != 0 {
		t.Error("empty report should normalize every figure to 0")
	}
}
