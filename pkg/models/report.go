package models

// ProfitLossReport mirrors the upstream /report/profit-loss response. The
// backend occasionally omits numeric fields when a period has no activity, so
// every figure is a pointer and Normalize coalesces the gaps to zero before
// anything renders.
type ProfitLossReport struct {
	Summary ProfitLossSummary  `json:"summary"`
	Details []ProfitLossDetail `json:"details,omitempty"`
}

// ProfitLossSummary holds the aggregated figures for the requested range
type ProfitLossSummary struct {
	StartDate    string             `json:"startDate"`
	EndDate      string             `json:"endDate"`
	TotalSales   *float64           `json:"totalSales"`
	Expense      ProfitLossExpenses `json:"expense"`
	ProfitOrLoss *float64           `json:"profitOrLoss"`
}

// ProfitLossExpenses holds total expenses plus a per-category breakdown
type ProfitLossExpenses struct {
	Total     *float64               `json:"total"`
	Breakdown ProfitLossExpenseSplit `json:"breakdown"`
}

// ProfitLossExpenseSplit is the expense breakdown by category
type ProfitLossExpenseSplit struct {
	Flour     *float64 `json:"flour"`
	Labor     *float64 `json:"labor"`
	Utilities *float64 `json:"utilities"`
	Rent      *float64 `json:"rent"`
	Other     *float64 `json:"other"`
}

// ProfitLossDetail is one row of the per-day detail table
type ProfitLossDetail struct {
	Date    string   `json:"date"`
	Sales   *float64 `json:"sales"`
	Expense *float64 `json:"expense"`
}

// Normalize coalesces every missing numeric field to zero so a partial
// upstream response never produces a nil dereference downstream.
func (r *ProfitLossReport) Normalize() {
	zero := func(p **float64) {
		if *p == nil {
			v := 0.0
			*p = &v
		}
	}
	zero(&r.Summary.TotalSales)
	zero(&r.Summary.ProfitOrLoss)
	zero(&r.Summary.Expense.Total)
	zero(&r.Summary.Expense.Breakdown.Flour)
	zero(&r.Summary.Expense.Breakdown.Labor)
	zero(&r.Summary.Expense.Breakdown.Utilities)
	zero(&r.Summary.Expense.Breakdown.Rent)
	zero(&r.Summary.Expense.Breakdown.Other)
	for i := range r.Details {
		zero(&r.Details[i].Sales)
		zero(&r.Details[i].Expense)
	}
}
