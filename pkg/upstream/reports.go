package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"bakery_frontdesk/pkg/models"
)

// ProfitLossQuery selects either a named period or an explicit date range.
type ProfitLossQuery struct {
	Period    string // e.g. "weekly", "monthly"; empty when dates are given
	StartDate string
	EndDate   string
}

// GetProfitLoss fetches the profit/loss summary and normalizes partial
// responses so missing figures render as zero.
func (c *Client) GetProfitLoss(ctx context.Context, token string, q ProfitLossQuery) (*models.ProfitLossReport, error) {
	query := url.Values{}
	if q.Period != "" {
		query.Set("period", q.Period)
	} else {
		query.Set("startDate", q.StartDate)
		query.Set("endDate", q.EndDate)
	}

	var report models.ProfitLossReport
	if err := c.do(ctx, http.MethodGet, "/report/profit-loss", token, query, nil, &report); err != nil {
		return nil, err
	}
	report.Normalize()
	return &report, nil
}

// ListReports fetches generated reports.
func (c *Client) ListReports(ctx context.Context, token string) ([]models.Report, error) {
	var reports []models.Report
	if err := c.do(ctx, http.MethodGet, "/reports", token, nil, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GenerateReport asks the upstream to build a report for a date range.
func (c *Client) GenerateReport(ctx context.Context, token, startDate, endDate string) (*models.Report, error) {
	body := map[string]string{"startDate": startDate, "endDate": endDate}
	var report models.Report
	if err := c.do(ctx, http.MethodPost, "/reports", token, nil, body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SendReportToAdmin forwards a generated report to the admin inbox.
func (c *Client) SendReportToAdmin(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/reports/%d/send-to-admin", id), token, nil, nil, nil)
}
