package manager

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/stock"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetProfitLoss fetches the profit/loss summary for a named period or an
// explicit date range. Missing figures arrive normalized to zero; the
// breakdown legend percentages are formatted here.
func GetProfitLoss(c *gin.Context) {
	q := upstream.ProfitLossQuery{
		Period:    c.Query("period"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if q.Period == "" && (q.StartDate == "" || q.EndDate == "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide a period or both startDate and endDate"})
		return
	}

	report, err := upstream.Default.GetProfitLoss(c.Request.Context(), middleware.Token(c), q)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	total := *report.Summary.Expense.Total
	breakdown := report.Summary.Expense.Breakdown
	legend := gin.H{
		"flour":     stock.FormatPercent(*breakdown.Flour, total),
		"labor":     stock.FormatPercent(*breakdown.Labor, total),
		"utilities": stock.FormatPercent(*breakdown.Utilities, total),
		"rent":      stock.FormatPercent(*breakdown.Rent, total),
		"other":     stock.FormatPercent(*breakdown.Other, total),
	}

	c.JSON(http.StatusOK, gin.H{"report": report, "expenseLegend": legend})
}

// GetReports lists generated reports.
func GetReports(c *gin.Context) {
	reports, err := upstream.Default.ListReports(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GenerateReport asks the upstream to build a report for a date range.
func GenerateReport(c *gin.Context) {
	var req struct {
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide startDate and endDate"})
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid startDate: Must be a valid date"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid endDate: Must be a valid date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must not be before startDate"})
		return
	}

	report, err := upstream.Default.GenerateReport(c.Request.Context(), middleware.Token(c), req.StartDate, req.EndDate)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report generated successfully", "report": report})
}

// SendReportToAdmin forwards a report to the admin inbox.
func SendReportToAdmin(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.SendReportToAdmin(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent to admin"})
}
