package manager

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

type expenseRequest struct {
	Title    string                 `json:"title" binding:"required"`
	Amount   float64                `json:"amount" binding:"required,gt=0"`
	Category models.ExpenseCategory `json:"category" binding:"required,oneof=flour labor utilities rent other"`
	Note     string                 `json:"note"`
	Date     string                 `json:"date" binding:"required"`
}

// GetExpenses lists expense records.
func GetExpenses(c *gin.Context) {
	expenses, err := upstream.Default.ListExpenses(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	expenses = search.Filter(expenses, c.Query("q"), func(e models.ExpenseRecord) []string {
		return []string{e.Title, string(e.Category), e.Note}
	})

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense creates an expense record.
func CreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	created, err := upstream.Default.CreateExpense(c.Request.Context(), middleware.Token(c), models.ExpenseRecord{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Expense created successfully", "expense": created})
}

// UpdateExpense updates an expense record.
func UpdateExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	updated, err := upstream.Default.UpdateExpense(c.Request.Context(), middleware.Token(c), id, models.ExpenseRecord{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully", "expense": updated})
}

// DeleteExpense deletes an expense record.
func DeleteExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteExpense(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
