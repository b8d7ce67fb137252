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

type flourPurchaseRequest struct {
	Date         string                  `json:"date" binding:"required"`
	QuantityKg   float64                 `json:"quantityKg" binding:"required,gt=0"`
	TotalPrice   float64                 `json:"totalPrice" binding:"required,gt=0"`
	PaymentType  models.FlourPaymentType `json:"paymentType" binding:"required,oneof=cash credit"`
	SupplierName string                  `json:"supplierName" binding:"required"`
}

// GetFlourPurchases lists flour purchases.
func GetFlourPurchases(c *gin.Context) {
	purchases, err := upstream.Default.ListFlourPurchases(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	purchases = search.Filter(purchases, c.Query("q"), func(p models.FlourPurchase) []string {
		return []string{p.SupplierName, string(p.PaymentType), string(p.Status)}
	})

	c.JSON(http.StatusOK, gin.H{"flourPurchases": purchases})
}

// CreateFlourPurchase records a flour purchase. Cash purchases are paid
// immediately; credit purchases start pending until settled.
func CreateFlourPurchase(c *gin.Context) {
	var req flourPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	created, err := upstream.Default.CreateFlourPurchase(c.Request.Context(), middleware.Token(c), models.FlourPurchase{
		Date:         req.Date,
		QuantityKg:   req.QuantityKg,
		TotalPrice:   req.TotalPrice,
		PaymentType:  req.PaymentType,
		SupplierName: req.SupplierName,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Flour purchase recorded successfully", "flourPurchase": created})
}

// UpdateFlourPurchase updates a flour purchase.
func UpdateFlourPurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req flourPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	updated, err := upstream.Default.UpdateFlourPurchase(c.Request.Context(), middleware.Token(c), id, models.FlourPurchase{
		Date:         req.Date,
		QuantityKg:   req.QuantityKg,
		TotalPrice:   req.TotalPrice,
		PaymentType:  req.PaymentType,
		SupplierName: req.SupplierName,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flour purchase updated successfully", "flourPurchase": updated})
}

// DeleteFlourPurchase deletes a flour purchase.
func DeleteFlourPurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteFlourPurchase(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flour purchase deleted successfully"})
}

// PayFlourPurchase settles a pending credit purchase.
func PayFlourPurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	paid, err := upstream.Default.MarkFlourPurchasePaid(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flour purchase marked as paid", "flourPurchase": paid})
}
