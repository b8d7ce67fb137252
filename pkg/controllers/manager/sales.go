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

type saleRequest struct {
	BreadID       int                  `json:"breadId" binding:"required"`
	QuantitySold  int                  `json:"quantitySold" binding:"required,gt=0"`
	SellingPrice  float64              `json:"sellingPrice" binding:"required,gt=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash transfer credit"`
	Date          string               `json:"date" binding:"required"`
}

// GetSales lists sale records.
func GetSales(c *gin.Context) {
	sales, err := upstream.Default.ListSales(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	sales = search.Filter(sales, c.Query("q"), func(s models.SaleRecord) []string {
		fields := []string{string(s.PaymentMethod), s.Date}
		if s.Bread != nil {
			fields = append(fields, s.Bread.Name)
		}
		return fields
	})

	c.JSON(http.StatusOK, gin.H{"sales": sales})
}

// CreateSale records a bread sale. The total amount is computed upstream.
func CreateSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	created, err := upstream.Default.CreateSale(c.Request.Context(), middleware.Token(c), models.SaleRecord{
		BreadID:       req.BreadID,
		QuantitySold:  req.QuantitySold,
		SellingPrice:  req.SellingPrice,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sale recorded successfully", "sale": created})
}

// UpdateSale updates a sale record.
func UpdateSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	updated, err := upstream.Default.UpdateSale(c.Request.Context(), middleware.Token(c), id, models.SaleRecord{
		BreadID:       req.BreadID,
		QuantitySold:  req.QuantitySold,
		SellingPrice:  req.SellingPrice,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale updated successfully", "sale": updated})
}

// DeleteSale deletes a sale record.
func DeleteSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteSale(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
