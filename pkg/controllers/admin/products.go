package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/stock"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

type productUpdateRequest struct {
	Name          string  `json:"name" binding:"required"`
	CategoryID    int     `json:"categoryId" binding:"required"`
	Quantity      *int    `json:"quantity" binding:"required"`
	PurchasePrice float64 `json:"purchaseprice" binding:"required"`
	SalePrice     float64 `json:"saleprice" binding:"required"`
}

// GetProducts lists every product across branches.
func GetProducts(c *gin.Context) {
	products, err := upstream.Default.ListProducts(c.Request.Context(), middleware.Token(c), 0)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	products = search.Filter(products, c.Query("q"), func(p models.Product) []string {
		fields := []string{p.Name, string(p.Status)}
		if p.Category != nil {
			fields = append(fields, p.Category.CategoryName)
		}
		return fields
	})

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// UpdateProduct updates a product. The stock status is rederived from the
// edited quantity before the update goes upstream.
func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot be negative"})
		return
	}

	updated, err := upstream.Default.UpdateProduct(c.Request.Context(), middleware.Token(c), id, upstream.ProductFields{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Quantity:      *req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Status:        stock.DeriveStockStatus(*req.Quantity),
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
}

// DeleteProduct deletes a product.
func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteProduct(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
