package manager

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/stock"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetProducts lists the manager's own products.
func GetProducts(c *gin.Context) {
	user := middleware.CurrentUser(c)

	products, err := upstream.Default.ListProducts(c.Request.Context(), middleware.Token(c), user.ID)
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

// RegisterProduct creates a product from a multipart form, streaming the
// image through to the upstream without buffering it on disk.
func RegisterProduct(c *gin.Context) {
	fields, ok := parseProductForm(c)
	if !ok {
		return
	}

	imageName := ""
	var created *models.Product
	var err error

	file, header, ferr := c.Request.FormFile("image")
	if ferr == nil {
		defer file.Close()
		imageName = header.Filename
		created, err = upstream.Default.RegisterProduct(c.Request.Context(), middleware.Token(c), fields, imageName, file)
	} else {
		created, err = upstream.Default.RegisterProduct(c.Request.Context(), middleware.Token(c), fields, "", nil)
	}
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product registered successfully", "product": created})
}

// UpdateProduct updates a product, rederiving the stock status from the
// edited quantity before the update goes upstream.
func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Name          string  `json:"name" binding:"required"`
		CategoryID    int     `json:"categoryId" binding:"required"`
		Quantity      *int    `json:"quantity" binding:"required"`
		PurchasePrice float64 `json:"purchaseprice" binding:"required"`
		SalePrice     float64 `json:"saleprice" binding:"required"`
	}
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

// SellProduct records a counter sale of a product. The total is computed
// here from the live sale price; the upstream decrements stock and returns
// the authoritative new status, which triggers a restock warning when low.
func SellProduct(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide productId and a positive quantity"})
		return
	}

	products, err := upstream.Default.ListProducts(c.Request.Context(), middleware.Token(c), user.ID)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	var product *models.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	total, err := stock.ComputeTotal(product.SalePrice, req.Quantity, product.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := upstream.Default.SellProduct(c.Request.Context(), middleware.Token(c), upstream.SaleRequest{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		TotalPrice: total,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	payload := gin.H{
		"message":    "Product sold successfully",
		"product":    resp.Product,
		"status":     resp.Status,
		"totalPrice": total,
	}
	if stock.NeedsRestockWarning(resp.Status) {
		payload["warning"] = "Stock is running low: " + string(resp.Status)
	}

	c.JSON(http.StatusOK, payload)
}

// parseProductForm reads the multipart product fields and derives the stock
// status from the submitted quantity.
func parseProductForm(c *gin.Context) (upstream.ProductFields, bool) {
	name := c.PostForm("name")
	categoryID, err1 := strconv.Atoi(c.PostForm("categoryId"))
	quantity, err2 := strconv.Atoi(c.PostForm("quantity"))
	purchasePrice, err3 := strconv.ParseFloat(c.PostForm("purchaseprice"), 64)
	salePrice, err4 := strconv.ParseFloat(c.PostForm("saleprice"), 64)

	if name == "" || err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return upstream.ProductFields{}, false
	}
	if quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot be negative"})
		return upstream.ProductFields{}, false
	}

	return upstream.ProductFields{
		Name:          name,
		CategoryID:    categoryID,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Status:        stock.DeriveStockStatus(quantity),
	}, true
}
