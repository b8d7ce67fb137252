package customer

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bakery_frontdesk/pkg/config"
	"bakery_frontdesk/pkg/database"
	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/stock"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
	"bakery_frontdesk/pkg/validator"
)

type checkoutRequest struct {
	BranchID  int    `json:"branchId" validate:"required"`
	ProductID int    `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Email     string `json:"email" validate:"required,email"`
}

// Checkout starts the payment saga. The order parameters are pinned in a
// pending-order record keyed by tx_ref before the customer is redirected, so
// the return leg carries nothing but the reference.
func Checkout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide branchId, productId, quantity and email"})
		return
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.Message(errs)})
		return
	}

	product, ok := findBranchProduct(c, req.BranchID, req.ProductID)
	if !ok {
		return
	}

	total, err := stock.ComputeTotal(product.SalePrice, req.Quantity, product.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	txRef := "tx-" + uuid.NewString()
	pending := models.PendingOrder{
		TxRef:     txRef,
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		UnitPrice: product.SalePrice,
		Total:     total,
		State:     models.PendingOrderInitiated,
	}
	if err := database.DB.Create(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record pending order"})
		return
	}

	returnURL := fmt.Sprintf("%s/api/customer/payments/return?tx_ref=%s",
		config.AppConfig.PublicBaseURL, url.QueryEscape(txRef))

	payment, err := upstream.Default.InitiatePayment(c.Request.Context(), upstream.PaymentInitRequest{
		Amount:    total,
		Email:     req.Email,
		Names:     user.Name,
		TxRef:     txRef,
		ReturnURL: returnURL,
	})
	if err != nil {
		if dbErr := database.DB.Model(&pending).Updates(map[string]interface{}{
			"state":     models.PendingOrderFailed,
			"fail_note": "payment initiation failed",
		}).Error; dbErr != nil {
			log.Printf("⚠️ Failed to mark pending order %s as failed: %v", pending.TxRef, dbErr)
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	// The checkout URL must reach the browser unmodified.
	c.JSON(http.StatusOK, gin.H{
		"checkout_url": payment.CheckoutURL,
		"tx_ref":       txRef,
		"totalPrice":   total,
	})
}

// PaymentReturn finalizes the saga when the provider redirects back. The call
// is idempotent by tx_ref: a replay of an already-finalized reference returns
// the stored result without touching the upstream again.
func PaymentReturn(c *gin.Context) {
	user := middleware.CurrentUser(c)

	txRef := c.Query("tx_ref")
	if txRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing tx_ref"})
		return
	}

	var pending models.PendingOrder
	if err := database.DB.Where("tx_ref = ?", txRef).First(&pending).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No pending order found for this reference"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load pending order"})
		return
	}

	if pending.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "This order belongs to another user"})
		return
	}

	if pending.State == models.PendingOrderFinalized {
		c.JSON(http.StatusOK, gin.H{
			"message": "Order already finalized",
			"orderId": pending.OrderID,
			"tx_ref":  pending.TxRef,
		})
		return
	}

	// INITIATED and FAILED both proceed; a failed finalize may be retried
	// manually by reloading the return URL.
	resp, err := upstream.Default.BuyProduct(c.Request.Context(), middleware.Token(c), upstream.SaleRequest{
		ProductID:  pending.ProductID,
		UserID:     pending.UserID,
		Quantity:   pending.Quantity,
		TotalPrice: pending.Total,
		TxRef:      pending.TxRef,
	})
	if err != nil {
		failPending(&pending, err)
		if apiErr, ok := upstream.AsAPIError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":    apiErr.Error(),
				"code":       apiErr.Code,
				"remaining":  apiErr.Remaining,
				"redirectTo": "/customer",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to finalize order", "redirectTo": "/customer"})
		return
	}

	updates := map[string]interface{}{
		"state":     models.PendingOrderFinalized,
		"fail_note": "",
	}
	if resp.Order != nil {
		updates["order_id"] = resp.Order.ID
	}
	if err := database.DB.Model(&pending).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Order placed but failed to record finalization"})
		return
	}

	payload := gin.H{
		"message": "Order placed successfully",
		"order":   resp.Order,
		"tx_ref":  pending.TxRef,
	}
	if stock.NeedsRestockWarning(resp.Status) {
		payload["warning"] = "Stock is running low: " + string(resp.Status)
	}

	c.JSON(http.StatusOK, payload)
}

// PlaceOrder places a pay-on-pickup order without the payment saga. The order
// stays Pending until an admin confirms or rejects it.
func PlaceOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		BranchID  int `json:"branchId" binding:"required"`
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity" binding:"required,gte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide branchId, productId and quantity"})
		return
	}

	product, ok := findBranchProduct(c, req.BranchID, req.ProductID)
	if !ok {
		return
	}

	total, err := stock.ComputeTotal(product.SalePrice, req.Quantity, product.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := upstream.Default.CreateOrder(c.Request.Context(), middleware.Token(c), models.Order{
		ProductID:  product.ID,
		UserID:     user.ID,
		Quantity:   req.Quantity,
		TotalPrice: total,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders lists the logged-in customer's orders.
func GetMyOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orders, err := upstream.Default.ListOrders(c.Request.Context(), middleware.Token(c), user.ID)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// findBranchProduct loads the live product from the branch's manager catalog.
// Responds and returns false on failure.
func findBranchProduct(c *gin.Context, branchID, productID int) (*models.Product, bool) {
	manager, ok := resolveBranchManager(c, branchID)
	if !ok {
		return nil, false
	}

	products, err := upstream.Default.ListProducts(c.Request.Context(), middleware.Token(c), manager.ID)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return nil, false
	}

	for i := range products {
		if products[i].ID == productID {
			return &products[i], true
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in this branch"})
	return nil, false
}

func failPending(pending *models.PendingOrder, cause error) {
	if dbErr := database.DB.Model(pending).Updates(map[string]interface{}{
		"state":     models.PendingOrderFailed,
		"fail_note": cause.Error(),
	}).Error; dbErr != nil {
		log.Printf("⚠️ Failed to mark pending order %s as failed: %v", pending.TxRef, dbErr)
	}
}
