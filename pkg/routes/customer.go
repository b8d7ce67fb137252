package routes

import (
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/controllers/customer"
	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
)

// RegisterCustomerRoutes registers the storefront and order/payment flow.
func RegisterCustomerRoutes(router *gin.RouterGroup, searchLimiter *middleware.SearchRateLimiter) {
	customerGroup := router.Group("/customer")
	customerGroup.Use(middleware.RequireAuth(), middleware.RequireRoles(models.RoleCustomer))
	customerGroup.Use(searchLimiter.Middleware())
	{
		// Storefront
		customerGroup.GET("/branches", customer.GetBranches)
		customerGroup.GET("/branches/:id/products", customer.GetBranchProducts)

		// Orders
		customerGroup.GET("/orders", customer.GetMyOrders)
		customerGroup.POST("/orders", customer.PlaceOrder)

		// Payment saga
		customerGroup.POST("/checkout", customer.Checkout)
		customerGroup.GET("/payments/return", customer.PaymentReturn)
	}
}
