package routes

import (
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/controllers/admin"
	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
)

// RegisterAdminRoutes registers all admin screens.
func RegisterAdminRoutes(router *gin.RouterGroup, searchLimiter *middleware.SearchRateLimiter) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(), middleware.RequireRoles(models.RoleAdmin))
	adminGroup.Use(searchLimiter.Middleware())
	{
		// User management
		adminGroup.GET("/users", admin.GetUsers)
		adminGroup.POST("/users", admin.CreateUser)
		adminGroup.PUT("/users/:id", admin.UpdateUser)
		adminGroup.DELETE("/users/:id", admin.DeleteUser)

		// Branch management
		adminGroup.GET("/branches", admin.GetBranches)
		adminGroup.POST("/branches", admin.AddBranch)
		adminGroup.PUT("/branches/:id", admin.UpdateBranch)
		adminGroup.DELETE("/branches/:id", admin.DeleteBranch)

		// Category management
		adminGroup.GET("/categories", admin.GetCategories)
		adminGroup.POST("/categories", admin.CreateCategory)
		adminGroup.PUT("/categories/:id", admin.UpdateCategory)
		adminGroup.DELETE("/categories/:id", admin.DeleteCategory)

		// Product catalog (all branches)
		adminGroup.GET("/products", admin.GetProducts)
		adminGroup.PUT("/products/:id", admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)

		// Order management
		adminGroup.GET("/orders", admin.GetOrders)
		adminGroup.PATCH("/orders/:id/confirm", admin.ConfirmOrder)
		adminGroup.PATCH("/orders/:id/reject", admin.RejectOrder)

		// Reports inbox and dashboard
		adminGroup.GET("/reports", admin.GetReports)
		adminGroup.GET("/dashboard", admin.GetDashboard)
	}
}
