package routes

import (
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/controllers/manager"
	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
)

// RegisterManagerRoutes registers all branch-manager screens.
func RegisterManagerRoutes(router *gin.RouterGroup, searchLimiter *middleware.SearchRateLimiter) {
	managerGroup := router.Group("/manager")
	managerGroup.Use(middleware.RequireAuth(), middleware.RequireRoles(models.RoleManager))
	managerGroup.Use(searchLimiter.Middleware())
	{
		// Bread catalog
		managerGroup.GET("/bread", manager.GetBread)
		managerGroup.POST("/bread", manager.CreateBread)
		managerGroup.PUT("/bread/:id", manager.UpdateBread)
		managerGroup.DELETE("/bread/:id", manager.DeleteBread)

		// Baking log
		managerGroup.GET("/baking", manager.GetBaking)
		managerGroup.POST("/baking", manager.CreateBaking)
		managerGroup.PUT("/baking/:id", manager.UpdateBaking)
		managerGroup.DELETE("/baking/:id", manager.DeleteBaking)

		// Bread sales
		managerGroup.GET("/sales", manager.GetSales)
		managerGroup.POST("/sales", manager.CreateSale)
		managerGroup.PUT("/sales/:id", manager.UpdateSale)
		managerGroup.DELETE("/sales/:id", manager.DeleteSale)

		// Expenses
		managerGroup.GET("/expenses", manager.GetExpenses)
		managerGroup.POST("/expenses", manager.CreateExpense)
		managerGroup.PUT("/expenses/:id", manager.UpdateExpense)
		managerGroup.DELETE("/expenses/:id", manager.DeleteExpense)

		// Flour purchases
		managerGroup.GET("/flour-purchases", manager.GetFlourPurchases)
		managerGroup.POST("/flour-purchases", manager.CreateFlourPurchase)
		managerGroup.PUT("/flour-purchases/:id", manager.UpdateFlourPurchase)
		managerGroup.DELETE("/flour-purchases/:id", manager.DeleteFlourPurchase)
		managerGroup.PUT("/flour-purchases/:id/pay", manager.PayFlourPurchase)

		// Branch product catalog and counter sales
		managerGroup.GET("/products", manager.GetProducts)
		managerGroup.POST("/products", manager.RegisterProduct)
		managerGroup.PUT("/products/:id", manager.UpdateProduct)
		managerGroup.DELETE("/products/:id", manager.DeleteProduct)
		managerGroup.POST("/products/sell", manager.SellProduct)

		// Profit/loss and report management
		managerGroup.GET("/reports/profit-loss", manager.GetProfitLoss)
		managerGroup.GET("/reports", manager.GetReports)
		managerGroup.POST("/reports", manager.GenerateReport)
		managerGroup.POST("/reports/:id/send-to-admin", manager.SendReportToAdmin)
	}
}
