package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/stock"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetDashboard assembles the admin overview: entity counts, stock-level
// breakdown and order states. All figures come from upstream lists; the
// gateway only counts and formats.
func GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	token := middleware.Token(c)

	users, err := upstream.Default.ListUsers(ctx, token)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}
	branches, err := upstream.Default.ListBranches(ctx, token)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}
	products, err := upstream.Default.ListProducts(ctx, token, 0)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}
	orders, err := upstream.Default.ListOrders(ctx, token, 0)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	managers := 0
	customers := 0
	for _, u := range users {
		switch u.Role {
		case models.RoleManager:
			managers++
		case models.RoleCustomer:
			customers++
		}
	}

	stockCounts := map[models.StockStatus]int{}
	for _, p := range products {
		stockCounts[p.Status]++
	}

	orderCounts := map[models.OrderStatus]int{}
	for _, o := range orders {
		orderCounts[o.Status]++
	}

	total := float64(len(products))
	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"users":     len(users),
			"managers":  managers,
			"customers": customers,
			"branches":  len(branches),
			"products":  len(products),
			"orders":    len(orders),
		},
		"stock": gin.H{
			"available":  stockCounts[models.StockAvailable],
			"lowStock":   stockCounts[models.StockLow],
			"outOfStock": stockCounts[models.StockOut],
			"legend": gin.H{
				"available":  stock.FormatPercent(float64(stockCounts[models.StockAvailable]), total),
				"lowStock":   stock.FormatPercent(float64(stockCounts[models.StockLow]), total),
				"outOfStock": stock.FormatPercent(float64(stockCounts[models.StockOut]), total),
			},
		},
		"orders": gin.H{
			"pending":   orderCounts[models.OrderStatusPending],
			"confirmed": orderCounts[models.OrderStatusConfirmed],
			"rejected":  orderCounts[models.OrderStatusRejected],
		},
	})
}
