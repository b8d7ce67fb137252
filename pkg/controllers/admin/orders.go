package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetOrders lists all customer orders.
func GetOrders(c *gin.Context) {
	orders, err := upstream.Default.ListOrders(c.Request.Context(), middleware.Token(c), 0)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	orders = search.Filter(orders, c.Query("q"), func(o models.Order) []string {
		fields := []string{string(o.Status)}
		if o.Product != nil {
			fields = append(fields, o.Product.Name)
		}
		if o.User != nil {
			fields = append(fields, o.User.Name)
		}
		return fields
	})

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ConfirmOrder confirms a pending order.
func ConfirmOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := upstream.Default.ConfirmOrder(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order confirmed", "order": order})
}

// RejectOrder rejects a pending order.
func RejectOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := upstream.Default.RejectOrder(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order rejected", "order": order})
}
