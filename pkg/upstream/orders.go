package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bakery_frontdesk/pkg/models"
)

// ListOrders fetches orders, optionally filtered to one user.
func (c *Client) ListOrders(ctx context.Context, token string, userID int) ([]models.Order, error) {
	var query url.Values
	if userID > 0 {
		query = url.Values{"userId": {strconv.Itoa(userID)}}
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder persists a customer order.
func (c *Client) CreateOrder(ctx context.Context, token string, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ConfirmOrder marks an order confirmed.
func (c *Client) ConfirmOrder(ctx context.Context, token string, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/confirm", id), token, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// RejectOrder marks an order rejected.
func (c *Client) RejectOrder(ctx context.Context, token string, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/reject", id), token, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
