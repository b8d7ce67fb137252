package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListSales fetches all sale records.
func (c *Client) ListSales(ctx context.Context, token string) ([]models.SaleRecord, error) {
	var sales []models.SaleRecord
	if err := c.do(ctx, http.MethodGet, "/sales", token, nil, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// CreateSale creates a sale record. TotalAmount is computed upstream.
func (c *Client) CreateSale(ctx context.Context, token string, sale models.SaleRecord) (*models.SaleRecord, error) {
	var created models.SaleRecord
	if err := c.do(ctx, http.MethodPost, "/sales", token, nil, sale, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSale updates a sale record by id.
func (c *Client) UpdateSale(ctx context.Context, token string, id int, sale models.SaleRecord) (*models.SaleRecord, error) {
	var updated models.SaleRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/sales/%d", id), token, nil, sale, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSale deletes a sale record by id.
func (c *Client) DeleteSale(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/sales/%d", id), token, nil, nil, nil)
}
