package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListFlourPurchases fetches all flour purchases.
func (c *Client) ListFlourPurchases(ctx context.Context, token string) ([]models.FlourPurchase, error) {
	var purchases []models.FlourPurchase
	if err := c.do(ctx, http.MethodGet, "/flour-purchase", token, nil, nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// CreateFlourPurchase creates a flour purchase record.
func (c *Client) CreateFlourPurchase(ctx context.Context, token string, purchase models.FlourPurchase) (*models.FlourPurchase, error) {
	var created models.FlourPurchase
	if err := c.do(ctx, http.MethodPost, "/flour-purchase", token, nil, purchase, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFlourPurchase updates a flour purchase by id.
func (c *Client) UpdateFlourPurchase(ctx context.Context, token string, id int, purchase models.FlourPurchase) (*models.FlourPurchase, error) {
	var updated models.FlourPurchase
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/flour-purchase/%d", id), token, nil, purchase, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFlourPurchase deletes a flour purchase by id.
func (c *Client) DeleteFlourPurchase(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/flour-purchase/%d", id), token, nil, nil, nil)
}

// MarkFlourPurchasePaid settles a credit flour purchase.
func (c *Client) MarkFlourPurchasePaid(ctx context.Context, token string, id int) (*models.FlourPurchase, error) {
	var paid models.FlourPurchase
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/flour-purchase/%d/pay", id), token, nil, nil, &paid); err != nil {
		return nil, err
	}
	return &paid, nil
}
