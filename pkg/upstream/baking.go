package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListBaking fetches all baking records.
func (c *Client) ListBaking(ctx context.Context, token string) ([]models.BakingRecord, error) {
	var records []models.BakingRecord
	if err := c.do(ctx, http.MethodGet, "/baking", token, nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateBaking creates a baking record.
func (c *Client) CreateBaking(ctx context.Context, token string, record models.BakingRecord) (*models.BakingRecord, error) {
	var created models.BakingRecord
	if err := c.do(ctx, http.MethodPost, "/baking", token, nil, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBaking updates a baking record by id.
func (c *Client) UpdateBaking(ctx context.Context, token string, id int, record models.BakingRecord) (*models.BakingRecord, error) {
	var updated models.BakingRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/baking/%d", id), token, nil, record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBaking deletes a baking record by id.
func (c *Client) DeleteBaking(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/baking/%d", id), token, nil, nil, nil)
}
