package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListBread fetches all bread types.
func (c *Client) ListBread(ctx context.Context, token string) ([]models.Bread, error) {
	var breads []models.Bread
	if err := c.do(ctx, http.MethodGet, "/bread", token, nil, nil, &breads); err != nil {
		return nil, err
	}
	return breads, nil
}

// CreateBread creates a bread type.
func (c *Client) CreateBread(ctx context.Context, token string, bread models.Bread) (*models.Bread, error) {
	var created models.Bread
	if err := c.do(ctx, http.MethodPost, "/bread", token, nil, bread, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBread updates a bread type by id.
func (c *Client) UpdateBread(ctx context.Context, token string, id int, bread models.Bread) (*models.Bread, error) {
	var updated models.Bread
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/bread/%d", id), token, nil, bread, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBread deletes a bread type by id.
func (c *Client) DeleteBread(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bread/%d", id), token, nil, nil, nil)
}
