package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", token, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a product category.
func (c *Client) CreateCategory(ctx context.Context, token string, category models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", token, nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory updates a category by id.
func (c *Client) UpdateCategory(ctx context.Context, token string, id int, category models.Category) (*models.Category, error) {
	var updated models.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), token, nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory deletes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), token, nil, nil, nil)
}
