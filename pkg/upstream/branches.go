package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListBranches fetches all branches, including assigned managers.
func (c *Client) ListBranches(ctx context.Context, token string) ([]models.Branch, error) {
	var branches []models.Branch
	if err := c.do(ctx, http.MethodGet, "/branches", token, nil, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// AddBranch creates a new branch.
func (c *Client) AddBranch(ctx context.Context, token string, branch models.Branch) (*models.Branch, error) {
	var created models.Branch
	if err := c.do(ctx, http.MethodPost, "/addbranch", token, nil, branch, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBranch updates a branch by id.
func (c *Client) UpdateBranch(ctx context.Context, token string, id int, branch models.Branch) (*models.Branch, error) {
	var updated models.Branch
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/branches/%d", id), token, nil, branch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBranch deletes a branch by id.
func (c *Client) DeleteBranch(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/branches/%d", id), token, nil, nil, nil)
}
