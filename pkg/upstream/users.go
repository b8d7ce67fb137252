package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListUsers fetches all users.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, token string, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", token, nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser updates an existing user by id.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), token, nil, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil, nil, nil)
}
