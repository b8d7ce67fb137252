package upstream

import (
	"context"
	"fmt"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// ListExpenses fetches all expense records.
func (c *Client) ListExpenses(ctx context.Context, token string) ([]models.ExpenseRecord, error) {
	var expenses []models.ExpenseRecord
	if err := c.do(ctx, http.MethodGet, "/expense", token, nil, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateExpense creates an expense record.
func (c *Client) CreateExpense(ctx context.Context, token string, expense models.ExpenseRecord) (*models.ExpenseRecord, error) {
	var created models.ExpenseRecord
	if err := c.do(ctx, http.MethodPost, "/expense", token, nil, expense, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExpense updates an expense record by id.
func (c *Client) UpdateExpense(ctx context.Context, token string, id int, expense models.ExpenseRecord) (*models.ExpenseRecord, error) {
	var updated models.ExpenseRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/expense/%d", id), token, nil, expense, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteExpense deletes an expense record by id.
func (c *Client) DeleteExpense(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expense/%d", id), token, nil, nil, nil)
}
