package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"bakery_frontdesk/pkg/models"
)

// ProductFields carries the form fields of a product create/update. The image
// travels alongside as a multipart file part.
type ProductFields struct {
	Name          string
	CategoryID    int
	Quantity      int
	PurchasePrice float64
	SalePrice     float64
	Status        models.StockStatus
}

func (f ProductFields) formValues() map[string]string {
	return map[string]string{
		"name":          f.Name,
		"categoryId":    strconv.Itoa(f.CategoryID),
		"quantity":      strconv.Itoa(f.Quantity),
		"purchaseprice": strconv.FormatFloat(f.PurchasePrice, 'f', 2, 64),
		"saleprice":     strconv.FormatFloat(f.SalePrice, 'f', 2, 64),
		"status":        string(f.Status),
	}
}

// ListProducts fetches products, optionally scoped to one manager.
func (c *Client) ListProducts(ctx context.Context, token string, managerID int) ([]models.Product, error) {
	var query url.Values
	if managerID > 0 {
		query = url.Values{"managerId": {strconv.Itoa(managerID)}}
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/productlist", token, query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// RegisterProduct creates a product via multipart form, streaming the image.
func (c *Client) RegisterProduct(ctx context.Context, token string, fields ProductFields, imageName string, image io.Reader) (*models.Product, error) {
	var created models.Product
	err := c.doMultipart(ctx, http.MethodPost, "/registerproduct", token, fields.formValues(), "image", imageName, image, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct updates a product by id.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int, fields ProductFields) (*models.Product, error) {
	body := map[string]interface{}{
		"name":          fields.Name,
		"categoryId":    fields.CategoryID,
		"quantity":      fields.Quantity,
		"purchaseprice": fields.PurchasePrice,
		"saleprice":     fields.SalePrice,
		"status":        fields.Status,
	}
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/updateproduct/%d", id), token, nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/deleteproduct/%d", id), token, nil, nil, nil)
}

// SaleRequest is the payload for sell/buy product calls.
type SaleRequest struct {
	ProductID  int     `json:"productId"`
	UserID     int     `json:"userId,omitempty"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	TxRef      string  `json:"tx_ref,omitempty"`
}

// SaleResponse is the upstream result of a sell/buy; Status reflects the
// authoritative post-sale stock level.
type SaleResponse struct {
	Message        string             `json:"message"`
	Product        models.Product     `json:"product"`
	Status         models.StockStatus `json:"status"`
	RemainingStock *int               `json:"remainingStock,omitempty"`
	Order          *models.Order      `json:"order,omitempty"`
}

// SellProduct records a manager-side sale. The backend decrements stock and
// returns the new status.
func (c *Client) SellProduct(ctx context.Context, token string, req SaleRequest) (*SaleResponse, error) {
	var resp SaleResponse
	if err := c.do(ctx, http.MethodPost, "/sellproduct", token, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BuyProduct finalizes a customer purchase. Carries the tx_ref so the
// upstream can treat retried finalizations as the same purchase.
func (c *Client) BuyProduct(ctx context.Context, token string, req SaleRequest) (*SaleResponse, error) {
	var resp SaleResponse
	if err := c.do(ctx, http.MethodPost, "/buyproduct", token, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
