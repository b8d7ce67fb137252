package upstream

import (
	"context"
	"net/http"

	"bakery_frontdesk/pkg/models"
)

// LoginRequest is the credential payload forwarded to upstream /login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse is the upstream /login success shape.
type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// Login authenticates against the upstream API and returns the user plus
// bearer token on success.
func (c *Client) Login(ctx context.Context, phone, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", "", nil, LoginRequest{Phone: phone, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
