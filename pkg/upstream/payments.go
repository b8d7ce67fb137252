package upstream

import (
	"context"
	"net/http"
)

// PaymentInitRequest is the payment-session payload sent to the gateway.
type PaymentInitRequest struct {
	Amount    float64 `json:"amount"`
	Email     string  `json:"email"`
	Names     string  `json:"names"`
	TxRef     string  `json:"tx_ref"`
	ReturnURL string  `json:"return_url"`
}

// PaymentInitResponse carries the hosted checkout page URL. The URL must be
// handed to the browser unmodified.
type PaymentInitResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// InitiatePayment opens a payment session with the external provider.
func (c *Client) InitiatePayment(ctx context.Context, req PaymentInitRequest) (*PaymentInitResponse, error) {
	var resp PaymentInitResponse
	if err := c.doPayment(ctx, http.MethodPost, "/api/payments/initiate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
