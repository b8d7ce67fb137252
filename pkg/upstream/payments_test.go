package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// the checkout URL must be handed back exactly as the provider sent it
func TestInitiatePaymentChecksOutURLUnmodified(t *testing.T) {
	const checkoutURL = "https://checkout.example.com/pay/abc123?session=9&lang=en"

	var gotReq PaymentInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payments/initiate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(PaymentInitResponse{CheckoutURL: checkoutURL})
	}))
	defer srv.Close()

	client := New("http://unused.invalid", srv.URL, 5*time.Second)
	resp, err := client.InitiatePayment(context.Background(), PaymentInitRequest{
		Amount:    150,
		Email:     "customer@example.com",
		Names:     "Abebe Kebede",
		TxRef:     "tx-42",
		ReturnURL: "http://localhost:5500/api/customer/payments/return?tx_ref=tx-42",
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if resp.CheckoutURL != checkoutURL {
		t.Errorf("CheckoutURL = %q, want it unmodified", resp.CheckoutURL)
	}
	if gotReq.TxRef != "tx-42" {
		t.Errorf("provider did not receive tx_ref, got %+v", gotReq)
	}
	if gotReq.Amount != 150 {
		t.Errorf("Amount = %v, want 150", gotReq.Amount)
	}
}

func TestInitiatePaymentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"Provider unavailable"}`))
	}))
	defer srv.Close()

	client := New("http://unused.invalid", srv.URL, 5*time.Second)
	_, err := client.InitiatePayment(context.Background(), PaymentInitRequest{Amount: 10, TxRef: "tx-1"})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "Provider unavailable" {
		t.Errorf("Message = %q, want verbatim provider message", apiErr.Message)
	}
}
