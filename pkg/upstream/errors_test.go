package upstream

import (
	"net/http"
	"strings"
	"testing"
)

func TestDecodeErrorStructuredCode(t *testing.T) {
	body := []byte(`{"code":"INSUFFICIENT_STOCK","message":"Insufficient stock","remaining":3}`)
	apiErr := DecodeError(http.StatusBadRequest, body)

	if apiErr.Code != CodeInsufficientStock {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeInsufficientStock)
	}
	if apiErr.Remaining == nil || *apiErr.Remaining != 3 {
		t.Errorf("Remaining = %v, want 3", apiErr.Remaining)
	}
	if !strings.Contains(apiErr.Error(), "3") {
		t.Errorf("Error() = %q, want it to mention the remaining stock", apiErr.Error())
	}
}

// legacy message-only bodies must classify to the same code as structured ones
func TestDecodeErrorLegacyInsufficientStock(t *testing.T) {
	body := []byte(`{"message":"Insufficient stock. Only 3 left","remainingStock":3}`)
	apiErr := DecodeError(http.StatusBadRequest, body)

	if apiErr.Code != CodeInsufficientStock {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeInsufficientStock)
	}
	if apiErr.Remaining == nil || *apiErr.Remaining != 3 {
		t.Errorf("Remaining = %v, want 3", apiErr.Remaining)
	}
}

func TestDecodeErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   ErrorCode
	}{
		{"not found message", http.StatusBadRequest, `{"message":"No record found"}`, CodeNotFound},
		{"not found status", http.StatusNotFound, `{}`, CodeNotFound},
		{"incorrect password", http.StatusUnauthorized, `{"message":"Incorrect password"}`, CodeInvalidCredentials},
		{"plain unauthorized", http.StatusUnauthorized, `{"message":"Access denied"}`, CodeUnauthorized},
		{"bad request", http.StatusBadRequest, `{"message":"Quantity must be positive"}`, CodeBadRequest},
		{"garbage body", http.StatusInternalServerError, `not json`, CodeUnknown},
	}
	for _, tc := range cases {
		apiErr := DecodeError(tc.status, []byte(tc.body))
		if apiErr.Code != tc.want {
			t.Errorf("%s: Code = %q, want %q", tc.name, apiErr.Code, tc.want)
		}
	}
}

func TestDecodeErrorSurfacesMessageVerbatim(t *testing.T) {
	apiErr := DecodeError(http.StatusConflict, []byte(`{"message":"Manager already assigned to a branch"}`))
	if apiErr.Message != "Manager already assigned to a branch" {
		t.Errorf("Message = %q, want verbatim upstream message", apiErr.Message)
	}
}
