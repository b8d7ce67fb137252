package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/upstream"
)

// StandardResponse represents a standard API response structure
type StandardResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      string      `json:"code,omitempty"`
	Remaining *int        `json:"remaining,omitempty"`
}

// UpstreamErrorResponse maps an upstream failure onto an HTTP response,
// keeping the structured code and remaining-stock hint when present. The
// upstream message is surfaced verbatim; only transport failures collapse to
// a generic message.
func UpstreamErrorResponse(c *gin.Context, err error) {
	apiErr, ok := upstream.AsAPIError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, StandardResponse{
			Success: false,
			Error:   "An unexpected error occurred",
		})
		return
	}

	status := http.StatusBadGateway
	switch apiErr.Code {
	case upstream.CodeNotFound:
		status = http.StatusNotFound
	case upstream.CodeInvalidCredentials, upstream.CodeUnauthorized:
		status = http.StatusUnauthorized
	case upstream.CodeInsufficientStock, upstream.CodeBadRequest:
		status = http.StatusBadRequest
	case upstream.CodeUnavailable:
		status = http.StatusBadGateway
	default:
		if apiErr.StatusCode >= http.StatusBadRequest {
			status = apiErr.StatusCode
		}
	}

	c.JSON(status, StandardResponse{
		Success:   false,
		Error:     apiErr.Message,
		Code:      string(apiErr.Code),
		Remaining: apiErr.Remaining,
	})
}
