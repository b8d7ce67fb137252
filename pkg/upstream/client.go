package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed HTTP client for the bakery REST backend and the external
// payment gateway. Every call takes a context.Context so an abandoned browser
// request cancels its upstream call instead of leaking it.
type Client struct {
	apiBase     string
	paymentBase string
	http        *http.Client
}

// Default is the process-wide client, set once from main via Init.
var Default *Client

// Init sets up the process-wide client.
func Init(apiBase, paymentBase string, timeout time.Duration) {
	Default = New(apiBase, paymentBase, timeout)
}

// New creates a Client for the given upstream and payment base URLs.
func New(apiBase, paymentBase string, timeout time.Duration) *Client {
	return &Client{
		apiBase:     strings.TrimRight(apiBase, "/"),
		paymentBase: strings.TrimRight(paymentBase, "/"),
		http:        &http.Client{Timeout: timeout},
	}
}

// do issues a JSON request against the upstream API. A non-nil token is sent
// as a bearer token; body is JSON-encoded when present; out, when non-nil,
// receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	return c.send(ctx, c.apiBase, method, path, token, query, body, out)
}

// doPayment issues a JSON request against the payment gateway.
func (c *Client) doPayment(ctx context.Context, method, path string, body, out interface{}) error {
	return c.send(ctx, c.paymentBase, method, path, "", nil, body, out)
}

func (c *Client) send(ctx context.Context, base, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return DecodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

// doMultipart streams a multipart form (fields plus an optional file part) to
// the upstream API. Used for product registration/update with image upload.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, fileField, fileName string, file io.Reader, out interface{}) error {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		var werr error
		defer func() { pw.CloseWithError(werr) }()
		for key, value := range fields {
			if werr = writer.WriteField(key, value); werr != nil {
				return
			}
		}
		if file != nil {
			part, err := writer.CreateFormFile(fileField, fileName)
			if err != nil {
				werr = err
				return
			}
			if _, werr = io.Copy(part, file); werr != nil {
				return
			}
		}
		werr = writer.Close()
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, pr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable(err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return DecodeError(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response from %s %s: %w", method, path, err)
		}
	}
	return nil
}
