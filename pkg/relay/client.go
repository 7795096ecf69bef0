// Package relay is the client side of the chat relay: it serializes the
// conversation plus any structured payload, performs one request/response
// exchange, and extracts reply text from whatever shape the relay answered
// with.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured distinguishes a missing endpoint from network failures, so
// callers can show a configuration-specific message.
var ErrNotConfigured = errors.New("relay endpoint is not configured")

// StatusError is returned for non-success relay responses, tagged with the
// status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay returned status %d", e.Code)
}

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Product struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Request is the relay body. Messages always carries the full conversation;
// Message and Products depend on Type.
type Request struct {
	Messages []Turn    `json:"messages"`
	Type     string    `json:"type"`
	Message  string    `json:"message,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Send performs one exchange and returns the extracted reply text. There are
// no retries; every failure is terminal for this call.
func (c *Client) Send(ctx context.Context, request Request) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read relay response: %w", err)
	}

	return ExtractReply(body), nil
}
