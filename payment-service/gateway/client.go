// Package gateway is the HTTP client for the remote payment gateway. Each
// call is independent: no retries, no caching, one bounded timeout.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
)

const (
	DefaultBaseURL = "http://localhost:8001"
	DefaultTimeout = 30 * time.Second
)

// TransportError wraps every way a gateway call can fail: connection errors,
// timeouts, non-2xx responses and undecodable bodies. Callers treat all of
// them the same, so one type covers the lot.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type SubmitResponse struct {
	ConfirmationID string       `json:"confirmation_id"`
	Status         model.Status `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}

type StatusEntry struct {
	ConfirmationID string       `json:"confirmation_id"`
	Status         model.Status `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitPayment forwards a payment to the gateway and returns its assigned
// confirmation id and initial status.
func (c *Client) SubmitPayment(ctx context.Context, req model.SubmitRequest) (*SubmitResponse, error) {
	payload, _ := json.Marshal(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submit", bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "submit", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Op: "submit", StatusCode: resp.StatusCode}
	}

	var out SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &TransportError{Op: "submit", Err: err}
	}
	return &out, nil
}

// AllStatuses fetches the gateway's view of every payment it has accepted.
func (c *Client) AllStatuses(ctx context.Context) ([]StatusEntry, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, &TransportError{Op: "status", Err: err}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "status", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Op: "status", StatusCode: resp.StatusCode}
	}

	var entries []StatusEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &TransportError{Op: "status", Err: err}
	}
	return entries, nil
}
