// Package statusapi implements the client for the external order status
// authority. The authority is consulted after a local status change commits:
// a health probe gates the call, and the authority's settled status wins over
// the local one when they disagree.
package statusapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ordertrack/internal/core/domain/model/order"
)

// HealthTimeout bounds the health probe. A slow authority counts as down.
const HealthTimeout = 5 * time.Second

// ReconcileTimeout bounds one reconciliation call. A stalled authority must
// not hold the update request open past this.
const ReconcileTimeout = 30 * time.Second

// responseBodyLimit caps how much of a failure response body gets logged.
const responseBodyLimit = 4096

// Client talks to the external order status API over HTTP.
// Implements ports.StatusReconciler.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	reconcileTimeout time.Duration
	logger           *slog.Logger
}

// NewClient creates a status API client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:          baseURL,
		httpClient:       httpClient,
		reconcileTimeout: ReconcileTimeout,
		logger:           logger.With("component", "status_api_client"),
	}
}

// Healthy probes the authority's health endpoint. Any 2xx response within
// HealthTimeout counts as healthy; timeouts, transport errors and non-2xx
// statuses count as down.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

type syncRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type syncResponse struct {
	Status string `json:"status"`
}

// Reconcile reports the order's new status to the authority and returns the
// status the authority settled on. The whole call runs under ReconcileTimeout
// even when the caller's context carries no deadline. Every failure path logs
// the order identity together with the HTTP status code and response body
// before returning.
func (c *Client) Reconcile(ctx context.Context, aggregate *order.Order) (order.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, c.reconcileTimeout)
	defer cancel()

	payload, err := json.Marshal(syncRequest{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/orders/status", bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(ctx, aggregate, 0, "")
		return "", fmt.Errorf("status sync request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		c.logFailure(ctx, aggregate, resp.StatusCode, "")
		return "", fmt.Errorf("reading status sync response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logFailure(ctx, aggregate, resp.StatusCode, string(body))
		return "", fmt.Errorf("status sync returned HTTP %d", resp.StatusCode)
	}

	var parsed syncResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		c.logFailure(ctx, aggregate, resp.StatusCode, string(body))
		return "", fmt.Errorf("decoding status sync response: %w", err)
	}

	settled, err := order.ParseStatus(parsed.Status)
	if err != nil {
		c.logFailure(ctx, aggregate, resp.StatusCode, string(body))
		return "", fmt.Errorf("status sync returned unknown status %q", parsed.Status)
	}

	return settled, nil
}

// logFailure records one diagnostic line for a failed sync attempt.
func (c *Client) logFailure(ctx context.Context, aggregate *order.Order, statusCode int, body string) {
	c.logger.ErrorContext(ctx, "Order status sync failed",
		"order_id", aggregate.ID().String(),
		"order_number", aggregate.OrderNumber(),
		"status_code", statusCode,
		"response_body", body)
}
