// Package ingest fetches raw interaction records from the remote webhook
// and keeps the dashboard snapshot current.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
)

// PayloadKind classifies the shape of a webhook response body.
type PayloadKind string

const (
	// PayloadArray is a bare JSON array of records.
	PayloadArray PayloadKind = "array"
	// PayloadWrapped is an object carrying the records under "data".
	PayloadWrapped PayloadKind = "wrapped"
	// PayloadUnrecognized is anything else and maps to the empty list.
	PayloadUnrecognized PayloadKind = "unrecognized"
)

// Config holds webhook client configuration.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client fetches raw interaction records from the webhook. A fetch is a
// single attempt with no retry; the poller reschedules it.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a webhook client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     log,
	}
}

// Fetch issues one POST with an empty JSON body and decodes the response.
// Transport and HTTP errors are returned for logging; an unrecognized but
// well-formed body is not an error, it is simply no data.
func (c *Client) Fetch(ctx context.Context) ([]model.RawInteraction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read webhook response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	records, kind := Classify(body)
	if kind == PayloadUnrecognized {
		c.logger.Warn("unrecognized webhook payload, treating as empty",
			zap.Int("body_bytes", len(body)))
	}
	return records, nil
}

// Classify decodes a webhook body into exactly one payload shape: a bare
// array, an object wrapping the array under "data", or unrecognized.
// Unrecognized deterministically yields the empty list.
func Classify(body []byte) ([]model.RawInteraction, PayloadKind) {
	var records []model.RawInteraction
	if err := json.Unmarshal(body, &records); err == nil {
		return records, PayloadArray
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, &records); err == nil {
			return records, PayloadWrapped
		}
	}
	return nil, PayloadUnrecognized
}
