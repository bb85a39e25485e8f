package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single reporting-service call.
const DefaultTimeout = 20 * time.Second

// IAnalytics is the client interface for the internal reporting service
// that executes data-retrieval actions.
type IAnalytics interface {
	ExecuteAction(ctx context.Context, action string, params map[string]any) (json.RawMessage, error)
}

// Client calls the internal reporting service over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ IAnalytics = (*Client)(nil)

// NewClient creates a new reporting service client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// ExecuteAction runs one named action with the extracted parameters and
// returns its raw JSON payload.
func (c *Client) ExecuteAction(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/internal/actions/%s", c.baseURL, action)

	body, err := json.Marshal(ExecuteRequest{Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-Internal-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call reporting service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reporting service error: %d", resp.StatusCode)
	}

	var parsed ExecuteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("reporting service rejected action %s: %s", action, parsed.Error)
	}

	return parsed.Data, nil
}
