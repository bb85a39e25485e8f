package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single Qdrant API call.
const DefaultTimeout = 10 * time.Second

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK, http.StatusCreated)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)

	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// RetrievePoints fetches points by ID. Missing IDs are simply absent from the result.
func (c *Client) RetrievePoints(ctx context.Context, collectionName string, req RetrievePointsRequest) (*RetrievePointsResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collectionName)

	var result RetrievePointsResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScrollPoints pages through all points in a collection.
func (c *Client) ScrollPoints(ctx context.Context, collectionName string, req ScrollRequest) (*ScrollResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/scroll", c.baseURL, collectionName)

	var result ScrollResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// CountPoints returns the number of points in a collection.
func (c *Client) CountPoints(ctx context.Context, collectionName string) (int, error) {
	url := fmt.Sprintf("%s/collections/%s/points/count", c.baseURL, collectionName)

	var result CountResponse
	if err := c.do(ctx, http.MethodPost, url, map[string]interface{}{}, &result, http.StatusOK); err != nil {
		return 0, err
	}
	return result.Result.Count, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPost, url, DeletePointsRequest{Points: ids}, nil, http.StatusOK)
}

// DeleteByFilter deletes every point matching the filter. An empty filter
// clears the whole collection.
func (c *Client) DeleteByFilter(ctx context.Context, collectionName string, req DeleteByFilterRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collectionName)
	if req.Filter == nil {
		req.Filter = map[string]interface{}{}
	}
	return c.do(ctx, http.MethodPost, url, req, nil, http.StatusOK)
}

// do executes one Qdrant API call, optionally decoding the response into out.
func (c *Client) do(ctx context.Context, method, url string, body interface{}, out interface{}, okStatuses ...int) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	ok := false
	for _, status := range okStatuses {
		if resp.StatusCode == status {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
