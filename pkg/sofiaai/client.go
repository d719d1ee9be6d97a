package sofiaai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultEndpointPath is appended to the configured base URL.
	DefaultEndpointPath = "/sofia-ai"

	defaultTimeout = 30 * time.Second
)

// Client is the HTTP client for the external AI provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new AI provider client. An empty baseURL or apiKey
// is a valid, handled state: Configured() reports false and callers are
// expected to use their local fallback path.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the base URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.baseURL = url
}

// Configured reports whether the provider endpoint and credential are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// Generate sends a generation request to the AI provider.
func (c *Client) Generate(ctx context.Context, req *Request) (*Response, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("sofiaai: provider is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("sofiaai: failed to marshal request: %w", err)
	}

	url := c.baseURL + DefaultEndpointPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("sofiaai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sofiaai: failed to call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sofiaai: provider error %d: %s", resp.StatusCode, string(raw))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sofiaai: failed to decode response: %w", err)
	}

	return &result, nil
}
