package nav

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultFetchDelay postpones the request so it does not compete with the
// first paint of the page that asked for it.
const DefaultFetchDelay = 100 * time.Millisecond

// Client fetches a precomputed navigation list from a running site.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Delay   time.Duration
	Logger  Logger
}

// NewClient returns a Client for baseURL using http.DefaultClient.
func NewClient(baseURL string, logger Logger) *Client {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
		Delay:   DefaultFetchDelay,
		Logger:  logger,
	}
}

type navResponse struct {
	NavItems json.RawMessage `json:"navItems"`
}

// Fetch returns the remote navigation list, or StaticItems if anything
// goes wrong.
func (c *Client) Fetch(ctx context.Context) []Item {
	items, _ := c.FetchWithError(ctx)
	return items
}

// FetchWithError is Fetch that also reports why the fallback was used.
// The returned list is always usable.
func (c *Client) FetchWithError(ctx context.Context) ([]Item, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		c.logger().Warnf("navigation fetch: %v; using static entries", err)
		return StaticItems(), err
	}
	return items, nil
}

func (c *Client) fetch(ctx context.Context) ([]Item, error) {
	if c.Delay > 0 {
		t := time.NewTimer(c.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/navigation", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body navResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	raw := strings.TrimSpace(string(body.NavItems))
	if !strings.HasPrefix(raw, "[") {
		return nil, errors.New("navItems missing or not an array")
	}
	var items []Item
	if err := json.Unmarshal(body.NavItems, &items); err != nil {
		return nil, fmt.Errorf("decode navItems: %w", err)
	}
	return items, nil
}

func (c *Client) logger() Logger {
	if c.Logger == nil {
		return nopLogger{}
	}
	return c.Logger
}
