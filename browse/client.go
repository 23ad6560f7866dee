package browse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// Client is a thin HTTP client for the newsletter API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ArticlesPage is one page of the filtered collection.
type ArticlesPage struct {
	Articles   []types.Article `json:"articles"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	State      struct {
		Page    int `json:"page"`
		PerPage int `json:"per_page"`
	} `json:"state"`
}

// SourcesResponse lists the registry and its distinct regions.
type SourcesResponse struct {
	Sources []types.Source `json:"sources"`
	Regions []string       `json:"regions"`
}

// ListArticles fetches one page for the given filter state.
func (c *Client) ListArticles(page int, query, region string) (*ArticlesPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if query != "" {
		params.Set("q", query)
	}
	if region != "" {
		params.Set("regions", region)
	}

	resp, err := c.client.Get(c.baseURL + "/api/articles?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var out ArticlesPage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// GetSources fetches the source registry.
func (c *Client) GetSources() (*SourcesResponse, error) {
	resp, err := c.client.Get(c.baseURL + "/api/sources")
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var out SourcesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Refresh asks the server to rebuild its aggregation cache.
func (c *Client) Refresh() error {
	resp, err := c.client.Post(c.baseURL+"/api/refresh", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("failed to trigger refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
