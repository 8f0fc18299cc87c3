// Package workspace is the client for the remote workspace metadata service,
// the collaborator that owns the flat page descriptor list.
package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/foomo/workspace-sidebar/sidebar"
)

const pagesPath = "/api/workspace/pages"

// Client talks to the workspace metadata service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type pagesResponse struct {
	Pages []sidebar.PageItem `json:"pages"`
}

// GetPages fetches the flat page descriptor list. There is no retry and no
// local recovery; failures are wrapped and returned to the caller.
func (c *Client) GetPages(ctx context.Context) ([]sidebar.PageItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pagesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workspace pages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("workspace pages request failed with status: %d", resp.StatusCode)
	}

	var body pagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode workspace pages: %w", err)
	}

	return body.Pages, nil
}
