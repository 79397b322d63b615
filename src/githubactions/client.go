// Package githubactions provides a read-only GitHub Actions API client for
// listing workflows and completed workflow runs of a public repository.
package githubactions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nightwatch/src/provider"
)

// Client is a GitHub Actions API client. Requests are unauthenticated;
// the monitored repository is public.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new GitHub Actions client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: "https://api.github.com",
	}
}

// ListWorkflows fetches the workflow definitions of a repository
func (c *Client) ListWorkflows(ctx context.Context, owner, repo string) (*WorkflowsResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/workflows", c.baseURL, owner, repo)

	var workflows WorkflowsResponse
	if err := c.getJSON(ctx, url, &workflows); err != nil {
		return nil, err
	}

	return &workflows, nil
}

// ListCompletedRuns fetches the most recent completed runs of a workflow.
// The API returns runs newest first.
func (c *Client) ListCompletedRuns(ctx context.Context, owner, repo string, workflowID int64, perPage int) (*WorkflowRunsResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%d/runs?status=completed&per_page=%d",
		c.baseURL, owner, repo, workflowID, perPage)

	var runs WorkflowRunsResponse
	if err := c.getJSON(ctx, url, &runs); err != nil {
		return nil, err
	}

	return &runs, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: GitHub API error %d: %s", provider.ErrRateLimited, resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitHub API error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
