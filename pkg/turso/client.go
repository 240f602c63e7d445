package turso

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// ClientConfig represents the configuration for the pipeline client.
type ClientConfig struct {
	URL     string // https endpoint of the database
	Token   string // bearer token
	Timeout time.Duration // Default: 30 seconds
}

// Client submits statement batches to a Turso database over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new pipeline client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    config.URL,
		token:      config.Token,
	}
}

// Execute submits the statements as one ordered batch to the pipeline
// endpoint and returns the raw response body. An HTTP-level error aborts
// with the status code and response body; nothing is retried, and partial
// commits are the remote side's concern.
func (c *Client) Execute(stmts []Stmt) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/v2/pipeline", c.baseURL)

	steps := make([]pipelineStep, 0, len(stmts)+1)
	for i := range stmts {
		steps = append(steps, pipelineStep{Type: "execute", Stmt: &stmts[i]})
	}
	steps = append(steps, pipelineStep{Type: "close"})

	body, err := json.Marshal(pipelineRequest{Requests: steps})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pipeline request: %w", err)
	}

	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pipeline request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func intString(v int64) string {
	return strconv.FormatInt(v, 10)
}
