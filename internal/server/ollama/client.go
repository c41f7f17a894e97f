// Package ollama is a thin client for a locally hosted Ollama inference
// service. Responses are relayed verbatim; the upstream is treated as an
// opaque collaborator with no retries or circuit breaking.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client for the inference service at baseURL. Every
// call is bounded by timeout; generation against large models is slow, so
// the caller should configure this generously.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// generateRequest is the upstream payload. Streaming is always disabled so
// the response arrives as a single JSON document.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ListModels fetches the upstream model listing and returns the body as-is.
func (c *Client) ListModels(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}

	return c.do(req)
}

// Generate asks the given model to complete prompt and returns the upstream
// JSON response verbatim.
func (c *Client) Generate(ctx context.Context, model string, prompt string) (json.RawMessage, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling inference service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inference service returned %s: %s", resp.Status, string(body))
	}

	return json.RawMessage(body), nil
}
