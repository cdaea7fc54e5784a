// Package summary talks to the external text-generation endpoint that
// produces short summaries for trending articles. The endpoint is a black
// box; callers must tolerate arbitrary latency and failure.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Vaibhav01-bit/WordWave/metrics"
)

// maxResponseSize caps the response body read from the endpoint.
const maxResponseSize = 1 << 20 // 1MB

// ErrNotConfigured is returned when no endpoint URL has been set.
var ErrNotConfigured = errors.New("summary endpoint is not configured")

// Summarizer produces a short summary for an article. Implementations fail
// independently of the rest of the system.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// Request is the wire format sent to the endpoint.
type Request struct {
	ArticleTitle   string `json:"articleTitle"`
	ArticleContent string `json:"articleContent"`
}

// Response is the wire format returned by the endpoint.
type Response struct {
	ArticleSummary string `json:"articleSummary"`
}

// Client calls an HTTP text-generation endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. An empty URL yields a
// client whose calls fail with ErrNotConfigured.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Summarize posts the article title and content and returns the generated
// summary. An empty summary in the response is an error.
func (c *Client) Summarize(ctx context.Context, title, content string) (string, error) {
	if c.url == "" {
		return "", ErrNotConfigured
	}
	if content == "" {
		return "", errors.New("article content is empty")
	}

	start := time.Now()
	summary, err := c.summarize(ctx, title, content)
	metrics.SummaryRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SummaryRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.SummaryRequestsTotal.WithLabelValues("ok").Inc()
	return summary, nil
}

func (c *Client) summarize(ctx context.Context, title, content string) (string, error) {
	body, err := json.Marshal(Request{ArticleTitle: title, ArticleContent: content})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Summary endpoint returned status %d: %s", resp.StatusCode, data)
		return "", fmt.Errorf("summary endpoint error: %d", resp.StatusCode)
	}

	var result Response
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if result.ArticleSummary == "" {
		return "", errors.New("no summary returned by endpoint")
	}

	return result.ArticleSummary, nil
}
