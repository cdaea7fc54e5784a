package summary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSummarizeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Big News", req.ArticleTitle)
		assert.Equal(t, "the full content", req.ArticleContent)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{ArticleSummary: "a concise summary"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", 5*time.Second)
	summary, err := client.Summarize(context.Background(), "Big News", "the full content")
	require.NoError(t, err)
	assert.Equal(t, "a concise summary", summary)
}

func TestClientSummarizeEmptyResultIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{ArticleSummary: ""})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.Summarize(context.Background(), "T", "c")
	assert.Error(t, err)
}

func TestClientSummarizeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.Summarize(context.Background(), "T", "c")
	assert.Error(t, err)
}

func TestClientSummarizeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.Summarize(context.Background(), "T", "c")
	assert.Error(t, err)
}

func TestClientNotConfigured(t *testing.T) {
	client := NewClient("", "", 0)
	_, err := client.Summarize(context.Background(), "T", "c")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClientEmptyContent(t *testing.T) {
	client := NewClient("http://example.invalid", "", 0)
	_, err := client.Summarize(context.Background(), "T", "")
	assert.Error(t, err)
}

func TestClientContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can observe the client disconnect;
		// the request context is not cancelled until the body is consumed.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Summarize(ctx, "T", "c")
	assert.Error(t, err)
}
