package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilyClientSearchOnce(t *testing.T) {
	var captured tavilyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(tavilyResponse{
			Results: []tavilyResult{
				{Title: "Go", URL: "https://go.dev", Content: "The Go programming language", Score: 0.91},
			},
		})
	}))
	defer server.Close()

	client, err := NewTavilyClient("key", WithBaseURL(server.URL))
	require.NoError(t, err)

	items, err := client.SearchOnce(context.Background(), "golang", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0].Title)
	assert.Equal(t, 0.91, items[0].RelevanceScore)

	assert.Equal(t, "key", captured.APIKey)
	assert.Equal(t, "golang", captured.Query)
	assert.Equal(t, "advanced", captured.SearchDepth)
	assert.Equal(t, 3, captured.MaxResults)
	assert.True(t, captured.IncludeRaw)
	assert.False(t, captured.IncludeAnswers)
	assert.Equal(t, []string{"youtube.com", "tiktok.com"}, captured.ExcludeDomains)
}

func TestTavilyClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewTavilyClient("key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.SearchOnce(context.Background(), "golang", 3)
	assert.ErrorIs(t, err, ErrSearchStatus)
}

func TestNewTavilyClientRequiresKey(t *testing.T) {
	_, err := NewTavilyClient("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
