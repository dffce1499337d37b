// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/searchit/core"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyClient implements Client against the Tavily search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// TavilyOption is a functional option for configuring a TavilyClient.
type TavilyOption func(*TavilyClient)

// WithBaseURL overrides the Tavily API endpoint. Used by tests.
func WithBaseURL(url string) TavilyOption {
	return func(c *TavilyClient) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) TavilyOption {
	return func(c *TavilyClient) {
		c.httpClient = client
	}
}

// NewTavilyClient creates a search client for the Tavily API.
func NewTavilyClient(apiKey string, opts ...TavilyOption) (*TavilyClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &TavilyClient{
		apiKey:     apiKey,
		baseURL:    defaultTavilyBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "tavily"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// tavilyRequest is the search request body.
type tavilyRequest struct {
	APIKey          string   `json:"api_key"`
	Query           string   `json:"query"`
	SearchDepth     string   `json:"search_depth"`
	IncludeAnswers  bool     `json:"include_answers"`
	IncludeRaw      bool     `json:"include_raw_content"`
	MaxResults      int      `json:"max_results"`
	IncludeDomains  []string `json:"include_domains"`
	ExcludeDomains  []string `json:"exclude_domains"`
}

// tavilyResult is one entry of the search response body.
type tavilyResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

// SearchOnce executes a single Tavily search. Video platforms are excluded
// from results since their pages carry no usable text content.
func (c *TavilyClient) SearchOnce(ctx context.Context, query string, maxResults int) ([]core.EvidenceItem, error) {
	payload := tavilyRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		IncludeAnswers: false,
		IncludeRaw:     true,
		MaxResults:     maxResults,
		IncludeDomains: []string{},
		ExcludeDomains: []string{"youtube.com", "tiktok.com"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrSearchStatus, resp.Status)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	items := make([]core.EvidenceItem, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		items = append(items, core.EvidenceItem{
			Title:          r.Title,
			URL:            r.URL,
			Content:        r.Content,
			RelevanceScore: r.Score,
			PublishedDate:  r.PublishedDate,
		})
	}

	c.logger.Debug("search completed", "query", query, "results", len(items))
	return items, nil
}
