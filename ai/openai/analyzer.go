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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentAnalyzer implements ai.IntentAnalyzer using OpenAI-compatible chat APIs.
type IntentAnalyzer struct {
	client llms.Model
	logger *slog.Logger
}

// intentPayload is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type intentPayload struct {
	QueryType         string   `json:"query_type"`
	SearchIntent      string   `json:"search_intent"`
	KeyEntities       []string `json:"key_entities"`
	SuggestedSearches []string `json:"suggested_searches"`
	ComplexityScore   int      `json:"complexity_score"`
	RequiresRealTime  bool     `json:"requires_real_time"`
}

// newIntentAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentAnalyzer(config *ai.Config) (*IntentAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AnalyzerHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.AnalyzerModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentAnalyzer{
		client: client,
		logger: slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewIntentAnalyzer creates a new intent analyzer using the provided configuration.
//
// Returns ai.IntentAnalyzer interface to enforce abstraction.
func NewIntentAnalyzer(config *ai.Config) (ai.IntentAnalyzer, error) {
	return newIntentAnalyzer(config)
}

// AnalyzeIntent interprets a query into a structured intent using an LLM.
// It never fails: any transport or parse error degrades to ai.FallbackIntent,
// so callers always receive a valid intent.
func (a *IntentAnalyzer) AnalyzeIntent(ctx context.Context, query string) *core.QueryIntent {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(analysisSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnalysisPrompt(query)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.1),
			llms.WithMaxTokens(2000),
			llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.FallbackIntent(query)
		}

		if len(response.Choices) < 1 {
			a.logger.Warn("no choices returned from model")
			return ai.FallbackIntent(query)
		}

		intent, err := parseIntentResponse(response.Choices[0].Content)
		if err != nil {
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"err", err)
			continue
		}

		return intent
	}

	a.logger.Error("failed to parse analyzer response after retries, using fallback")
	return ai.FallbackIntent(query)
}

// parseIntentResponse converts raw LLM output into a validated QueryIntent.
// It tolerates markdown code fences and common JSON formatting mistakes.
func parseIntentResponse(responseText string) (*core.QueryIntent, error) {
	// Strip markdown code fences if present
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	// Try to repair common JSON issues
	responseText = repairJSON(responseText)

	var payload intentPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		return nil, err
	}

	intent := &core.QueryIntent{
		Type:              core.QueryType(payload.QueryType),
		SearchIntent:      payload.SearchIntent,
		KeyEntities:       payload.KeyEntities,
		SuggestedSearches: payload.SuggestedSearches,
		ComplexityScore:   payload.ComplexityScore,
		RequiresRealTime:  payload.RequiresRealTime,
	}

	if err := core.ValidateQueryIntent(intent); err != nil {
		return nil, err
	}
	return intent, nil
}
