package openai

import (
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIntentJSON = `{
	"query_type": "comparison",
	"search_intent": "User wants to compare Go and Rust",
	"key_entities": ["Go", "Rust"],
	"suggested_searches": ["go vs rust", "go rust comparison", "go rust performance"],
	"complexity_score": 6,
	"requires_real_time": false
}`

func TestParseIntentResponse(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		intent, err := parseIntentResponse(validIntentJSON)
		require.NoError(t, err)
		assert.Equal(t, core.QueryTypeComparison, intent.Type)
		assert.Equal(t, []string{"Go", "Rust"}, intent.KeyEntities)
		assert.Len(t, intent.SuggestedSearches, 3)
		assert.Equal(t, 6, intent.ComplexityScore)
		assert.False(t, intent.RequiresRealTime)
	})

	t.Run("markdown fenced json", func(t *testing.T) {
		intent, err := parseIntentResponse("```json\n" + validIntentJSON + "\n```")
		require.NoError(t, err)
		assert.Equal(t, core.QueryTypeComparison, intent.Type)
	})

	t.Run("repairs missing opening quote on key", func(t *testing.T) {
		broken := `{query_type": "factual", "search_intent": "x", "key_entities": [], "suggested_searches": ["a"], "complexity_score": 3, "requires_real_time": true}`
		intent, err := parseIntentResponse(broken)
		require.NoError(t, err)
		assert.Equal(t, core.QueryTypeFactual, intent.Type)
		assert.True(t, intent.RequiresRealTime)
	})

	t.Run("unknown query type rejected", func(t *testing.T) {
		bad := `{"query_type": "philosophical", "search_intent": "x", "key_entities": [], "suggested_searches": ["a"], "complexity_score": 3, "requires_real_time": false}`
		_, err := parseIntentResponse(bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidQueryType)
	})

	t.Run("empty suggested searches rejected", func(t *testing.T) {
		bad := `{"query_type": "factual", "search_intent": "x", "key_entities": [], "suggested_searches": [], "complexity_score": 3, "requires_real_time": false}`
		_, err := parseIntentResponse(bad)
		assert.ErrorIs(t, err, core.ErrNoSuggestedSearches)
	})

	t.Run("complexity out of range rejected", func(t *testing.T) {
		bad := `{"query_type": "factual", "search_intent": "x", "key_entities": [], "suggested_searches": ["a"], "complexity_score": 11, "requires_real_time": false}`
		_, err := parseIntentResponse(bad)
		assert.ErrorIs(t, err, core.ErrInvalidComplexityScore)
	})

	t.Run("garbage is an error not a panic", func(t *testing.T) {
		_, err := parseIntentResponse("I could not analyze that query, sorry!")
		assert.Error(t, err)
	})
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt("what is AI?")
	assert.Contains(t, prompt, `Query: "what is AI?"`)
	assert.Contains(t, prompt, "factual|comparison|how_to|current_events|opinion|calculation")
}
