package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/ai/mock"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/synthesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher returns canned evidence or a fixed error.
type stubSearcher struct {
	items []core.EvidenceItem
	err   error

	gotQueries  []string
	gotPerQuery int
}

func (s *stubSearcher) SearchMultiple(ctx context.Context, queries []string, resultsPerQuery int) ([]core.EvidenceItem, error) {
	s.gotQueries = queries
	s.gotPerQuery = resultsPerQuery
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func intentWith(searches []string, complexity int) *core.QueryIntent {
	return &core.QueryIntent{
		Type:              core.QueryTypeFactual,
		SearchIntent:      "test",
		KeyEntities:       []string{"test"},
		SuggestedSearches: searches,
		ComplexityScore:   complexity,
	}
}

func newOrchestrator(t *testing.T, analyzer ai.IntentAnalyzer, searcher EvidenceSearcher, generated string) *Orchestrator {
	t.Helper()
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string) (string, error) {
		return generated, nil
	}
	synth, err := synthesis.NewSynthesizer(gen)
	require.NoError(t, err)
	o, err := NewOrchestrator(analyzer, searcher, synth)
	require.NoError(t, err)
	return o
}

func TestExecuteEndToEnd(t *testing.T) {
	analyzer := mock.NewMockIntentAnalyzer()
	analyzer.AnalyzeIntentFunc = func(ctx context.Context, query string) *core.QueryIntent {
		return intentWith([]string{"ai overview", "ai definition"}, 4)
	}
	searcher := &stubSearcher{
		items: []core.EvidenceItem{
			{Title: "Intro", URL: "https://a.example", Content: strings.Repeat("intro ", 30)},
			{Title: "Uses", URL: "https://b.example", Content: strings.Repeat("uses ", 30)},
		},
	}
	o := newOrchestrator(t, analyzer, searcher, "AI is a field [1]. It has many uses [2].")

	result := o.Execute(context.Background(), "what is AI?")

	assert.Equal(t, core.StatusCompleted, result.Status)
	assert.True(t, result.Completed())
	assert.Equal(t, "what is AI?", result.OriginalQuery)
	require.NotNil(t, result.Intent)
	require.NotNil(t, result.Evidence)
	require.NotNil(t, result.Answer)
	assert.NotEmpty(t, result.Timestamp)

	assert.Equal(t, 2, searcher.gotPerQuery)
	// Query not among suggestions: prepended before the first two.
	assert.Equal(t, []string{"what is AI?", "ai overview", "ai definition"}, searcher.gotQueries)

	assert.Equal(t, 2, result.Answer.CitationCount)
	require.Len(t, result.Answer.CitationsUsed, 2)
	assert.Equal(t, "Intro", result.Answer.CitationsUsed[0].Title)
	assert.Equal(t, "Uses", result.Answer.CitationsUsed[1].Title)
	assert.Equal(t, searcher.gotQueries, result.Evidence.SearchTermsUsed)
}

func TestExecuteSearchFailureKeepsIntent(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("transport fault")}
	o := newOrchestrator(t, mock.NewMockIntentAnalyzer(), searcher, "unused")

	result := o.Execute(context.Background(), "what is AI?")

	assert.True(t, strings.HasPrefix(result.Status, core.StatusErrorPrefix))
	assert.Contains(t, result.Status, "transport fault")
	assert.NotNil(t, result.Intent)
	assert.Nil(t, result.Evidence)
	assert.Nil(t, result.Answer)
	assert.False(t, result.Completed())
}

func TestExecuteRecoversFromPanic(t *testing.T) {
	analyzer := mock.NewMockIntentAnalyzer()
	analyzer.AnalyzeIntentFunc = func(ctx context.Context, query string) *core.QueryIntent {
		panic("programming error")
	}
	o := newOrchestrator(t, analyzer, &stubSearcher{}, "unused")

	result := o.Execute(context.Background(), "q")

	assert.True(t, strings.HasPrefix(result.Status, core.StatusErrorPrefix))
	assert.Contains(t, result.Status, "programming error")
	assert.Nil(t, result.Answer)
}

func TestDeriveSearchTerms(t *testing.T) {
	cases := []struct {
		name   string
		intent *core.QueryIntent
		query  string
		want   []string
	}{
		{
			name:   "query already suggested case-insensitively",
			intent: intentWith([]string{"What Is AI?", "ai basics", "ai history"}, 5),
			query:  "what is ai?",
			want:   []string{"What Is AI?", "ai basics", "ai history"},
		},
		{
			name:   "query prepended and suggestions trimmed",
			intent: intentWith([]string{"a", "b", "c"}, 5),
			query:  "q",
			want:   []string{"q", "a", "b"},
		},
		{
			name:   "simple query capped at two",
			intent: intentWith([]string{"a", "b", "c"}, 2),
			query:  "q",
			want:   []string{"q", "a"},
		},
		{
			name:   "complex query capped at three",
			intent: intentWith([]string{"a", "b", "c"}, 9),
			query:  "q",
			want:   []string{"q", "a", "b"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveSearchTerms(tc.intent, tc.query))
		})
	}
}

func TestMaxSearches(t *testing.T) {
	assert.Equal(t, 2, maxSearches(1))
	assert.Equal(t, 2, maxSearches(3))
	assert.Equal(t, 3, maxSearches(4))
	assert.Equal(t, 3, maxSearches(6))
	assert.Equal(t, 3, maxSearches(10))
}

func TestNewOrchestratorValidation(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	synth, err := synthesis.NewSynthesizer(gen)
	require.NoError(t, err)

	_, err = NewOrchestrator(nil, &stubSearcher{}, synth)
	assert.ErrorIs(t, err, ErrNilAnalyzer)

	_, err = NewOrchestrator(mock.NewMockIntentAnalyzer(), nil, synth)
	assert.ErrorIs(t, err, ErrNilSearcher)

	_, err = NewOrchestrator(mock.NewMockIntentAnalyzer(), &stubSearcher{}, nil)
	assert.ErrorIs(t, err, ErrNilSynthesizer)
}
