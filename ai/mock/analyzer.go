package mock

import (
	"context"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
)

// MockIntentAnalyzer is a test double for ai.IntentAnalyzer.
// It allows custom behavior injection via function fields.
type MockIntentAnalyzer struct {
	// AnalyzeIntentFunc is called by AnalyzeIntent if set.
	// If nil, the analyzer returns ai.FallbackIntent for the query.
	AnalyzeIntentFunc func(ctx context.Context, query string) *core.QueryIntent

	callCount int
}

// NewMockIntentAnalyzer creates a mock analyzer with default fallback behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockIntentAnalyzer() *MockIntentAnalyzer {
	return &MockIntentAnalyzer{}
}

// AnalyzeIntent returns the injected intent, or the deterministic fallback.
func (m *MockIntentAnalyzer) AnalyzeIntent(ctx context.Context, query string) *core.QueryIntent {
	m.callCount++

	if m.AnalyzeIntentFunc != nil {
		return m.AnalyzeIntentFunc(ctx, query)
	}

	return ai.FallbackIntent(query)
}

// CallCount returns the number of times AnalyzeIntent was called.
func (m *MockIntentAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockIntentAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeIntentFunc = nil
}
