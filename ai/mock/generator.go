package mock

import "context"

// MockTextGenerator is a test double for ai.TextGenerator.
// It allows custom behavior injection via function fields.
type MockTextGenerator struct {
	// GenerateTextFunc is called by GenerateText if set.
	// If nil, a fixed canned response is returned.
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
}

// NewMockTextGenerator creates a mock generator with default canned behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockTextGenerator() *MockTextGenerator {
	return &MockTextGenerator{}
}

// GenerateText returns the injected response, or a fixed cited answer.
func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}

	return "This is a mock answer [1].", nil
}

// CallCount returns the number of times GenerateText was called.
func (m *MockTextGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockTextGenerator) Reset() {
	m.callCount = 0
	m.GenerateTextFunc = nil
}
