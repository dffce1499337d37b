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


package mock

import "github.com/poiesic/searchit/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock analyzer, generator and embedder instances.
type MockProvider struct {
	analyzer  *MockIntentAnalyzer
	generator *MockTextGenerator
	embedder  *MockEmbedder
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockAnalyzer()/GetMockGenerator()/GetMockEmbedder() to access
// concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		analyzer:  NewMockIntentAnalyzer(),
		generator: NewMockTextGenerator(),
		embedder:  NewMockEmbedder(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(analyzer *MockIntentAnalyzer, generator *MockTextGenerator, embedder *MockEmbedder) ai.AIProvider {
	return &MockProvider{
		analyzer:  analyzer,
		generator: generator,
		embedder:  embedder,
	}
}

// IntentAnalyzer returns the mock intent analyzer.
func (p *MockProvider) IntentAnalyzer() ai.IntentAnalyzer {
	return p.analyzer
}

// TextGenerator returns the mock text generator.
func (p *MockProvider) TextGenerator() ai.TextGenerator {
	return p.generator
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockAnalyzer returns the underlying mock analyzer for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockAnalyzer() *MockIntentAnalyzer {
	return p.analyzer
}

// GetMockGenerator returns the underlying mock generator for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockGenerator() *MockTextGenerator {
	return p.generator
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}
