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


// Package ai provides abstractions for the AI capabilities used in searchit.
//
// This package defines interfaces for query intent analysis, text generation
// and text embeddings. It follows the dependency inversion principle, allowing
// the pipeline and business logic to depend on abstractions rather than
// concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - IntentAnalyzer: Interprets a query into a structured QueryIntent
//   - TextGenerator: Produces synthesized text from a prompt
//   - Embedder: Generates vector embeddings from text
//   - AIProvider: Aggregates AI services for convenient initialization
//
// IntentAnalyzer is non-failing by contract: implementations degrade to
// FallbackIntent instead of returning errors, so orchestration code can treat
// intent analysis as always succeeding. TextGenerator may fail, and its
// callers own the fallback policy.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewIntentAnalyzer, etc.)
// return INTERFACE types to enforce abstraction and prevent accidental
// coupling to concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockIntentAnalyzer, mock.NewMockTextGenerator)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields (CallCount, XxxFunc, Reset).
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	intent := provider.IntentAnalyzer().AnalyzeIntent(ctx, "what is AI?")
//	text, err := provider.TextGenerator().GenerateText(ctx, prompt)
package ai
