package ai

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// IntentAnalyzer interprets a natural-language query into a structured intent.
// Implementations must be thread-safe for concurrent use.
type IntentAnalyzer interface {
	// AnalyzeIntent analyzes the query and returns its structured intent.
	// It never fails: implementations must degrade to FallbackIntent on any
	// provider or parse error, so the returned intent is never nil and always
	// has at least one suggested search.
	AnalyzeIntent(ctx context.Context, query string) *core.QueryIntent
}

// TextGenerator produces free-form text from a prompt.
// Implementations must be thread-safe for concurrent use.
type TextGenerator interface {
	// GenerateText generates a completion for the given prompt.
	// Returns an error if the generation fails; callers are expected to
	// degrade to their own fallback content.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages IntentAnalyzer, TextGenerator and
// Embedder instances, ensuring they share configuration appropriately.
type AIProvider interface {
	// IntentAnalyzer returns the query intent analysis service.
	IntentAnalyzer() IntentAnalyzer

	// TextGenerator returns the text generation service.
	TextGenerator() TextGenerator

	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
