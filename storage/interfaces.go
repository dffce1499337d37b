package storage

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ChunkRepository provides operations for managing document chunks.
type ChunkRepository interface {
	Repository

	// AddChunks stores one or more chunks. A chunk with an already-stored
	// ChunkID is overwritten.
	AddChunks(ctx context.Context, chunks ...*core.DocumentChunk) error

	// UpdateChunks replaces existing chunks.
	// Returns ErrNotFound if any chunk doesn't exist.
	UpdateChunks(ctx context.Context, chunks ...*core.DocumentChunk) error

	// GetChunk retrieves a single chunk by its ChunkID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, chunkID string) (*core.DocumentChunk, error)

	// GetChunksByDocument retrieves all chunks of one document, ordered by
	// chunk index.
	GetChunksByDocument(ctx context.Context, documentID string) ([]*core.DocumentChunk, error)

	// DeleteDocument removes all chunks of a document.
	// Returns the number of chunks removed.
	DeleteDocument(ctx context.Context, documentID string) (int, error)

	// FindSimilar finds chunks similar to the given vector within a session.
	// Returns chunks with similarity >= minSimilarity, up to limit results
	// (negative means unlimited), ordered by similarity score (highest
	// first). An empty sessionID searches across all sessions.
	FindSimilar(ctx context.Context, vector []float32, sessionID string, minSimilarity float32, limit int) ([]*core.ChunkMatch, error)

	// ForEachChunk iterates over every stored chunk. Iteration stops when
	// fn returns an error, which is passed through.
	ForEachChunk(ctx context.Context, fn func(chunk *core.DocumentChunk) error) error

	// CountChunks returns the number of stored chunks.
	CountChunks(ctx context.Context) (int, error)
}

// SessionRepository tracks which documents belong to which session.
type SessionRepository interface {
	Repository

	// AddDocument records a document upload in a session.
	AddDocument(ctx context.Context, sessionID string, doc *core.SessionDocument) error

	// GetDocuments lists the documents of a session in upload order.
	GetDocuments(ctx context.Context, sessionID string) ([]*core.SessionDocument, error)

	// HasDocuments reports whether the session has any documents.
	HasDocuments(ctx context.Context, sessionID string) (bool, error)

	// ClearSession removes the session's document registry and returns the
	// IDs of the documents that were registered.
	ClearSession(ctx context.Context, sessionID string) ([]string, error)
}
