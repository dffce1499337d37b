package docstore

import "errors"

var (
	// ErrEmptyDocument indicates the document text produced no chunks.
	ErrEmptyDocument = errors.New("document produced no chunks")

	// ErrMissingSession indicates an operation was called without a session id.
	ErrMissingSession = errors.New("session id is required")

	// ErrEmbeddingMismatch indicates the embedder returned the wrong number of vectors.
	ErrEmbeddingMismatch = errors.New("embedding count does not match chunk count")
)
