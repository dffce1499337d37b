package reindex

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrInvalidBatchSize is returned when batchSize is <= 0
	ErrInvalidBatchSize = errors.New("batchSize must be greater than 0")
)
