package reindex

import (
	"context"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/storage"
)

// ChunkIterator streams all stored chunks in batches of a fixed size.
type ChunkIterator struct {
	repo      storage.ChunkRepository
	batchSize int
}

// NewChunkIterator creates an iterator over every chunk in the repository.
func NewChunkIterator(repo storage.ChunkRepository, batchSize int) *ChunkIterator {
	return &ChunkIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEachBatch calls fn with successive batches of chunks until the
// repository is exhausted or fn returns an error. The final batch may be
// smaller than the configured batch size.
func (it *ChunkIterator) ForEachBatch(ctx context.Context, fn func(chunks []*core.DocumentChunk) error) error {
	if it.batchSize <= 0 {
		return ErrInvalidBatchSize
	}

	batch := make([]*core.DocumentChunk, 0, it.batchSize)
	err := it.repo.ForEachChunk(ctx, func(chunk *core.DocumentChunk) error {
		batch = append(batch, chunk)
		if len(batch) < it.batchSize {
			return nil
		}
		if err := fn(batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	})
	if err != nil {
		return err
	}

	if len(batch) > 0 {
		return fn(batch)
	}
	return nil
}
