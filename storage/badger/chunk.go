package badger

import (
	"context"
	"errors"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	return &ChunkRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *ChunkRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ChunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, sessionID string, minSimilarity float32, limit int) ([]*core.ChunkMatch, error) {
	return r.backend.FindSimilarChunks(ctx, vector, sessionID, minSimilarity, limit)
}

// AddChunks stores one or more chunks together with their document index
// entries.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.DocumentChunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateDocumentChunk(chunk); err != nil {
				return err
			}

			key := makeChunkKey(chunk.ChunkID)
			if err := tx.Set(key, storage.MarshalDocumentChunk(chunk)); err != nil {
				return err
			}

			idxKey := makeChunkDocumentKey(chunk.DocumentID, chunk.ChunkID)
			if err := tx.Set(idxKey, []byte(chunk.ChunkID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// UpdateChunks replaces existing chunks.
func (r *ChunkRepository) UpdateChunks(ctx context.Context, chunks ...*core.DocumentChunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(chunk.ChunkID)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Set(key, storage.MarshalDocumentChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves a single chunk by its ChunkID.
func (r *ChunkRepository) GetChunk(ctx context.Context, chunkID string) (*core.DocumentChunk, error) {
	var chunk *core.DocumentChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(chunkID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalDocumentChunk(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// GetChunksByDocument retrieves all chunks of one document ordered by chunk
// index.
func (r *ChunkRepository) GetChunksByDocument(ctx context.Context, documentID string) ([]*core.DocumentChunk, error) {
	var chunks []*core.DocumentChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialChunkDocumentKey(documentID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunkID string
			err := iter.Item().Value(func(val []byte) error {
				chunkID = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			item, err := tx.Get(makeChunkKey(chunkID))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue // dangling index entry
				}
				return err
			}

			var chunk *core.DocumentChunk
			err = item.Value(func(val []byte) error {
				chunk, err = storage.UnmarshalDocumentChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(chunks, func(a, b *core.DocumentChunk) int {
		return a.ChunkIndex - b.ChunkIndex
	})
	return chunks, nil
}

// DeleteDocument removes all chunks of a document and their index entries.
func (r *ChunkRepository) DeleteDocument(ctx context.Context, documentID string) (int, error) {
	removed := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialChunkDocumentKey(documentID)
		iter := tx.NewIterator(opts)

		// Collect first: deleting while iterating invalidates the iterator.
		var indexKeys [][]byte
		var chunkIDs []string
		for iter.Rewind(); iter.Valid(); iter.Next() {
			indexKeys = append(indexKeys, iter.Item().KeyCopy(nil))
			err := iter.Item().Value(func(val []byte) error {
				chunkIDs = append(chunkIDs, string(val))
				return nil
			})
			if err != nil {
				iter.Close()
				return err
			}
		}
		iter.Close()

		for i, chunkID := range chunkIDs {
			if err := tx.Delete(makeChunkKey(chunkID)); err != nil {
				return err
			}
			if err := tx.Delete(indexKeys[i]); err != nil {
				return err
			}
			removed++
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ForEachChunk iterates over every stored chunk.
func (r *ChunkRepository) ForEachChunk(ctx context.Context, fn func(chunk *core.DocumentChunk) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkKeyPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunk *core.DocumentChunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalDocumentChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if err := fn(chunk); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// CountChunks returns the number of stored chunks.
func (r *ChunkRepository) CountChunks(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkKeyPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}
