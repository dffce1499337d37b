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


package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/chunking"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/storage"
)

const (
	// defaultPoolSize bounds concurrent embedding batches.
	defaultPoolSize = 4
	// embedBatchSize is how many chunk texts go into one embedding call.
	embedBatchSize = 16

	// defaultContextChunks is how many chunks feed the RAG context.
	defaultContextChunks = 3
	// defaultMinSimilarity filters weak matches out of the RAG context.
	defaultMinSimilarity = 0.3
)

// Store ingests documents into session-scoped retrieval storage and serves
// similarity search over them.
type Store struct {
	chunker  *chunking.Chunker
	embedder ai.Embedder
	chunks   storage.ChunkRepository
	sessions storage.SessionRepository
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewStore creates a document store over the given chunker, embedder and
// repositories.
func NewStore(chunker *chunking.Chunker, embedder ai.Embedder, chunks storage.ChunkRepository, sessions storage.SessionRepository) (*Store, error) {
	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}

	return &Store{
		chunker:  chunker,
		embedder: embedder,
		chunks:   chunks,
		sessions: sessions,
		pool:     pool,
		logger:   slog.Default().With("component", "docstore"),
	}, nil
}

// DocumentID derives the deterministic id for a document from its filename
// and content. Re-uploading identical content yields the same id.
func DocumentID(filename, text string) string {
	return fmt.Sprintf("%016x", uint64(core.IDFromContent(filename+"\x00"+text)))
}

// StoreDocument chunks, embeds and persists one extracted document, then
// registers it in the session. Returns the session registry entry.
func (s *Store) StoreDocument(ctx context.Context, sessionID, filename, text string, fileSize int64) (*core.SessionDocument, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	documentID := DocumentID(filename, text)
	chunks := s.chunker.Chunk(text, documentID)
	if len(chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	s.logger.Info("storing document",
		"document_id", documentID,
		"filename", filename,
		"chunks", len(chunks))

	start := time.Now()
	vectors, err := s.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}
	s.logger.Info("generated embeddings",
		"count", len(vectors),
		"duration", time.Since(start).Round(time.Millisecond))

	stored := make([]*core.DocumentChunk, len(chunks))
	for i := range chunks {
		chunk := chunks[i]
		chunk.SessionID = sessionID
		chunk.Filename = filename
		chunk.Vector = NormalizeVector(vectors[i])
		stored[i] = &chunk
	}

	if err := s.chunks.AddChunks(ctx, stored...); err != nil {
		return nil, err
	}

	doc := &core.SessionDocument{
		DocumentID:  documentID,
		Filename:    filename,
		UploadTime:  time.Now().UTC(),
		TotalChunks: len(stored),
		FileSize:    fileSize,
	}
	if err := s.sessions.AddDocument(ctx, sessionID, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// embedChunks generates embeddings for all chunk texts, batched and run
// concurrently over the worker pool.
func (s *Store) embedChunks(ctx context.Context, chunks []core.DocumentChunk) ([][]float32, error) {
	batches := make([][]string, 0, len(chunks)/embedBatchSize+1)
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, chunk := range chunks[start:end] {
			texts = append(texts, chunk.Content)
		}
		batches = append(batches, texts)
	}

	results := make([][][]float32, len(batches))
	errs := make([]error, len(batches))
	var wg sync.WaitGroup

	for i, batch := range batches {
		wg.Add(1)
		idx, texts := i, batch
		err := s.pool.Submit(func() {
			defer wg.Done()
			results[idx], errs[idx] = s.embedder.EmbedTexts(ctx, texts)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	vectors := make([][]float32, 0, len(chunks))
	for i := range batches {
		if errs[i] != nil {
			return nil, errs[i]
		}
		vectors = append(vectors, results[i]...)
	}
	if len(vectors) != len(chunks) {
		return nil, ErrEmbeddingMismatch
	}
	return vectors, nil
}

// SearchDocuments finds the chunks most similar to the query within a
// session, highest similarity first.
func (s *Store) SearchDocuments(ctx context.Context, query, sessionID string, maxResults int) ([]*core.ChunkMatch, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	// No similarity floor here; callers apply their own thresholds.
	return s.chunks.FindSimilar(ctx, NormalizeVector(vector), sessionID, -1, maxResults)
}

// RelevantContext builds a numbered context block from the session's chunks
// most relevant to the query, for injection into a generation prompt.
// Returns an empty string when the session has no documents or nothing
// clears the similarity threshold.
func (s *Store) RelevantContext(ctx context.Context, query, sessionID string) (string, error) {
	has, err := s.sessions.HasDocuments(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !has {
		return "", nil
	}

	matches, err := s.SearchDocuments(ctx, query, sessionID, defaultContextChunks)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Score < defaultMinSimilarity {
			continue
		}
		parts = append(parts, fmt.Sprintf("[Source %d] %s", len(parts)+1, match.Chunk.Content))
	}

	if len(parts) == 0 {
		s.logger.Info("no relevant chunks above threshold",
			"session_id", sessionID,
			"threshold", defaultMinSimilarity)
		return "", nil
	}

	return strings.Join(parts, "\n\n"), nil
}

// SessionDocuments lists the documents uploaded into a session.
func (s *Store) SessionDocuments(ctx context.Context, sessionID string) ([]*core.SessionDocument, error) {
	return s.sessions.GetDocuments(ctx, sessionID)
}

// HasDocuments reports whether the session has any documents.
func (s *Store) HasDocuments(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.HasDocuments(ctx, sessionID)
}

// ClearSession removes a session's registry and all chunks of its documents.
// Returns the number of chunks removed.
func (s *Store) ClearSession(ctx context.Context, sessionID string) (int, error) {
	documentIDs, err := s.sessions.ClearSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, documentID := range documentIDs {
		n, err := s.chunks.DeleteDocument(ctx, documentID)
		if err != nil {
			return removed, err
		}
		removed += n
	}

	s.logger.Info("cleared session", "session_id", sessionID, "chunks_removed", removed)
	return removed, nil
}

// Release frees the worker pool. The store must not be used afterwards.
func (s *Store) Release() {
	s.pool.Release()
}
