package docstore

import (
	"context"
	"strings"
	"testing"

	"github.com/poiesic/searchit/ai/mock"
	"github.com/poiesic/searchit/chunking"
	"github.com/poiesic/searchit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func newTestStore(t *testing.T) (*Store, *mock.MockEmbedder) {
	t.Helper()

	chunker, err := chunking.NewChunker(
		chunking.WithTokenCounter(wordCounter{}),
		chunking.WithMaxChunkSize(50),
		chunking.WithMinChunkSize(2),
		chunking.WithOverlapSize(0),
	)
	require.NoError(t, err)

	chunkRepo, sessionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chunkRepo.Close()
		sessionRepo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	store, err := NewStore(chunker, embedder, chunkRepo, sessionRepo)
	require.NoError(t, err)
	t.Cleanup(store.Release)

	return store, embedder
}

const sampleText = `The quick brown fox jumps over the lazy dog near the river bank today.

A second paragraph talks about something entirely different and much less interesting overall.`

func TestStoreDocument(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	doc, err := store.StoreDocument(ctx, "sess1", "notes.pdf", sampleText, 2048)
	require.NoError(t, err)

	assert.Equal(t, DocumentID("notes.pdf", sampleText), doc.DocumentID)
	assert.Equal(t, "notes.pdf", doc.Filename)
	assert.Positive(t, doc.TotalChunks)
	assert.Equal(t, int64(2048), doc.FileSize)

	has, err := store.HasDocuments(ctx, "sess1")
	require.NoError(t, err)
	assert.True(t, has)

	docs, err := store.SessionDocuments(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.DocumentID, docs[0].DocumentID)
}

func TestStoreDocumentValidation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.StoreDocument(ctx, "", "a.pdf", sampleText, 1)
	assert.ErrorIs(t, err, ErrMissingSession)

	_, err = store.StoreDocument(ctx, "sess1", "a.pdf", "   ", 1)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestDocumentIDDeterministic(t *testing.T) {
	assert.Equal(t, DocumentID("a.pdf", "text"), DocumentID("a.pdf", "text"))
	assert.NotEqual(t, DocumentID("a.pdf", "text"), DocumentID("b.pdf", "text"))
	assert.Len(t, DocumentID("a.pdf", "text"), 16)
}

func TestSearchDocumentsFindsStoredChunk(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.StoreDocument(ctx, "sess1", "notes.pdf", sampleText, 1)
	require.NoError(t, err)

	// The mock embedder is deterministic, so querying with the exact chunk
	// text yields similarity 1 against that chunk.
	matches, err := store.SearchDocuments(ctx, "The quick brown fox jumps over the lazy dog near the river bank today.\n\nA second paragraph talks about something entirely different and much less interesting overall.", "sess1", 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.InDelta(t, 1.0, float64(matches[0].Score), 1e-3)
}

func TestRelevantContext(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("empty session yields empty context", func(t *testing.T) {
		text, err := store.RelevantContext(ctx, "anything", "empty-sess")
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	_, err := store.StoreDocument(ctx, "sess1", "notes.pdf", sampleText, 1)
	require.NoError(t, err)

	t.Run("matching chunk is numbered", func(t *testing.T) {
		// The mock embedder is deterministic: querying with the stored
		// chunk's exact text clears the similarity threshold.
		text, err := store.RelevantContext(ctx, sampleText, "sess1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "[Source 1] "), "got %q", text)
		assert.Contains(t, text, "quick brown fox")
	})
}

func TestClearSessionRemovesChunks(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	doc, err := store.StoreDocument(ctx, "sess1", "notes.pdf", sampleText, 1)
	require.NoError(t, err)

	removed, err := store.ClearSession(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, doc.TotalChunks, removed)

	has, err := store.HasDocuments(ctx, "sess1")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNormalizeVector(t *testing.T) {
	normalized := NormalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(normalized[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(normalized[1]), 1e-6)

	zero := NormalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}
