package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (storage.ChunkRepository, storage.SessionRepository) {
	t.Helper()
	chunkRepo, sessionRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chunkRepo.Close()
		sessionRepo.Close()
		backend.Close()
	})
	return chunkRepo, sessionRepo
}

func testChunk(docID string, index int, vector []float32) *core.DocumentChunk {
	return &core.DocumentChunk{
		ChunkID:    docID + "_chunk_" + string(rune('0'+index)),
		DocumentID: docID,
		Content:    "chunk content for testing",
		PageNumber: 1,
		ChunkIndex: index,
		TokenCount: 5,
		SessionID:  "sess1",
		Vector:     vector,
	}
}

func TestChunkRepositoryAddGet(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	chunk := testChunk("doc1", 0, []float32{1, 0, 0})
	require.NoError(t, repo.AddChunks(ctx, chunk))

	got, err := repo.GetChunk(ctx, chunk.ChunkID)
	require.NoError(t, err)
	assert.Equal(t, chunk.Content, got.Content)
	assert.Equal(t, chunk.Vector, got.Vector)
	assert.Equal(t, "sess1", got.SessionID)
}

func TestChunkRepositoryGetMissing(t *testing.T) {
	repo, _ := newTestRepos(t)
	_, err := repo.GetChunk(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChunkRepositoryAddValidates(t *testing.T) {
	repo, _ := newTestRepos(t)
	err := repo.AddChunks(context.Background(), &core.DocumentChunk{ChunkID: "x"})
	assert.ErrorIs(t, err, core.ErrInvalidChunk)
}

func TestChunkRepositoryByDocumentOrdered(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	// Insert out of order; reads come back sorted by chunk index.
	require.NoError(t, repo.AddChunks(ctx,
		testChunk("doc1", 2, nil),
		testChunk("doc1", 0, nil),
		testChunk("doc1", 1, nil),
		testChunk("doc2", 0, nil),
	))

	chunks, err := repo.GetChunksByDocument(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.Equal(t, "doc1", chunk.DocumentID)
	}
}

func TestChunkRepositoryDeleteDocument(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.AddChunks(ctx,
		testChunk("doc1", 0, nil),
		testChunk("doc1", 1, nil),
		testChunk("doc2", 0, nil),
	))

	removed, err := repo.DeleteDocument(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	count, err := repo.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = repo.GetChunk(ctx, "doc1_chunk_0")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChunkRepositoryFindSimilar(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	near := testChunk("doc1", 0, []float32{1, 0, 0})
	far := testChunk("doc1", 1, []float32{0, 1, 0})
	other := testChunk("doc2", 0, []float32{0.9, 0.1, 0})
	other.SessionID = "sess2"
	require.NoError(t, repo.AddChunks(ctx, near, far, other))

	t.Run("session filter and threshold", func(t *testing.T) {
		matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, "sess1", 0.5, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, near.ChunkID, matches[0].Chunk.ChunkID)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
	})

	t.Run("all sessions when empty", func(t *testing.T) {
		matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, "", 0.5, 10)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		// Highest similarity first.
		assert.Equal(t, near.ChunkID, matches[0].Chunk.ChunkID)
		assert.Equal(t, other.ChunkID, matches[1].Chunk.ChunkID)
	})

	t.Run("limit applies", func(t *testing.T) {
		matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, "", 0.0, 1)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("negative limit returns every match", func(t *testing.T) {
		matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, "", -1, -1)
		require.NoError(t, err)
		assert.Len(t, matches, 3)
	})
}

func TestChunkRepositoryForEachAndUpdate(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	chunk := testChunk("doc1", 0, nil)
	require.NoError(t, repo.AddChunks(ctx, chunk))

	chunk.Vector = []float32{0.5, 0.5}
	require.NoError(t, repo.UpdateChunks(ctx, chunk))

	seen := 0
	err := repo.ForEachChunk(ctx, func(c *core.DocumentChunk) error {
		seen++
		assert.Equal(t, []float32{0.5, 0.5}, c.Vector)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)

	missing := testChunk("doc9", 0, nil)
	assert.ErrorIs(t, repo.UpdateChunks(ctx, missing), storage.ErrNotFound)
}

func TestSessionRepository(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	has, err := repo.HasDocuments(ctx, "sess1")
	require.NoError(t, err)
	assert.False(t, has)

	first := &core.SessionDocument{
		DocumentID:  "doc1",
		Filename:    "report.pdf",
		UploadTime:  time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		TotalChunks: 3,
		FileSize:    1024,
	}
	second := &core.SessionDocument{
		DocumentID:  "doc2",
		Filename:    "notes.pdf",
		UploadTime:  time.Date(2026, 1, 2, 11, 0, 0, 0, time.UTC),
		TotalChunks: 1,
		FileSize:    256,
	}
	require.NoError(t, repo.AddDocument(ctx, "sess1", second))
	require.NoError(t, repo.AddDocument(ctx, "sess1", first))

	docs, err := repo.GetDocuments(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// Upload order, not insertion order.
	assert.Equal(t, "doc1", docs[0].DocumentID)
	assert.Equal(t, "doc2", docs[1].DocumentID)
	assert.Equal(t, "report.pdf", docs[0].Filename)

	has, err = repo.HasDocuments(ctx, "sess1")
	require.NoError(t, err)
	assert.True(t, has)

	cleared, err := repo.ClearSession(ctx, "sess1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"doc1", "doc2"}, cleared)

	has, err = repo.HasDocuments(ctx, "sess1")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSessionRepositoryValidation(t *testing.T) {
	_, repo := newTestRepos(t)
	err := repo.AddDocument(context.Background(), "", &core.SessionDocument{DocumentID: "d"})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}
