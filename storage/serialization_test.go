package storage

import (
	"testing"
	"time"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentChunkSerialization(t *testing.T) {
	chunk := &core.DocumentChunk{
		ChunkID:    "doc1_chunk_0",
		DocumentID: "doc1",
		Content:    "some content",
		PageNumber: 1,
		ChunkIndex: 0,
		TokenCount: 2,
		SessionID:  "sess1",
		Filename:   "a.pdf",
		Vector:     []float32{0.6, 0.8},
	}

	decoded, err := UnmarshalDocumentChunk(MarshalDocumentChunk(chunk))
	require.NoError(t, err)
	assert.Equal(t, chunk, decoded)
}

func TestSessionDocumentSerialization(t *testing.T) {
	doc := &core.SessionDocument{
		DocumentID:  "doc1",
		Filename:    "a.pdf",
		UploadTime:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TotalChunks: 3,
		FileSize:    2048,
	}

	decoded, err := UnmarshalSessionDocument(MarshalSessionDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := UnmarshalDocumentChunk(nil)
	assert.ErrorIs(t, err, ErrSerializationFailed)

	_, err = UnmarshalSessionDocument([]byte{0xff})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
