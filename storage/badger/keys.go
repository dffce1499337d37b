package badger

import "fmt"

// Key prefixes for different data types
const (
	chunkRecordPrefix   = "docchk"
	chunkDocumentPrefix = "docidx"
	sessionDocPrefix    = "sessdoc"

	chunkKeyPrefix = chunkRecordPrefix + ":"
)

// makeChunkKey generates a key for a chunk by its ChunkID.
func makeChunkKey(chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", chunkRecordPrefix, chunkID))
}

// makeChunkDocumentKey generates a composite key for the document index.
// Format: prefix:documentID:chunkID
func makeChunkDocumentKey(documentID, chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", chunkDocumentPrefix, documentID, chunkID))
}

// makePartialChunkDocumentKey generates a partial key for listing one
// document's chunks.
func makePartialChunkDocumentKey(documentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", chunkDocumentPrefix, documentID))
}

// makeSessionDocKey generates a composite key for a session's document entry.
// Format: prefix:sessionID:documentID
func makeSessionDocKey(sessionID, documentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", sessionDocPrefix, sessionID, documentID))
}

// makePartialSessionDocKey generates a partial key for listing one session's
// documents.
func makePartialSessionDocKey(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", sessionDocPrefix, sessionID))
}
