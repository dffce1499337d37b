// Package docstore ingests extracted documents into session-scoped vector
// storage and answers similarity queries over them.
//
// Ingestion chunks the text, embeds the chunks in concurrent batches,
// normalizes every vector to unit length and persists chunks plus a session
// registry entry. RelevantContext packages the best matches into a numbered
// text block suitable for a generation prompt.
package docstore
