// Package reindex re-embeds every stored document chunk with the currently
// configured embedding model. It streams chunks in batches, retries failed
// embedding calls with exponential backoff and reports progress as it goes.
package reindex
