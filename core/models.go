package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// QueryType classifies what kind of answer a query is asking for.
type QueryType string

const (
	QueryTypeFactual       QueryType = "factual"
	QueryTypeComparison    QueryType = "comparison"
	QueryTypeHowTo         QueryType = "how_to"
	QueryTypeCurrentEvents QueryType = "current_events"
	QueryTypeOpinion       QueryType = "opinion"
	QueryTypeCalculation   QueryType = "calculation"
)

// QueryTypes lists the valid query classifications, in the order the
// intent-analysis prompt presents them.
var QueryTypes = []QueryType{
	QueryTypeFactual,
	QueryTypeComparison,
	QueryTypeHowTo,
	QueryTypeCurrentEvents,
	QueryTypeOpinion,
	QueryTypeCalculation,
}

// QueryIntent is the structured interpretation of a user query, produced once
// per query by the intent-analysis capability and immutable afterwards.
// SuggestedSearches is always non-empty; the analyzer's fallback guarantees it.
type QueryIntent struct {
	Type              QueryType
	SearchIntent      string   // What the user wants to know
	KeyEntities       []string // Important nouns, concepts, or topics
	SuggestedSearches []string // Optimized web search terms, at least one
	ComplexityScore   int      // 1 (simple fact) to 10 (complex multi-step)
	RequiresRealTime  bool     // Whether the query needs current information
}

// EvidenceItem is a single web search result. The URL is the unique key
// within a result set. ComputedScore is populated by the ranking step and
// nil until then; PublishedDate is empty when the source did not report one.
type EvidenceItem struct {
	Title          string
	URL            string
	Content        string
	RelevanceScore float64
	ComputedScore  *float64
	PublishedDate  string
}

// EvidenceSet is the ranked evidence gathered for one pipeline run.
// Items are in final rank order; position 1..N is the citation id space.
type EvidenceSet struct {
	Items           []EvidenceItem
	SearchTermsUsed []string
	Query           string
	DurationSeconds float64
}

// Citation references an evidence source actually cited in synthesized text.
type Citation struct {
	SourceID int // 1-based id assigned to surviving sources in rank order
	Title    string
	URL      string
}

// SynthesizedAnswer is the terminal artifact of one pipeline run.
// CitationCount counts distinct referenced ids in the text, which may exceed
// len(CitationsUsed) when the generator cites an id with no matching source.
type SynthesizedAnswer struct {
	Query         string
	Text          string
	CitationsUsed []Citation
	TotalSources  int
	WordCount     int
	CitationCount int
	QualityScore  float64 // in [0,1]
}

// Pipeline status values. Failures use StatusErrorPrefix + message.
const (
	StatusCompleted   = "completed"
	StatusErrorPrefix = "error: "
)

// PipelineResult aggregates everything one pipeline run produced. Partial
// fields stay populated on failure for best-effort diagnostics.
type PipelineResult struct {
	OriginalQuery string
	Intent        *QueryIntent
	Evidence      *EvidenceSet
	Answer        *SynthesizedAnswer
	Status        string
	Timestamp     string
}

// Completed reports whether the pipeline run finished all stages.
func (r *PipelineResult) Completed() bool {
	return r.Status == StatusCompleted
}

// DocumentChunk is a token-bounded segment of an extracted document.
// Chunks within one document have strictly increasing ChunkIndex and are
// ordered by (PageNumber, ChunkIndex).
type DocumentChunk struct {
	ChunkID    string // deterministic: "<documentID>_chunk_<chunkIndex>"
	DocumentID string
	Content    string
	PageNumber int // 1-based
	ChunkIndex int // running counter across the whole document
	TokenCount int
	// Enrichment fields, populated by the document store.
	SessionID string
	Filename  string
	Vector    []float32 // normalized embedding for similarity search
}

// ChunkMatch is a document chunk returned from similarity search.
type ChunkMatch struct {
	Chunk *DocumentChunk
	Score float32
}

// SessionDocument tracks a document uploaded into a session.
type SessionDocument struct {
	DocumentID  string
	Filename    string
	UploadTime  time.Time
	TotalChunks int
	FileSize    int64
}
