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


package chunking

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/poiesic/searchit/core"
)

const (
	// DefaultMaxChunkSize is the token ceiling for a chunk.
	DefaultMaxChunkSize = 1000
	// DefaultOverlapSize is the token budget for the overlap tail carried
	// into the next chunk.
	DefaultOverlapSize = 200
	// DefaultMinChunkSize is the smallest chunk worth keeping.
	DefaultMinChunkSize = 200

	// tokenizerEncoding is the fixed subword tokenizer used for counting.
	tokenizerEncoding = "cl100k_base"
)

// pagePattern matches the page-boundary sentinel injected by text extraction.
var pagePattern = regexp.MustCompile(`--- Page \d+ ---`)

// paragraphPattern splits page text on blank lines.
var paragraphPattern = regexp.MustCompile(`\n\s*\n`)

// sentencePattern matches sentence-ending punctuation followed by whitespace.
var sentencePattern = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// TokenCounter counts subword tokens in text. The chunker's size limits are
// all expressed in tokens of one fixed encoding.
type TokenCounter interface {
	Count(text string) int
}

// tiktokenCounter is the production TokenCounter backed by tiktoken.
type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (t *tiktokenCounter) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Chunker splits long extracted text into token-bounded, overlapping segments.
// It holds no per-document state and is safe for concurrent use.
type Chunker struct {
	maxChunkSize int
	overlapSize  int
	minChunkSize int
	counter      TokenCounter
	logger       *slog.Logger
}

// Option is a functional option for configuring a Chunker.
type Option func(*Chunker) error

// WithMaxChunkSize sets the token ceiling for a chunk.
func WithMaxChunkSize(size int) Option {
	return func(c *Chunker) error {
		if size <= 0 {
			return fmt.Errorf("%w: max chunk size must be positive, got %d", ErrInvalidChunkSize, size)
		}
		c.maxChunkSize = size
		return nil
	}
}

// WithOverlapSize sets the token budget for the overlap tail.
func WithOverlapSize(size int) Option {
	return func(c *Chunker) error {
		if size < 0 {
			return fmt.Errorf("%w: overlap size must be non-negative, got %d", ErrInvalidChunkSize, size)
		}
		c.overlapSize = size
		return nil
	}
}

// WithMinChunkSize sets the smallest chunk worth keeping.
func WithMinChunkSize(size int) Option {
	return func(c *Chunker) error {
		if size < 0 {
			return fmt.Errorf("%w: min chunk size must be non-negative, got %d", ErrInvalidChunkSize, size)
		}
		c.minChunkSize = size
		return nil
	}
}

// WithTokenCounter replaces the default tiktoken counter. Used by tests to
// avoid fetching tokenizer data.
func WithTokenCounter(counter TokenCounter) Option {
	return func(c *Chunker) error {
		if counter == nil {
			return fmt.Errorf("%w: token counter must not be nil", ErrInvalidChunkSize)
		}
		c.counter = counter
		return nil
	}
}

// NewChunker creates a Chunker with default sizes and applies the provided
// options. Unless WithTokenCounter is given, the cl100k_base tiktoken
// encoding is loaded for token counting.
func NewChunker(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		maxChunkSize: DefaultMaxChunkSize,
		overlapSize:  DefaultOverlapSize,
		minChunkSize: DefaultMinChunkSize,
		logger:       slog.Default().With("component", "chunker"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.minChunkSize > c.maxChunkSize {
		return nil, fmt.Errorf("%w: min chunk size %d exceeds max chunk size %d",
			ErrInvalidChunkSize, c.minChunkSize, c.maxChunkSize)
	}

	if c.counter == nil {
		enc, err := tiktoken.GetEncoding(tokenizerEncoding)
		if err != nil {
			return nil, fmt.Errorf("loading %s encoding: %w", tokenizerEncoding, err)
		}
		c.counter = &tiktokenCounter{enc: enc}
	}

	return c, nil
}

// Chunk splits extracted document text into ordered chunks. Empty or
// whitespace-only text yields an empty slice, never an error.
//
// The chunk index runs across the whole document, continuing over page
// boundaries. A trailing remainder below the minimum size is dropped;
// callers that need every byte retained should lower the minimum.
func (c *Chunker) Chunk(text, documentID string) []core.DocumentChunk {
	if strings.TrimSpace(text) == "" {
		return []core.DocumentChunk{}
	}

	pages := splitPages(text)
	chunks := make([]core.DocumentChunk, 0)
	chunkIndex := 0

	for pageIdx, pageText := range pages {
		pageChunks, next := c.chunkPage(pageText, documentID, pageIdx+1, chunkIndex)
		chunks = append(chunks, pageChunks...)
		chunkIndex = next
	}

	c.logger.Debug("chunked document",
		"document_id", documentID,
		"pages", len(pages),
		"chunks", len(chunks))
	return chunks
}

// chunkPage greedily packs one page's paragraphs into chunks, returning the
// chunks and the next chunk index.
func (c *Chunker) chunkPage(pageText, documentID string, pageNumber, chunkIndex int) ([]core.DocumentChunk, int) {
	paragraphs := splitParagraphs(pageText)
	chunks := make([]core.DocumentChunk, 0)
	current := ""

	for _, para := range paragraphs {
		candidate := para
		if current != "" {
			candidate = current + "\n\n" + para
		}

		if c.counter.Count(candidate) <= c.maxChunkSize {
			current = candidate
			continue
		}

		if current != "" && c.counter.Count(current) >= c.minChunkSize {
			chunks = append(chunks, c.newChunk(documentID, current, pageNumber, chunkIndex))
			chunkIndex++

			// Seed the next chunk with an overlap tail for context continuity.
			if tail := c.overlapTail(current); tail != "" {
				current = tail + "\n\n" + para
			} else {
				current = para
			}
		} else {
			// Below minimum: force-append rather than emit a tiny chunk,
			// even though this may exceed the maximum.
			current = candidate
		}
	}

	if current != "" && c.counter.Count(current) >= c.minChunkSize {
		chunks = append(chunks, c.newChunk(documentID, current, pageNumber, chunkIndex))
		chunkIndex++
	} else if current != "" {
		c.logger.Debug("dropping undersized trailing remainder",
			"document_id", documentID,
			"page", pageNumber,
			"tokens", c.counter.Count(current))
	}

	return chunks, chunkIndex
}

// overlapTail returns the last one or two sentences of content, trimmed
// word-by-word from the front until it fits within the overlap budget.
func (c *Chunker) overlapTail(content string) string {
	if c.overlapSize == 0 {
		return ""
	}

	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}

	tail := sentences[len(sentences)-1]
	if len(sentences) > 1 {
		tail = sentences[len(sentences)-2] + " " + tail
	}

	for c.counter.Count(tail) > c.overlapSize {
		words := strings.Fields(tail)
		if len(words) <= 1 {
			return ""
		}
		tail = strings.Join(words[1:], " ")
	}

	return strings.TrimSpace(tail)
}

func (c *Chunker) newChunk(documentID, content string, pageNumber, chunkIndex int) core.DocumentChunk {
	return core.DocumentChunk{
		ChunkID:    fmt.Sprintf("%s_chunk_%d", documentID, chunkIndex),
		DocumentID: documentID,
		Content:    content,
		PageNumber: pageNumber,
		ChunkIndex: chunkIndex,
		TokenCount: c.counter.Count(content),
	}
}

// splitPages splits text on the page-boundary sentinel. Text without at
// least two page segments is treated as a single page.
func splitPages(text string) []string {
	segments := pagePattern.Split(text, -1)
	pages := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			pages = append(pages, seg)
		}
	}
	if len(pages) < 2 {
		return []string{text}
	}
	return pages
}

// splitParagraphs splits page text on blank lines, discarding empties.
func splitParagraphs(pageText string) []string {
	parts := paragraphPattern.Split(pageText, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// splitSentences splits text at sentence-ending punctuation.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	bounds := sentencePattern.FindAllStringIndex(text, -1)
	sentences := make([]string, 0, len(bounds)+1)
	start := 0
	for _, b := range bounds {
		s := strings.TrimSpace(text[start:b[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = b[1]
	}
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
