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


package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
)

// fallbackQualityScore marks answers produced by the apology path.
const fallbackQualityScore = 0.1

// Synthesizer turns ranked evidence and query intent into a cited answer.
// It holds no per-request state and is safe for concurrent use.
type Synthesizer struct {
	generator ai.TextGenerator
	logger    *slog.Logger
}

// NewSynthesizer creates a Synthesizer over the given text generator.
func NewSynthesizer(generator ai.TextGenerator) (*Synthesizer, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	return &Synthesizer{
		generator: generator,
		logger:    slog.Default().With("component", "synthesizer"),
	}, nil
}

// Synthesize generates a cited answer from the evidence set. It never fails:
// generation errors and empty evidence both degrade to a fallback answer.
// The intent is accepted for contract symmetry with the orchestrator; the
// prompt is driven by the query and sources alone.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, intent *core.QueryIntent, evidence *core.EvidenceSet) *core.SynthesizedAnswer {
	var items []core.EvidenceItem
	if evidence != nil {
		items = evidence.Items
	}

	s.logger.Info("synthesizing response", "sources", len(items))

	sources := prepareSources(items)
	if len(sources) == 0 {
		s.logger.Warn("no valid sources to synthesize from")
		return s.fallbackAnswer(query, "")
	}

	prompt := buildSynthesisPrompt(query, sources)

	content, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("synthesis failed", "err", err)
		return s.fallbackAnswer(query, err.Error())
	}

	answer := s.assembleAnswer(query, content, sources)
	s.logger.Info("response synthesized",
		"words", answer.WordCount,
		"citations", answer.CitationCount,
		"quality", answer.QualityScore)
	return answer
}

// assembleAnswer extracts citations from the generated text and computes
// the answer metrics.
func (s *Synthesizer) assembleAnswer(query, content string, sources []preparedSource) *core.SynthesizedAnswer {
	referenced := extractCitations(content)

	citations := make([]core.Citation, 0, len(sources))
	for _, src := range sources {
		if referenced[strconv.Itoa(src.ID)] {
			citations = append(citations, core.Citation{
				SourceID: src.ID,
				Title:    src.Title,
				URL:      src.URL,
			})
		}
	}

	wordCount := len(strings.Fields(content))
	citationCount := len(referenced)

	return &core.SynthesizedAnswer{
		Query:         query,
		Text:          content,
		CitationsUsed: citations,
		TotalSources:  len(sources),
		WordCount:     wordCount,
		CitationCount: citationCount,
		QualityScore:  qualityScore(content, citationCount, wordCount),
	}
}

// fallbackAnswer is the apology produced when no sources survive or
// generation fails. The error message, when present, is surfaced to the
// reader for transparency.
func (s *Synthesizer) fallbackAnswer(query, errMsg string) *core.SynthesizedAnswer {
	detail := "This may be due to limited search results or processing issues."
	if errMsg != "" {
		detail = "Error details: " + errMsg
	}

	text := fmt.Sprintf(
		"I apologize, but I encountered difficulty synthesizing a comprehensive response for your query: %q.\n%s\nPlease try rephrasing your question or asking about a different topic.",
		query, detail)

	return &core.SynthesizedAnswer{
		Query:         query,
		Text:          text,
		CitationsUsed: []core.Citation{},
		TotalSources:  0,
		WordCount:     len(strings.Fields(text)),
		CitationCount: 0,
		QualityScore:  fallbackQualityScore,
	}
}
