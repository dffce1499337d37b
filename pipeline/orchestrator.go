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


package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
)

// resultsPerTerm is how many results each search term requests.
const resultsPerTerm = 2

// EvidenceSearcher is the web-search stage contract.
type EvidenceSearcher interface {
	SearchMultiple(ctx context.Context, queries []string, resultsPerQuery int) ([]core.EvidenceItem, error)
}

// AnswerSynthesizer is the synthesis stage contract.
type AnswerSynthesizer interface {
	Synthesize(ctx context.Context, query string, intent *core.QueryIntent, evidence *core.EvidenceSet) *core.SynthesizedAnswer
}

// Orchestrator sequences intent analysis, web search and synthesis into one
// pipeline run. Components are wired once at construction and hold no
// per-request state.
type Orchestrator struct {
	analyzer    ai.IntentAnalyzer
	searcher    EvidenceSearcher
	synthesizer AnswerSynthesizer
	logger      *slog.Logger
}

// NewOrchestrator creates an Orchestrator over the three stage components.
func NewOrchestrator(analyzer ai.IntentAnalyzer, searcher EvidenceSearcher, synthesizer AnswerSynthesizer) (*Orchestrator, error) {
	if analyzer == nil {
		return nil, ErrNilAnalyzer
	}
	if searcher == nil {
		return nil, ErrNilSearcher
	}
	if synthesizer == nil {
		return nil, ErrNilSynthesizer
	}
	return &Orchestrator{
		analyzer:    analyzer,
		searcher:    searcher,
		synthesizer: synthesizer,
		logger:      slog.Default().With("component", "orchestrator"),
	}, nil
}

// Execute runs the full pipeline for one query. It never propagates a
// failure: errors and panics from any stage produce an error-status result
// carrying whatever partial data the earlier stages computed.
func (o *Orchestrator) Execute(ctx context.Context, query string) (result *core.PipelineResult) {
	result = &core.PipelineResult{
		OriginalQuery: query,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("pipeline panicked", "query", query, "panic", r)
			result.Status = core.StatusErrorPrefix + fmt.Sprint(r)
			result.Answer = nil
		}
	}()

	o.logger.Info("step 1: analyzing query", "query", query)
	intent := o.analyzer.AnalyzeIntent(ctx, query)
	result.Intent = intent

	o.logger.Info("step 2: executing web search")
	evidence, err := o.searchEvidence(ctx, intent, query)
	if err != nil {
		o.logger.Error("search pipeline failed", "err", err)
		result.Status = core.StatusErrorPrefix + err.Error()
		return result
	}
	result.Evidence = evidence

	o.logger.Info("step 3: synthesizing response")
	result.Answer = o.synthesizer.Synthesize(ctx, query, intent, evidence)
	result.Status = core.StatusCompleted

	return result
}

// searchEvidence derives the search terms from the intent, runs the search
// stage and wraps the outcome with timing metadata.
func (o *Orchestrator) searchEvidence(ctx context.Context, intent *core.QueryIntent, query string) (*core.EvidenceSet, error) {
	terms := deriveSearchTerms(intent, query)
	o.logger.Info("using search terms", "count", len(terms), "terms", terms)

	start := time.Now()
	items, err := o.searcher.SearchMultiple(ctx, terms, resultsPerTerm)
	if err != nil {
		return nil, err
	}
	duration := round2(time.Since(start).Seconds())

	return &core.EvidenceSet{
		Items:           items,
		SearchTermsUsed: terms,
		Query:           query,
		DurationSeconds: duration,
	}, nil
}

// deriveSearchTerms turns the intent's suggestions into the final term list.
// The original query is prepended unless already suggested (case-insensitive,
// with the suggestion list cut to two first), then the total is capped by
// query complexity.
func deriveSearchTerms(intent *core.QueryIntent, query string) []string {
	terms := intent.SuggestedSearches

	found := false
	for _, term := range terms {
		if strings.EqualFold(term, query) {
			found = true
			break
		}
	}
	if !found {
		kept := terms
		if len(kept) > 2 {
			kept = kept[:2]
		}
		terms = append([]string{query}, kept...)
	}

	if limit := maxSearches(intent.ComplexityScore); len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// maxSearches bounds the search fan-out by query complexity.
func maxSearches(complexityScore int) int {
	if complexityScore <= 3 {
		return 2
	}
	return 3
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
