package pipeline

import "errors"

var (
	// ErrNilAnalyzer indicates the orchestrator was built without an intent analyzer.
	ErrNilAnalyzer = errors.New("intent analyzer must not be nil")

	// ErrNilSearcher indicates the orchestrator was built without a search stage.
	ErrNilSearcher = errors.New("evidence searcher must not be nil")

	// ErrNilSynthesizer indicates the orchestrator was built without a synthesis stage.
	ErrNilSynthesizer = errors.New("answer synthesizer must not be nil")
)
