package ai

import "github.com/poiesic/searchit/core"

// maxFallbackEntityLen caps the entity copied from a very long query.
const maxFallbackEntityLen = 200

// FallbackIntent builds the deterministic intent used when analysis fails.
// Every IntentAnalyzer implementation degrades to this rather than returning
// an error, which is what lets callers treat intent analysis as non-failing.
func FallbackIntent(query string) *core.QueryIntent {
	entity := query
	if runes := []rune(entity); len(runes) > maxFallbackEntityLen {
		entity = string(runes[:maxFallbackEntityLen])
	}

	return &core.QueryIntent{
		Type:         core.QueryTypeFactual,
		SearchIntent: "User wants information about: " + query,
		KeyEntities:  []string{entity},
		SuggestedSearches: []string{
			query,
			query + " explanation",
			query + " definition",
		},
		ComplexityScore:  5,
		RequiresRealTime: false,
	}
}
