package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/searchit/core"
)

const analysisSystemPrompt = "You are a query analysis expert. Always respond with valid JSON only."

const analysisPromptTemplate = `You are an expert query analyzer for a search engine. Analyze the following user query and provide a structured response.
Query: "%s"
Provide analysis in this EXACT JSON format:
{
    "query_type": "%s",
    "search_intent": "Clear description of what user wants to know",
    "key_entities": ["entity1", "entity2", "entity3"],
    "suggested_searches": ["search_term_1", "search_term_2", "search_term_3"],
    "complexity_score": 1-10,
    "requires_real_time": true/false
}
Rules:
- complexity_score: 1-3 (simple facts), 4-6 (moderate research), 7-10 (complex multi-step)
- requires_real_time: true if query needs current/recent information
- suggested_searches: 3 optimized search terms for web search
- key_entities: important nouns, concepts, or topics from the query`

const synthesisSystemPrompt = "You are an expert research assistant that creates comprehensive, well-cited responses. Always use proper citations and maintain accuracy."

// buildAnalysisPrompt creates the intent-analysis prompt with the known query
// types embedded so the model picks from the closed set.
func buildAnalysisPrompt(query string) string {
	types := make([]string, len(core.QueryTypes))
	for i, qt := range core.QueryTypes {
		types[i] = string(qt)
	}
	return fmt.Sprintf(analysisPromptTemplate, query, strings.Join(types, "|"))
}
