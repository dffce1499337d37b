package synthesis

import "strings"

// qualityScore rates a generated answer in [0, 1].
//
// The components are additive: citation density relative to length (one
// citation per 50-100 words is ideal), overall word count, Markdown
// structure, and breadth of cited sources.
func qualityScore(content string, citations, words int) float64 {
	score := 0.0

	if words > 0 {
		density := float64(citations) / (float64(words) / 50)
		if density >= 0.5 && density <= 2.0 {
			score += 0.3
		} else if density > 0 {
			score += 0.1
		}
	}

	if words >= 200 && words <= 800 {
		score += 0.3
	} else if words >= 100 {
		score += 0.2
	}

	if strings.Contains(content, "##") {
		score += 0.1
	}
	if strings.Contains(content, "- ") || strings.Contains(content, "* ") {
		score += 0.1
	}
	if citations > 2 {
		score += 0.2
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
