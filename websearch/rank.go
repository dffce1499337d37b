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


package websearch

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/searchit/core"
)

// reputableDomains earns a small ranking boost for sources that tend to
// carry well-edited content.
var reputableDomains = []string{
	// Encyclopedias & general knowledge
	"wikipedia.org",
	"britannica.com",
	"stanford.edu",
	"ox.ac.uk",
	"mit.edu",

	// Science & research
	"nature.com",
	"sciencedirect.com",
	"sciencemag.org",
	"springer.com",
	"jstor.org",

	// Technology & computing
	"ieee.org",
	"acm.org",
	"arxiv.org",
	"nasa.gov",
	"techcrunch.com",

	// News & journalism
	"bbc.com",
	"nytimes.com",
	"reuters.com",
	"theguardian.com",
	"washingtonpost.com",

	// Health & medicine
	"nih.gov",
	"who.int",
	"cdc.gov",
	"mayoclinic.org",
	"clevelandclinic.org",

	// Sports
	"espn.com",
	"skysports.com",
	"sports.yahoo.com",
	"cbssports.com",
	"bleacherreport.com",
	"cricbuzz.com",
	"espncricinfo.com",
	"icc-cricket.com",
	"wisden.com",

	// Archives & libraries
	"archive.org",
	"loc.gov",
	"europeana.eu",
	"nationalarchives.gov.uk",
	"worlddigitalibrary.org",
}

// dedupeByURL removes later occurrences of an already-seen URL, keeping
// input order. Items with an empty URL are all kept.
func dedupeByURL(items []core.EvidenceItem) []core.EvidenceItem {
	seen := make(map[string]bool, len(items))
	unique := make([]core.EvidenceItem, 0, len(items))

	for _, item := range items {
		if item.URL != "" {
			if seen[item.URL] {
				continue
			}
			seen[item.URL] = true
		}
		unique = append(unique, item)
	}

	return unique
}

// computeScore combines the search API's relevance score with bonuses for
// content length and source reputation.
func computeScore(item core.EvidenceItem) float64 {
	score := item.RelevanceScore

	// Character count, not bytes: non-ASCII content crosses the same
	// thresholds as ASCII.
	switch length := utf8.RuneCountInString(item.Content); {
	case length > 500:
		score += 1.0
	case length > 200:
		score += 0.5
	}

	url := strings.ToLower(item.URL)
	for _, domain := range reputableDomains {
		if strings.Contains(url, domain) {
			score += 0.15
			break
		}
	}

	return score
}

// rankResults attaches a computed score to every item and stable-sorts
// descending by it, so equal scores keep their input order.
func rankResults(items []core.EvidenceItem) []core.EvidenceItem {
	for i := range items {
		score := computeScore(items[i])
		items[i].ComputedScore = &score
	}

	sort.SliceStable(items, func(a, b int) bool {
		return *items[a].ComputedScore > *items[b].ComputedScore
	})

	return items
}
