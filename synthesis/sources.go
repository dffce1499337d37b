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
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/searchit/core"
)

const (
	// maxSources caps how many ranked evidence items feed one answer.
	maxSources = 8
	// minContentLength discards sources whose cleaned content is useless.
	minContentLength = 10
	// maxContentLength truncates overly long source content.
	maxContentLength = 2000
)

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	boilerplatePattern = regexp.MustCompile(`(Cookie|Privacy Policy|Terms of Service).*`)
	adPattern          = regexp.MustCompile(`(?i)Advertisement\s*`)
	tagPattern         = regexp.MustCompile(`<[^>]+>`)
)

// preparedSource is an evidence item cleaned and numbered for the prompt.
// ID is the citation number the generated text must reference.
type preparedSource struct {
	ID      int
	Title   string
	URL     string
	Content string
	Score   float64
}

// cleanContent normalizes scraped text: collapse whitespace, cut trailing
// legal boilerplate, drop ad markers and markup tags.
func cleanContent(content string) string {
	content = whitespacePattern.ReplaceAllString(content, " ")
	content = boilerplatePattern.ReplaceAllString(content, "")
	content = adPattern.ReplaceAllString(content, "")
	content = tagPattern.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// prepareSources takes the top ranked evidence, cleans each item and assigns
// contiguous 1-based ids to the survivors in rank order. Those ids are the
// citation number space for the generated answer.
func prepareSources(items []core.EvidenceItem) []preparedSource {
	if len(items) > maxSources {
		items = items[:maxSources]
	}

	sources := make([]preparedSource, 0, len(items))
	for _, item := range items {
		// Length limits count characters, not bytes, so non-ASCII content
		// is measured and cut the same way as ASCII.
		content := cleanContent(item.Content)
		if utf8.RuneCountInString(content) < minContentLength {
			continue
		}
		if utf8.RuneCountInString(content) > maxContentLength {
			content = string([]rune(content)[:maxContentLength]) + "..."
		}

		sources = append(sources, preparedSource{
			ID:      len(sources) + 1,
			Title:   item.Title,
			URL:     item.URL,
			Content: content,
			Score:   item.RelevanceScore,
		})
	}

	return sources
}
