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

import "regexp"

// citationPatterns are the accepted in-text citation forms. The prompt
// demands plain [n], but models still emit CJK brackets and dagger metadata,
// so extraction tolerates all four. Matches from every rule are unioned.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[(\d+)\]`),       // standard: [1]
	regexp.MustCompile(`【(\d+)】`),         // CJK brackets: 【1】
	regexp.MustCompile(`\[(\d+)†[^\]]*\]`), // with metadata: [1†source]
	regexp.MustCompile(`【(\d+)†[^】]*】`),   // CJK with metadata: 【1†source】
}

// extractCitations collects the set of source ids referenced in text.
// Ids stay strings; they are compared against assigned source ids, and an
// id with no matching source still counts toward the citation total.
func extractCitations(text string) map[string]bool {
	referenced := make(map[string]bool)
	for _, pattern := range citationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			referenced[match[1]] = true
		}
	}
	return referenced
}
