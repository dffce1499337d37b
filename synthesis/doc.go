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


// Package synthesis turns ranked web evidence into a cited narrative answer.
//
// The top eight evidence items are cleaned, truncated and numbered; the
// numbered list drives a citation-disciplined generation prompt. Extraction
// of in-text citations tolerates the bracket styles models actually emit,
// and each answer carries a quality score in [0, 1] derived from citation
// density, length and Markdown structure.
//
// Synthesize never fails: generation errors and empty evidence degrade to a
// fixed apology answer with quality 0.1.
package synthesis
