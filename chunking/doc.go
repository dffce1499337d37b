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


// Package chunking splits extracted document text into token-bounded,
// overlapping segments suitable for embedding and retrieval.
//
// Text is first split on page-boundary sentinels ("--- Page N ---"), then
// each page is packed paragraph by paragraph: a chunk closes when adding the
// next paragraph would push it past 1000 tokens, and the next chunk starts
// with an overlap tail of up to 200 tokens taken from the previous chunk's
// final sentences. Chunks below 200 tokens are avoided by force-appending,
// and an undersized trailing remainder is dropped.
//
// Token counts use the cl100k_base tiktoken encoding. Tests inject a
// TokenCounter to stay offline.
package chunking
