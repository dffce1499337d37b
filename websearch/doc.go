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


// Package websearch gathers web evidence for a set of search terms.
//
// The Aggregator issues every term concurrently over a bounded worker pool,
// tolerates per-term failures, then deduplicates by URL (first occurrence
// wins) and ranks by a computed score: the API relevance score plus bonuses
// for content length and reputable domains. The ranked order defines the
// citation id space used downstream.
//
// TavilyClient is the production Client; tests substitute their own.
package websearch
