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


// Package openai provides production implementations of the ai interfaces
// backed by OpenAI-compatible HTTP APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// The analyzer and generator use chat completions through langchaingo; the
// embedder uses the embeddings endpoint. Each service can point at a
// different host and model via ai.Config, so a small local model can handle
// intent analysis while a larger one handles synthesis.
//
// The intent analyzer requests JSON mode and tolerates the usual LLM
// formatting slop (markdown code fences, unquoted keys). It retries parsing
// a few times and then degrades to ai.FallbackIntent rather than failing.
package openai
