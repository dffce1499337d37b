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


package core

import "fmt"

// ValidateQueryIntent validates a QueryIntent according to domain rules.
//
// Validation rules:
//   - Type must be one of the known query types
//   - SuggestedSearches must be non-empty
//   - ComplexityScore must be in [1,10]
//
// NOT validated:
//   - KeyEntities (may be empty for vague queries)
//   - SearchIntent (free text)
func ValidateQueryIntent(intent *QueryIntent) error {
	if intent == nil {
		return fmt.Errorf("%w: intent is nil", ErrInvalidQueryIntent)
	}

	if err := ValidateQueryType(intent.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQueryIntent, err)
	}

	if len(intent.SuggestedSearches) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQueryIntent, ErrNoSuggestedSearches)
	}

	if intent.ComplexityScore < 1 || intent.ComplexityScore > 10 {
		return fmt.Errorf("%w: %w", ErrInvalidQueryIntent, ErrInvalidComplexityScore)
	}

	return nil
}

// ValidateQueryType validates that a QueryType has a known value.
func ValidateQueryType(t QueryType) error {
	for _, known := range QueryTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidQueryType, t)
}

// ValidateDocumentChunk validates a DocumentChunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - DocumentID must not be empty
//   - PageNumber must be at least 1
//   - ChunkIndex must not be negative
//
// NOT validated (populated by the document store):
//   - Vector (can be empty until embedded)
//   - SessionID, Filename
func ValidateDocumentChunk(chunk *DocumentChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkContent)
	}

	if chunk.DocumentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyDocumentID)
	}

	if chunk.PageNumber < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrInvalidPageNumber)
	}

	if chunk.ChunkIndex < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrInvalidChunkIndex)
	}

	return nil
}
