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

import "errors"

// Domain validation errors
var (
	// ErrInvalidQueryIntent indicates a QueryIntent failed validation.
	ErrInvalidQueryIntent = errors.New("invalid query intent")

	// ErrInvalidQueryType indicates an unknown QueryType value.
	ErrInvalidQueryType = errors.New("invalid query type")

	// ErrNoSuggestedSearches indicates SuggestedSearches is empty.
	ErrNoSuggestedSearches = errors.New("suggested searches cannot be empty")

	// ErrInvalidComplexityScore indicates a complexity score outside [1,10].
	ErrInvalidComplexityScore = errors.New("complexity score must be between 1 and 10")

	// ErrInvalidChunk indicates a DocumentChunk failed validation.
	ErrInvalidChunk = errors.New("invalid document chunk")

	// ErrEmptyChunkContent indicates the chunk Content field is empty.
	ErrEmptyChunkContent = errors.New("chunk content cannot be empty")

	// ErrInvalidPageNumber indicates a page number below 1.
	ErrInvalidPageNumber = errors.New("page number must be at least 1")

	// ErrInvalidChunkIndex indicates a negative chunk index.
	ErrInvalidChunkIndex = errors.New("chunk index cannot be negative")

	// ErrEmptyDocumentID indicates the chunk DocumentID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")
)
