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


package storage

import (
	"fmt"

	"github.com/poiesic/searchit/core"
)

// MarshalDocumentChunk serializes a DocumentChunk to bytes.
func MarshalDocumentChunk(chunk *core.DocumentChunk) []byte {
	buf := make([]byte, core.DocumentChunkMUS.Size(*chunk))
	core.DocumentChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalDocumentChunk deserializes a DocumentChunk from bytes.
func UnmarshalDocumentChunk(data []byte) (*core.DocumentChunk, error) {
	chunk, _, err := core.DocumentChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}

// MarshalSessionDocument serializes a SessionDocument to bytes.
func MarshalSessionDocument(doc *core.SessionDocument) []byte {
	buf := make([]byte, core.SessionDocumentMUS.Size(*doc))
	core.SessionDocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalSessionDocument deserializes a SessionDocument from bytes.
func UnmarshalSessionDocument(data []byte) (*core.SessionDocument, error) {
	doc, _, err := core.SessionDocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &doc, nil
}
