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


// Package storage defines the persistence contracts for document chunks and
// session registries, plus the binary serialization helpers shared by all
// backends.
//
// Repositories are interfaces so the document store and reindexer stay
// backend-agnostic; the badger sub-package provides the production
// implementation. Records are serialized with the MUS format serializers
// defined in core.
package storage
