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

// Hand-written MUS serializers for the records that go into storage.
// Timestamps are stored as Unix microseconds.

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var vectorMUS = ord.NewSliceSer[float32](varint.Float32)

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// DocumentChunkMUS serializes DocumentChunk values.
var DocumentChunkMUS = documentChunkMUS{}

type documentChunkMUS struct{}

func (documentChunkMUS) Marshal(c DocumentChunk, bs []byte) (n int) {
	n = ord.String.Marshal(c.ChunkID, bs)
	n += ord.String.Marshal(c.DocumentID, bs[n:])
	n += ord.String.Marshal(c.Content, bs[n:])
	n += varint.Int.Marshal(c.PageNumber, bs[n:])
	n += varint.Int.Marshal(c.ChunkIndex, bs[n:])
	n += varint.Int.Marshal(c.TokenCount, bs[n:])
	n += ord.String.Marshal(c.SessionID, bs[n:])
	n += ord.String.Marshal(c.Filename, bs[n:])
	n += vectorMUS.Marshal(c.Vector, bs[n:])
	return
}

func (documentChunkMUS) Unmarshal(bs []byte) (c DocumentChunk, n int, err error) {
	var n1 int
	if c.ChunkID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if c.DocumentID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Content, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.PageNumber, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.ChunkIndex, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.TokenCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.SessionID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Filename, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	c.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (documentChunkMUS) Size(c DocumentChunk) (size int) {
	size = ord.String.Size(c.ChunkID)
	size += ord.String.Size(c.DocumentID)
	size += ord.String.Size(c.Content)
	size += varint.Int.Size(c.PageNumber)
	size += varint.Int.Size(c.ChunkIndex)
	size += varint.Int.Size(c.TokenCount)
	size += ord.String.Size(c.SessionID)
	size += ord.String.Size(c.Filename)
	size += vectorMUS.Size(c.Vector)
	return
}

func (s documentChunkMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

// SessionDocumentMUS serializes SessionDocument values.
var SessionDocumentMUS = sessionDocumentMUS{}

type sessionDocumentMUS struct{}

func (sessionDocumentMUS) Marshal(d SessionDocument, bs []byte) (n int) {
	n = ord.String.Marshal(d.DocumentID, bs)
	n += ord.String.Marshal(d.Filename, bs[n:])
	n += varint.Int64.Marshal(d.UploadTime.UnixMicro(), bs[n:])
	n += varint.Int.Marshal(d.TotalChunks, bs[n:])
	n += varint.Int64.Marshal(d.FileSize, bs[n:])
	return
}

func (sessionDocumentMUS) Unmarshal(bs []byte) (d SessionDocument, n int, err error) {
	var n1 int
	if d.DocumentID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if d.Filename, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + n1, err
	}
	n += n1
	var uploadMicro int64
	if uploadMicro, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return d, n + n1, err
	}
	n += n1
	d.UploadTime = time.UnixMicro(uploadMicro).UTC()
	if d.TotalChunks, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return d, n + n1, err
	}
	n += n1
	d.FileSize, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (sessionDocumentMUS) Size(d SessionDocument) (size int) {
	size = ord.String.Size(d.DocumentID)
	size += ord.String.Size(d.Filename)
	size += varint.Int64.Size(d.UploadTime.UnixMicro())
	size += varint.Int.Size(d.TotalChunks)
	size += varint.Int64.Size(d.FileSize)
	return
}

func (s sessionDocumentMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}
