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


package searchit

import (
	"io"
	"log/slog"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/ai/openai"
	"github.com/poiesic/searchit/chunking"
	"github.com/poiesic/searchit/docstore"
	"github.com/poiesic/searchit/pipeline"
	"github.com/poiesic/searchit/reindex"
	"github.com/poiesic/searchit/storage"
	"github.com/poiesic/searchit/storage/badger"
	"github.com/poiesic/searchit/synthesis"
	"github.com/poiesic/searchit/websearch"
)

// Database bundles the storage backend, repositories and AI provider behind
// one handle. Component constructors hang off it so callers wire a document
// store or query pipeline without touching the individual packages.
type Database struct {
	backend     *badger.Backend
	chunkRepo   storage.ChunkRepository
	sessionRepo storage.SessionRepository
	provider    ai.AIProvider
	logger      *slog.Logger

	// Components with worker pools, released on Close.
	stores      []*docstore.Store
	aggregators []*websearch.Aggregator
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage keeps all data in memory instead of on disk.
// Useful for tests and throwaway sessions.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create chunk repository
	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create session repository
	sessionRepo, err := badger.NewSessionRepository(backend)
	if err != nil {
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		sessionRepo.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		chunkRepo:   chunkRepo,
		sessionRepo: sessionRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Release worker pools first
	for _, store := range db.stores {
		store.Release()
	}
	for _, aggregator := range db.aggregators {
		aggregator.Release()
	}

	// Close AI provider
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.sessionRepo.Close(); err != nil {
		db.logger.Error("error closing session repository", "err", err)
		return err
	}
	if err := db.chunkRepo.Close(); err != nil {
		db.logger.Error("error closing chunk repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ChunkRepository() storage.ChunkRepository {
	return db.chunkRepo
}

func (db *Database) SessionRepository() storage.SessionRepository {
	return db.sessionRepo
}

func (db *Database) Provider() ai.AIProvider {
	return db.provider
}

// NewDocumentStore creates a document store backed by this database and the
// shared embedder. Its worker pool is released when the database closes.
func (db *Database) NewDocumentStore(opts ...chunking.Option) (*docstore.Store, error) {
	chunker, err := chunking.NewChunker(opts...)
	if err != nil {
		return nil, err
	}

	store, err := docstore.NewStore(chunker, db.provider.Embedder(), db.chunkRepo, db.sessionRepo)
	if err != nil {
		return nil, err
	}

	db.stores = append(db.stores, store)
	return store, nil
}

// NewQueryPipeline creates the full query answering pipeline: intent
// analysis, parallel web search through the given search client and cited
// answer synthesis. The search stage's worker pool is released when the
// database closes.
func (db *Database) NewQueryPipeline(client websearch.Client, opts ...websearch.AggregatorOption) (*pipeline.Orchestrator, error) {
	aggregator, err := websearch.NewAggregator(client, opts...)
	if err != nil {
		return nil, err
	}

	synthesizer, err := synthesis.NewSynthesizer(db.provider.TextGenerator())
	if err != nil {
		aggregator.Release()
		return nil, err
	}

	orchestrator, err := pipeline.NewOrchestrator(db.provider.IntentAnalyzer(), aggregator, synthesizer)
	if err != nil {
		aggregator.Release()
		return nil, err
	}

	db.aggregators = append(db.aggregators, aggregator)
	return orchestrator, nil
}

// NewReindexer creates a reindexer that re-embeds every stored chunk with the
// database's configured embedder.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(db.chunkRepo, db.provider.Embedder(), config, progress)
}
