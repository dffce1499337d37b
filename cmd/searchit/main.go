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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/searchit"
	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/reindex"
	"github.com/poiesic/searchit/websearch"
	"github.com/urfave/cli/v2"
)

var aiFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "host",
		Usage: "OpenAI-compatible service host URL (all services)",
		Value: "http://localhost:11434/v1",
	},
	&cli.StringFlag{
		Name:  "analyzer-model",
		Usage: "Model name for query intent analysis",
		Value: "qwen2.5:3b",
	},
	&cli.StringFlag{
		Name:  "generator-model",
		Usage: "Model name for answer synthesis",
		Value: "qwen2.5:3b",
	},
	&cli.StringFlag{
		Name:  "embedding-model",
		Usage: "Model name for text embeddings",
		Value: "embeddinggemma",
	},
	&cli.StringFlag{
		Name:  "token",
		Usage: "API token for the AI services",
		Value: "none",
	},
}

func main() {
	app := &cli.App{
		Name:  "searchit",
		Usage: "Query answering over web search and uploaded documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Answer a query with cited evidence from web search",
				Action:    searchCommand,
				ArgsUsage: "<query>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "search-api-key",
						Usage:    "Tavily API key",
						EnvVars:  []string{"TAVILY_API_KEY"},
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "search-timeout",
						Usage: "Per-search deadline",
						Value: 30 * time.Second,
					},
				}, aiFlags...),
			},
			{
				Name:      "ingest",
				Usage:     "Chunk, embed and store an extracted text document",
				Action:    ingestCommand,
				ArgsUsage: "<file>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "session",
						Aliases:  []string{"s"},
						Usage:    "Session id the document belongs to",
						Required: true,
					},
				}, aiFlags...),
			},
			{
				Name:      "docsearch",
				Usage:     "Search stored document chunks by similarity",
				Action:    docsearchCommand,
				ArgsUsage: "<query>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "session",
						Aliases:  []string{"s"},
						Usage:    "Session id to search within",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of chunks to return",
						Value: 5,
					},
				}, aiFlags...),
			},
			{
				Name:   "docs",
				Usage:  "List the documents stored in a session",
				Action: docsCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "session",
						Aliases:  []string{"s"},
						Usage:    "Session id to list",
						Required: true,
					},
				}, aiFlags...),
			},
			{
				Name:   "clear",
				Usage:  "Remove a session's documents and their chunks",
				Action: clearCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "session",
						Aliases:  []string{"s"},
						Usage:    "Session id to clear",
						Required: true,
					},
				}, aiFlags...),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all stored chunks with new embeddings",
				Action: reindexCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				}, aiFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildAIConfig(c *cli.Context) (*ai.Config, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithAnalyzerModel(c.String("analyzer-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return aiConfig, nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	// The search pipeline needs no persistent storage.
	db, err := searchit.NewDatabase("",
		searchit.WithInMemoryStorage(),
		searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer db.Close()

	client, err := websearch.NewTavilyClient(c.String("search-api-key"))
	if err != nil {
		return err
	}

	orchestrator, err := db.NewQueryPipeline(client,
		websearch.WithSearchTimeout(c.Duration("search-timeout")))
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	result := orchestrator.Execute(context.Background(), query)
	printResult(result)

	if !result.Completed() {
		return fmt.Errorf("pipeline did not complete: %s", result.Status)
	}
	return nil
}

func printResult(result *core.PipelineResult) {
	if result.Intent != nil {
		fmt.Printf("Query type: %s (complexity %d)\n", result.Intent.Type, result.Intent.ComplexityScore)
	}
	if result.Evidence != nil {
		fmt.Printf("Search terms: %s\n", strings.Join(result.Evidence.SearchTermsUsed, ", "))
		fmt.Printf("Sources: %d (%.2fs)\n", len(result.Evidence.Items), result.Evidence.DurationSeconds)
	}
	if result.Answer != nil {
		fmt.Println()
		fmt.Println(result.Answer.Text)
		if len(result.Answer.CitationsUsed) > 0 {
			fmt.Println()
			fmt.Println("Sources:")
			for _, citation := range result.Answer.CitationsUsed {
				fmt.Printf("  [%d] %s - %s\n", citation.SourceID, citation.Title, citation.URL)
			}
		}
		fmt.Println()
		fmt.Printf("Words: %d, citations: %d, quality: %.2f\n",
			result.Answer.WordCount, result.Answer.CitationCount, result.Answer.QualityScore)
	}
	fmt.Printf("Status: %s\n", result.Status)
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one file argument is required")
	}
	filePath := c.Args().First()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	db, err := searchit.NewDatabase(c.String("db"), searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := db.NewDocumentStore()
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}

	doc, err := store.StoreDocument(context.Background(),
		c.String("session"), filepath.Base(filePath), string(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	fmt.Printf("Stored %s as %s (%d chunks)\n", doc.Filename, doc.DocumentID, doc.TotalChunks)
	return nil
}

func docsearchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	db, err := searchit.NewDatabase(c.String("db"), searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := db.NewDocumentStore()
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}

	matches, err := store.SearchDocuments(context.Background(), query, c.String("session"), c.Int("max-results"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(matches))
	for i, match := range matches {
		fmt.Printf("%d: '%s' (%s p.%d)[%0.3f]\n",
			i, match.Chunk.Content, match.Chunk.Filename, match.Chunk.PageNumber, match.Score)
	}
	return nil
}

func docsCommand(c *cli.Context) error {
	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	db, err := searchit.NewDatabase(c.String("db"), searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	docs, err := db.SessionRepository().GetDocuments(context.Background(), c.String("session"))
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Println("No documents in session")
		return nil
	}
	for _, doc := range docs {
		fmt.Printf("%s  %s  %d chunks  %d bytes  %s\n",
			doc.DocumentID, doc.Filename, doc.TotalChunks, doc.FileSize,
			doc.UploadTime.Format(time.RFC3339))
	}
	return nil
}

func clearCommand(c *cli.Context) error {
	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	db, err := searchit.NewDatabase(c.String("db"), searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := db.NewDocumentStore()
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}

	removed, err := store.ClearSession(context.Background(), c.String("session"))
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Printf("Removed %d chunks\n", removed)
	return nil
}

func reindexCommand(c *cli.Context) error {
	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, err := searchit.NewDatabase(c.String("db"), searchit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	reindexer := db.NewReindexer(reindexConfig, os.Stderr)
	if err := reindexer.Run(context.Background()); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
