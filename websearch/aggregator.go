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


package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/searchit/core"
)

const (
	// DefaultPoolSize bounds concurrent search calls.
	DefaultPoolSize = 8
	// DefaultSearchTimeout is the per-call deadline for one search.
	DefaultSearchTimeout = 30 * time.Second
)

// Aggregator fans one query list out over the search client, then merges,
// deduplicates and ranks the combined evidence.
type Aggregator struct {
	client  Client
	pool    *ants.Pool
	timeout time.Duration
	logger  *slog.Logger
}

// AggregatorOption is a functional option for configuring an Aggregator.
type AggregatorOption func(*Aggregator) error

// WithPoolSize bounds the number of concurrent search calls.
func WithPoolSize(size int) AggregatorOption {
	return func(a *Aggregator) error {
		if size <= 0 {
			return fmt.Errorf("%w: pool size must be positive, got %d", ErrInvalidAggregatorConfig, size)
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if a.pool != nil {
			a.pool.Release()
		}
		a.pool = pool
		return nil
	}
}

// WithSearchTimeout sets the per-call deadline. Expiry is a normal per-call
// failure: the expired call contributes nothing and siblings keep running.
func WithSearchTimeout(timeout time.Duration) AggregatorOption {
	return func(a *Aggregator) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: search timeout must be positive, got %s", ErrInvalidAggregatorConfig, timeout)
		}
		a.timeout = timeout
		return nil
	}
}

// NewAggregator creates an Aggregator over the given search client.
func NewAggregator(client Client, opts ...AggregatorOption) (*Aggregator, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client must not be nil", ErrInvalidAggregatorConfig)
	}

	a := &Aggregator{
		client:  client,
		timeout: DefaultSearchTimeout,
		logger:  slog.Default().With("component", "aggregator"),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.pool == nil {
		pool, err := ants.NewPool(DefaultPoolSize)
		if err != nil {
			return nil, err
		}
		a.pool = pool
	}

	return a, nil
}

// SearchMultiple issues one search per query concurrently, waits for all of
// them, and returns the merged evidence in final rank order. A failed or
// timed-out query is logged and contributes zero items.
//
// The only error conditions are context cancellation and a worker pool that
// can no longer accept tasks.
func (a *Aggregator) SearchMultiple(ctx context.Context, queries []string, resultsPerQuery int) ([]core.EvidenceItem, error) {
	if len(queries) == 0 {
		return []core.EvidenceItem{}, nil
	}

	a.logger.Info("executing parallel searches", "count", len(queries))

	// Indexed so output order derives from query order, not completion order.
	perQuery := make([][]core.EvidenceItem, len(queries))
	var wg sync.WaitGroup

	for i, query := range queries {
		wg.Add(1)
		idx, q := i, query
		err := a.pool.Submit(func() {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			items, err := a.client.SearchOnce(callCtx, q, resultsPerQuery)
			if err != nil {
				a.logger.Warn("search failed", "query", q, "err", err)
				return
			}
			perQuery[idx] = items
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make([]core.EvidenceItem, 0)
	for _, items := range perQuery {
		merged = append(merged, items...)
	}

	ranked := rankResults(dedupeByURL(merged))
	a.logger.Info("found unique results", "count", len(ranked))
	return ranked, nil
}

// Release frees the worker pool. The aggregator must not be used afterwards.
func (a *Aggregator) Release() {
	a.pool.Release()
}
