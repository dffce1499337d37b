package websearch

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// Client is a single-query web search capability.
//
// Implementations may fail or return an empty list; the aggregator treats
// both the same way. The context carries the per-call timeout.
type Client interface {
	SearchOnce(ctx context.Context, query string, maxResults int) ([]core.EvidenceItem, error)
}
