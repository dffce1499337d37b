package websearch

import "errors"

var (
	// ErrMissingAPIKey indicates the search client was built without credentials.
	ErrMissingAPIKey = errors.New("search API key is required")

	// ErrSearchStatus indicates the search API answered with a non-success status.
	ErrSearchStatus = errors.New("search API returned non-success status")

	// ErrInvalidAggregatorConfig indicates an aggregator option carried an unusable value.
	ErrInvalidAggregatorConfig = errors.New("invalid aggregator configuration")
)
