package chunking

import "errors"

// ErrInvalidChunkSize indicates a chunker option carried an unusable value.
var ErrInvalidChunkSize = errors.New("invalid chunk size configuration")
