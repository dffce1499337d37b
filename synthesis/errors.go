package synthesis

import "errors"

// ErrNilGenerator indicates the synthesizer was built without a text generator.
var ErrNilGenerator = errors.New("text generator must not be nil")
