package rankspace

import "errors"

// ErrEmptyInput indicates an operation was asked to rank or grid-map an
// empty point set.
var ErrEmptyInput = errors.New("rankspace: point set must be non-empty")
