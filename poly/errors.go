package poly

import "errors"

// ErrCannotFactor is returned by Factor when the input polynomial does not
// split completely into linear factors over the field. Callers typically
// fall back to log-based decoding when they see this error.
var ErrCannotFactor = errors.New("poly: polynomial does not split completely over the field")
