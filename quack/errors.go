package quack

import (
	"fmt"

	"github.com/thearossman/quack/poly"
)

// ErrCannotFactor is returned by DecodeByFactorization when the sketch's
// polynomial does not split completely over the field. It wraps
// poly.ErrCannotFactor. Callers typically fall back to DecodeWithLog.
var ErrCannotFactor = fmt.Errorf("quack: cannot decode by factorization: %w", poly.ErrCannotFactor)
