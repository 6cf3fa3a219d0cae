package simplex

import (
	"errors"

	"github.com/katalvlaran/lvlopt/lp"
)

var (
	// ErrNotOptimal is returned by post-run accessors unless the run ended Optimal.
	ErrNotOptimal = errors.New("simplex: run did not end optimal")

	// ErrInvalidOptions is returned by Initialize for out-of-domain Options.
	ErrInvalidOptions = errors.New("simplex: invalid options")
)

// Input errors are the lp sentinels, re-exported so callers of this package
// can match them without importing lp.
var (
	ErrEmptyObjective    = lp.ErrEmptyObjective
	ErrDimensionMismatch = lp.ErrDimensionMismatch
	ErrNonFinite         = lp.ErrNonFinite
)
