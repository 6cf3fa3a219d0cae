package lp

import "errors"

// Sentinel errors. Context (row, column, field) is attached with %w at the
// detection site.
var (
	// ErrEmptyObjective is returned when the objective vector has no entries.
	ErrEmptyObjective = errors.New("lp: objective vector is empty")

	// ErrDimensionMismatch is returned when len(A) != len(b) or a row of A
	// does not have exactly len(c) coefficients.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNonFinite is returned when a coefficient or RHS is NaN or ±Inf.
	ErrNonFinite = errors.New("lp: non-finite value")

	// ErrIntegerIndex is returned when an integer-variable index is outside [0, n).
	ErrIntegerIndex = errors.New("lp: integer variable index out of range")

	// ErrInvalidRelation is returned for an unknown constraint relation.
	ErrInvalidRelation = errors.New("lp: invalid constraint relation")

	// ErrInvalidSense is returned for an unknown optimisation sense.
	ErrInvalidSense = errors.New("lp: invalid optimisation sense")

	// ErrInvalidProblem wraps any other structural validation failure.
	ErrInvalidProblem = errors.New("lp: invalid problem")

	// ErrNoConstraints is returned by Dual for a problem without rows.
	ErrNoConstraints = errors.New("lp: problem has no constraints")
)
