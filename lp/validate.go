package lp

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// problemValidate is the validator instance for Problem and Constraint.
// The "finite" rule rejects NaN and ±Inf floats.
var problemValidate *validator.Validate

func init() {
	problemValidate = validator.New()
	_ = problemValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite reports whether a float field holds a finite value.
// Non-float kinds pass; the tag is only placed on float fields.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// FiniteRule exposes the "finite" validator so other packages (config) can
// register the same rule on their own validator instances.
func FiniteRule(fl validator.FieldLevel) bool { return validateFinite(fl) }

// ValidateRaw checks the raw all-≤ input of the engines and fails fast on
// the first malformed element.
//
// Error priority: empty objective -> row count -> row length -> non-finite.
//
// Complexity: O(m·n).
func ValidateRaw(c []float64, A [][]float64, b []float64) error {
	var (
		n    = len(c)
		i, j int
	)
	if n == 0 {
		return ErrEmptyObjective
	}
	if len(A) != len(b) {
		return fmt.Errorf("A has %d rows, b has %d entries: %w", len(A), len(b), ErrDimensionMismatch)
	}
	for i = range A {
		if len(A[i]) != n {
			return fmt.Errorf("row %d has %d coefficients, want %d: %w", i+1, len(A[i]), n, ErrDimensionMismatch)
		}
	}
	for j = 0; j < n; j++ {
		if !isFinite(c[j]) {
			return fmt.Errorf("objective coefficient %d: %w", j+1, ErrNonFinite)
		}
	}
	for i = range A {
		for j = 0; j < n; j++ {
			if !isFinite(A[i][j]) {
				return fmt.Errorf("A[%d][%d]: %w", i+1, j+1, ErrNonFinite)
			}
		}
		if !isFinite(b[i]) {
			return fmt.Errorf("b[%d]: %w", i+1, ErrNonFinite)
		}
	}

	return nil
}

// Validate checks the rich problem form.
//
// Implementation:
//   - Stage 1: struct tags through go-playground/validator (non-empty
//     objective, finite values, known relation/sense, non-negative integer
//     indices). Tag failures are mapped onto the package sentinels.
//   - Stage 2: cross-field shape checks the tags cannot express (row length
//     == len(Objective), integer index < len(Objective)).
func (p *Problem) Validate() error {
	if p == nil {
		return fmt.Errorf("nil problem: %w", ErrInvalidProblem)
	}
	if err := problemValidate.Struct(p); err != nil {
		return mapValidationError(err)
	}

	var (
		n = len(p.Objective)
		i int
	)
	for i = range p.Constraints {
		if len(p.Constraints[i].Coeffs) != n {
			return fmt.Errorf("constraint %d has %d coefficients, want %d: %w",
				i+1, len(p.Constraints[i].Coeffs), n, ErrDimensionMismatch)
		}
	}
	for _, idx := range p.Integer {
		if idx >= n {
			return fmt.Errorf("index %d with %d variables: %w", idx, n, ErrIntegerIndex)
		}
	}

	return nil
}

// mapValidationError translates the first validator failure into a sentinel.
func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%v: %w", err, ErrInvalidProblem)
	}
	fe := verrs[0]
	switch {
	case fe.Tag() == "finite":
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrNonFinite)
	case fe.Field() == "Objective":
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrEmptyObjective)
	case fe.Field() == "Rel":
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrInvalidRelation)
	case fe.Field() == "Sense":
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrInvalidSense)
	case strings.HasPrefix(fe.Field(), "Integer"):
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrIntegerIndex)
	case fe.Field() == "Coeffs":
		return fmt.Errorf("%s: %w", fe.Namespace(), ErrDimensionMismatch)
	}

	return fmt.Errorf("%s failed %q: %w", fe.Namespace(), fe.Tag(), ErrInvalidProblem)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
