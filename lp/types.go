package lp

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sense is the optimisation direction.
type Sense int

const (
	// Maximize is the zero value: problems default to maximisation.
	Maximize Sense = iota
	// Minimize requests minimisation.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// ParseSense accepts max, maximize, maximise, min, minimize, minimise (any case).
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSense, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sense) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseSense(raw)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Sense) MarshalYAML() (interface{}, error) { return s.String(), nil }

// Relation is the comparison of a constraint row against its RHS.
type Relation int

const (
	// LE is a·x ≤ b (the zero value).
	LE Relation = iota
	// EQ is a·x = b.
	EQ
	// GE is a·x ≥ b.
	GE
)

// String returns "<=", "=" or ">=".
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Flip returns the relation obtained by multiplying the row by -1.
func (r Relation) Flip() Relation {
	switch r {
	case LE:
		return GE
	case GE:
		return LE
	default:
		return r
	}
}

// ParseRelation accepts <=, ≤, le, =, ==, eq, >=, ≥, ge.
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<=", "≤", "le":
		return LE, nil
	case "=", "==", "eq":
		return EQ, nil
	case ">=", "≥", "ge":
		return GE, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidRelation, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Relation) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRelation(raw)
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Relation) MarshalYAML() (interface{}, error) { return r.String(), nil }

// Constraint is one row a·x (rel) b.
type Constraint struct {
	Coeffs []float64 `yaml:"coeffs" validate:"required,dive,finite"`
	Rel    Relation  `yaml:"rel" validate:"gte=0,lte=2"`
	RHS    float64   `yaml:"rhs" validate:"finite"`
}

// Problem is an LP/MILP in the rich form: per-row relations plus optional
// integer-designated variables. All decision variables are implicitly ≥ 0.
type Problem struct {
	Name        string       `yaml:"name,omitempty"`
	Sense       Sense        `yaml:"sense" validate:"gte=0,lte=1"`
	Objective   []float64    `yaml:"objective" validate:"required,min=1,dive,finite"`
	Constraints []Constraint `yaml:"constraints" validate:"dive"`
	Integer     []int        `yaml:"integer,omitempty" validate:"dive,gte=0"`
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int { return len(p.Objective) }

// Maximize reports whether the problem maximises.
func (p *Problem) Maximize() bool { return p.Sense == Maximize }

// FromRaw builds a Problem from the raw all-≤ form used by the engines.
// The input is checked with ValidateRaw first; the slices are copied.
func FromRaw(c []float64, A [][]float64, b []float64, sense Sense) (*Problem, error) {
	if err := ValidateRaw(c, A, b); err != nil {
		return nil, err
	}
	p := &Problem{Sense: sense, Objective: append([]float64(nil), c...)}
	for i := range A {
		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: append([]float64(nil), A[i]...),
			Rel:    LE,
			RHS:    b[i],
		})
	}

	return p, nil
}
