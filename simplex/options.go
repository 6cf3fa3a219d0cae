package simplex

import (
	"fmt"
	"log/slog"
	"math"
)

// Default tolerances and limits.
const (
	DefaultIterationLimit       = 100
	DefaultBigM                 = 1e6
	DefaultEpsilon              = 1e-7
	DefaultPivotTolerance       = 1e-10
	DefaultFeasibilityTolerance = 1e-7
)

// Options configures an Engine.
//
// IterationLimit       – maximum number of pivots; 0 allows none. Must be ≥ 0.
// BigM                 – artificial-variable penalty. Must be > 0.
// Epsilon              – optimality tolerance on reduced costs. Must be ≥ 0.
// PivotTolerance       – minimum positive column entry eligible in the ratio test.
// FeasibilityTolerance – a basic artificial above this value means Infeasible.
// Logger               – structured logger; nil means slog.Default().
type Options struct {
	IterationLimit       int
	BigM                 float64
	Epsilon              float64
	PivotTolerance       float64
	FeasibilityTolerance float64
	Logger               *slog.Logger
}

// DefaultOptions returns the defaults listed on the constants above.
func DefaultOptions() Options {
	return Options{
		IterationLimit:       DefaultIterationLimit,
		BigM:                 DefaultBigM,
		Epsilon:              DefaultEpsilon,
		PivotTolerance:       DefaultPivotTolerance,
		FeasibilityTolerance: DefaultFeasibilityTolerance,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithOptions replaces the whole option set; later options still apply on top.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithIterationLimit sets the maximum number of pivots.
func WithIterationLimit(n int) Option {
	return func(o *Options) { o.IterationLimit = n }
}

// WithBigM sets the artificial penalty.
func WithBigM(m float64) Option {
	return func(o *Options) { o.BigM = m }
}

// WithEpsilon sets the optimality tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Validate checks every field domain.
func (o Options) Validate() error {
	switch {
	case o.IterationLimit < 0:
		return fmt.Errorf("iteration limit %d: %w", o.IterationLimit, ErrInvalidOptions)
	case !(o.BigM > 0) || math.IsInf(o.BigM, 0):
		return fmt.Errorf("big-M %g: %w", o.BigM, ErrInvalidOptions)
	case !(o.Epsilon >= 0) || math.IsInf(o.Epsilon, 0):
		return fmt.Errorf("epsilon %g: %w", o.Epsilon, ErrInvalidOptions)
	case !(o.PivotTolerance >= 0) || math.IsInf(o.PivotTolerance, 0):
		return fmt.Errorf("pivot tolerance %g: %w", o.PivotTolerance, ErrInvalidOptions)
	case !(o.FeasibilityTolerance >= 0) || math.IsInf(o.FeasibilityTolerance, 0):
		return fmt.Errorf("feasibility tolerance %g: %w", o.FeasibilityTolerance, ErrInvalidOptions)
	}

	return nil
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}
