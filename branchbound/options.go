package branchbound

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

// Defaults.
const (
	DefaultNodeLimit            = 100
	DefaultIntegralityTolerance = 1e-6
)

// Options configures a Tree.
//
// NodeLimit            – maximum arena size, root included. Must be ≥ 1.
// Strategy             – frontier policy (BFS by default).
// Sense                – Maximize (zero value) or Minimize.
// IntegralityTolerance – |v - round(v)| ≤ tol counts as integral. Must be ≥ 0.
// Simplex              – options for every relaxation; its Logger is ignored.
// Logger               – tree logger; nil means slog.Default().
type Options struct {
	NodeLimit            int
	Strategy             Strategy
	Sense                lp.Sense
	IntegralityTolerance float64
	Simplex              simplex.Options
	Logger               *slog.Logger
}

// DefaultOptions returns NodeLimit 100, BFS, Maximize, tolerance 1e-6 and
// simplex.DefaultOptions().
func DefaultOptions() Options {
	return Options{
		NodeLimit:            DefaultNodeLimit,
		Strategy:             BFS,
		Sense:                lp.Maximize,
		IntegralityTolerance: DefaultIntegralityTolerance,
		Simplex:              simplex.DefaultOptions(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithOptions replaces the whole option set.
func WithOptions(o Options) Option { return func(dst *Options) { *dst = o } }

// WithNodeLimit sets the arena size limit.
func WithNodeLimit(n int) Option { return func(o *Options) { o.NodeLimit = n } }

// WithStrategy sets the frontier policy.
func WithStrategy(s Strategy) Option { return func(o *Options) { o.Strategy = s } }

// WithSense sets the optimisation direction.
func WithSense(s lp.Sense) Option { return func(o *Options) { o.Sense = s } }

// WithSimplexOptions sets the relaxation options.
func WithSimplexOptions(so simplex.Options) Option { return func(o *Options) { o.Simplex = so } }

// WithLogger sets the tree logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Validate checks every field domain, including the nested simplex options.
func (o Options) Validate() error {
	if o.NodeLimit < 1 {
		return fmt.Errorf("node limit %d: %w", o.NodeLimit, ErrInvalidOptions)
	}
	if o.Strategy < BFS || o.Strategy > BestBound {
		return fmt.Errorf("strategy %d: %w", int(o.Strategy), ErrInvalidOptions)
	}
	if o.Sense != lp.Maximize && o.Sense != lp.Minimize {
		return fmt.Errorf("sense %d: %w", int(o.Sense), ErrInvalidOptions)
	}
	if !(o.IntegralityTolerance >= 0) {
		return fmt.Errorf("integrality tolerance %g: %w", o.IntegralityTolerance, ErrInvalidOptions)
	}
	if err := o.Simplex.Validate(); err != nil {
		return fmt.Errorf("relaxation options: %w", err)
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
