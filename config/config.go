// Package config loads the lvlopt configuration file and turns it into
// solver options and a logger.
//
// A configuration file is YAML with four optional sections:
//
//	simplex:
//	  iteration_limit: 100
//	  big_m: 1e6
//	  epsilon: 1e-7
//	  pivot_tolerance: 1e-10
//	  feasibility_tolerance: 1e-7
//	search:
//	  node_limit: 100
//	  strategy: BFS        # BFS | DFS | BestBound
//	  integrality_tolerance: 1e-6
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json
//	lang: en               # any embedded narration catalog
//
// Missing keys keep their defaults; unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlopt/branchbound"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/narrate"
	"github.com/katalvlaran/lvlopt/simplex"
)

// ErrInvalidConfig wraps every decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Simplex SimplexConfig `yaml:"simplex"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Lang    string        `yaml:"lang" validate:"language"`
}

// SimplexConfig mirrors simplex.Options.
type SimplexConfig struct {
	IterationLimit       int     `yaml:"iteration_limit" validate:"gte=0"`
	BigM                 float64 `yaml:"big_m" validate:"finite,gt=0"`
	Epsilon              float64 `yaml:"epsilon" validate:"finite,gte=0"`
	PivotTolerance       float64 `yaml:"pivot_tolerance" validate:"finite,gte=0"`
	FeasibilityTolerance float64 `yaml:"feasibility_tolerance" validate:"finite,gte=0"`
}

// SearchConfig mirrors the branch-and-bound options that make sense in a file.
type SearchConfig struct {
	NodeLimit            int     `yaml:"node_limit" validate:"gte=1"`
	Strategy             string  `yaml:"strategy" validate:"strategy"`
	IntegralityTolerance float64 `yaml:"integrality_tolerance" validate:"finite,gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("finite", lp.FiniteRule)
	_ = configValidate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := branchbound.ParseStrategy(fl.Field().String())
		return err == nil
	})
	_ = configValidate.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		lang := strings.ToLower(fl.Field().String())
		for _, code := range narrate.Languages() {
			if code == lang {
				return true
			}
		}
		return false
	})
}

// Default returns the configuration every missing key falls back to.
func Default() Config {
	so := simplex.DefaultOptions()
	bo := branchbound.DefaultOptions()

	return Config{
		Simplex: SimplexConfig{
			IterationLimit:       so.IterationLimit,
			BigM:                 so.BigM,
			Epsilon:              so.Epsilon,
			PivotTolerance:       so.PivotTolerance,
			FeasibilityTolerance: so.FeasibilityTolerance,
		},
		Search: SearchConfig{
			NodeLimit:            bo.NodeLimit,
			Strategy:             bo.Strategy.String(),
			IntegralityTolerance: bo.IntegralityTolerance,
		},
		Log:  LogConfig{Level: "info", Format: "text"},
		Lang: narrate.Fallback,
	}
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %v: %w", err, ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s=%v failed %q: %w", fe.Namespace(), fe.Value(), fe.Tag(), ErrInvalidConfig)
	}

	return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
}

// Marshal renders c as YAML in the format Parse accepts.
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }

// SimplexOptions maps the simplex section onto engine options.
func (c Config) SimplexOptions(logger *slog.Logger) simplex.Options {
	return simplex.Options{
		IterationLimit:       c.Simplex.IterationLimit,
		BigM:                 c.Simplex.BigM,
		Epsilon:              c.Simplex.Epsilon,
		PivotTolerance:       c.Simplex.PivotTolerance,
		FeasibilityTolerance: c.Simplex.FeasibilityTolerance,
		Logger:               logger,
	}
}

// SearchOptions maps the search section onto tree options. The sense is left
// at Maximize; callers solving a problem file set it from the problem.
func (c Config) SearchOptions(logger *slog.Logger) (branchbound.Options, error) {
	st, err := branchbound.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return branchbound.Options{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return branchbound.Options{
		NodeLimit:            c.Search.NodeLimit,
		Strategy:             st,
		Sense:                lp.Maximize,
		IntegralityTolerance: c.Search.IntegralityTolerance,
		Simplex:              c.SimplexOptions(logger),
		Logger:               logger,
	}, nil
}

// NewLogger builds a slog logger writing to w with the configured level and
// format.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	ho := &slog.HandlerOptions{Level: level}

	switch c.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, ho)), nil
	}

	return nil, fmt.Errorf("log format %q: %w", c.Log.Format, ErrInvalidConfig)
}
