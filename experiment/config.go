// SPDX-License-Identifier: MIT

// Package experiment runs batches of tabu searches over instance files and
// records the best solution and wall-clock time of every configuration.
package experiment

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabuqbf/tabu"
)

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Constraint selects how prohibited triples are enforced.
type Constraint string

const (
	// ConstraintNone ignores triples.
	ConstraintNone Constraint = "none"

	// ConstraintValidate runs the exhaustive per-move feasibility check.
	ConstraintValidate Constraint = "validate"

	// ConstraintPrune drops candidates that would complete a triple.
	ConstraintPrune Constraint = "prune"
)

// Config describes a batch: every instance is solved with every tenure ×
// experiment combination.
type Config struct {
	Instances   []string     `yaml:"instances" validate:"required,min=1,dive,required"`
	InstanceDir string       `yaml:"instanceDir" validate:"required"`
	OutputDir   string       `yaml:"outputDir" validate:"required"`
	Iterations  int          `yaml:"iterations" validate:"gte=1"`
	Tenures     []int        `yaml:"tenures" validate:"required,min=1,dive,gte=1"`
	Seed        int64        `yaml:"seed"`
	Parallel    int          `yaml:"parallel" validate:"gte=1"`
	Constraint  Constraint   `yaml:"constraint" validate:"oneof=none validate prune"`
	Experiments []Experiment `yaml:"experiments" validate:"required,min=1,dive"`
}

// Experiment is one strategy configuration.
type Experiment struct {
	Key                 string  `yaml:"key" validate:"required"`
	LocalSearch         string  `yaml:"localSearch" validate:"oneof=first-improving best-improving"`
	Strategy            string  `yaml:"strategy" validate:"oneof=default prob diversification"`
	Probability         float64 `yaml:"probability" validate:"gte=0,lte=1"`
	DiversificationStep int     `yaml:"diversificationStep" validate:"gte=0"`
}

var configValidate = validator.New()

// DefaultConfig reproduces the classic study: seven qbfNNN instances,
// tenures 20 and 100, 10000 iterations and twelve experiments.
func DefaultConfig() *Config {
	exps := []Experiment{
		{Key: "DEFAULT_FIRST", LocalSearch: "first-improving", Strategy: tabu.KindDefault},
		{Key: "DEFAULT_BEST", LocalSearch: "best-improving", Strategy: tabu.KindDefault},
	}
	for _, p := range []float64{0.25, 0.5, 0.75} {
		exps = append(exps,
			Experiment{Key: fmt.Sprintf("PROB_%g_FIRST", p), LocalSearch: "first-improving", Strategy: tabu.KindProbabilistic, Probability: p},
			Experiment{Key: fmt.Sprintf("PROB_%g_BEST", p), LocalSearch: "best-improving", Strategy: tabu.KindProbabilistic, Probability: p},
		)
	}
	for _, step := range []int{100, 10} {
		exps = append(exps,
			Experiment{Key: fmt.Sprintf("DIV_%d_FIRST", step), LocalSearch: "first-improving", Strategy: tabu.KindDiversification, DiversificationStep: step},
			Experiment{Key: fmt.Sprintf("DIV_%d_BEST", step), LocalSearch: "best-improving", Strategy: tabu.KindDiversification, DiversificationStep: step},
		)
	}

	return &Config{
		Instances:   []string{"qbf020", "qbf040", "qbf060", "qbf080", "qbf100", "qbf200", "qbf400"},
		InstanceDir: "instances",
		OutputDir:   "results",
		Iterations:  10000,
		Tenures:     []int{20, 100},
		Seed:        0,
		Parallel:    1,
		Constraint:  ConstraintPrune,
		Experiments: exps,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys absent from the file keep their default values; a non-empty list
// replaces the default list entirely.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("experiment: read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("experiment: parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags first, then the rules that span fields:
// unique experiment keys and the per-experiment rules of Experiment.Validate.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Experiments))
	for i, e := range c.Experiments {
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w: experiments[%d]: duplicate key %q", ErrInvalidConfig, i, e.Key)
		}
		seen[e.Key] = struct{}{}
		if err := e.Validate(); err != nil {
			return fmt.Errorf("experiments[%d]: %w", i, err)
		}
	}
	for i, name := range c.Instances {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: instances[%d] %q: must be a file name inside instanceDir", ErrInvalidConfig, i, name)
		}
	}

	return nil
}

// Validate checks one experiment: tags, a probability in (0,1] for "prob"
// and a positive step for "diversification".
func (e Experiment) Validate() error {
	if err := configValidate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch e.Strategy {
	case tabu.KindProbabilistic:
		if e.Probability <= 0 {
			return fmt.Errorf("%w: %s: probability must be in (0,1]", ErrInvalidConfig, e.Key)
		}
	case tabu.KindDiversification:
		if e.DiversificationStep < 1 {
			return fmt.Errorf("%w: %s: diversificationStep must be positive", ErrInvalidConfig, e.Key)
		}
	}

	return nil
}
