// SPDX-License-Identifier: MIT
package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite defaults; a zero field in a loaded config falls back to these.
const (
	DefaultRegion         = 100.0
	DefaultMaxDistance    = 35.0
	DefaultSeedBase       = 42
	DefaultRepetitions    = 5
	DefaultFragmentLength = 15
	DefaultSequenceLength = 200
	DefaultMinOverlap     = 3
)

// Config carries the parameters of both experiment suites.
type Config struct {
	Corridor CorridorConfig `yaml:"corridor"`
	Assembly AssemblyConfig `yaml:"assembly"`
}

// CorridorConfig parameterizes the corridor-design suite.
type CorridorConfig struct {
	// Sizes lists the landscape sizes to measure, in run order.
	Sizes []int `yaml:"sizes"`

	// Region is the side of the square the patches scatter over, km.
	Region float64 `yaml:"region"`

	// MaxDistance is the corridor feasibility range, km.
	MaxDistance float64 `yaml:"max_distance"`

	// SeedBase seeds each size's landscape as base+size.
	SeedBase int64 `yaml:"seed_base"`

	// Repetitions is how many times each solve is timed.
	Repetitions int `yaml:"repetitions"`
}

// AssemblyConfig parameterizes the fragment-assembly suite.
type AssemblyConfig struct {
	// Sizes lists the fragment counts to measure, in run order.
	Sizes []int `yaml:"sizes"`

	// FragmentLength and SequenceLength shape each generated read set.
	FragmentLength int `yaml:"fragment_length"`
	SequenceLength int `yaml:"sequence_length"`

	// MinOverlap is the shortest join the overlap graph records.
	MinOverlap int `yaml:"min_overlap"`

	// SeedBase seeds each size's read set as base+size.
	SeedBase int64 `yaml:"seed_base"`

	// Repetitions is how many times each heuristic is timed.
	Repetitions int `yaml:"repetitions"`
}

// DefaultConfig returns the reference suite: landscapes of 10..50 patches in
// steps of 5 over a 100 km region, read sets of 10..40 fragments.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load returns the configuration at path, or the defaults when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads a config file, filling absent fields with defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the config to path so a run can be reproduced later.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// applyDefaults fills zero fields; explicit values are never overridden.
func (c *Config) applyDefaults() {
	if len(c.Corridor.Sizes) == 0 {
		c.Corridor.Sizes = sizeRange(10, 50, 5)
	}
	if c.Corridor.Region == 0 {
		c.Corridor.Region = DefaultRegion
	}
	if c.Corridor.MaxDistance == 0 {
		c.Corridor.MaxDistance = DefaultMaxDistance
	}
	if c.Corridor.SeedBase == 0 {
		c.Corridor.SeedBase = DefaultSeedBase
	}
	if c.Corridor.Repetitions == 0 {
		c.Corridor.Repetitions = DefaultRepetitions
	}

	if len(c.Assembly.Sizes) == 0 {
		c.Assembly.Sizes = sizeRange(10, 40, 5)
	}
	if c.Assembly.FragmentLength == 0 {
		c.Assembly.FragmentLength = DefaultFragmentLength
	}
	if c.Assembly.SequenceLength == 0 {
		c.Assembly.SequenceLength = DefaultSequenceLength
	}
	if c.Assembly.MinOverlap == 0 {
		c.Assembly.MinOverlap = DefaultMinOverlap
	}
	if c.Assembly.SeedBase == 0 {
		c.Assembly.SeedBase = DefaultSeedBase
	}
	if c.Assembly.Repetitions == 0 {
		c.Assembly.Repetitions = DefaultRepetitions
	}
}

// Validate rejects parameter combinations the suites cannot run.
func (c *Config) Validate() error {
	if len(c.Corridor.Sizes) == 0 {
		return fmt.Errorf("%w: corridor sizes must not be empty", ErrInvalidConfig)
	}
	for _, n := range c.Corridor.Sizes {
		if n < 2 {
			return fmt.Errorf("%w: corridor size %d cannot hold distinct source and sink", ErrInvalidConfig, n)
		}
	}
	if c.Corridor.Region <= 0 {
		return fmt.Errorf("%w: corridor region must be positive", ErrInvalidConfig)
	}
	if c.Corridor.MaxDistance <= 0 {
		return fmt.Errorf("%w: corridor max distance must be positive", ErrInvalidConfig)
	}
	if c.Corridor.Repetitions < 1 {
		return fmt.Errorf("%w: corridor repetitions must be at least 1", ErrInvalidConfig)
	}

	if len(c.Assembly.Sizes) == 0 {
		return fmt.Errorf("%w: assembly sizes must not be empty", ErrInvalidConfig)
	}
	for _, n := range c.Assembly.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: assembly size %d has nothing to assemble", ErrInvalidConfig, n)
		}
	}
	if c.Assembly.FragmentLength < 1 || c.Assembly.FragmentLength > c.Assembly.SequenceLength {
		return fmt.Errorf("%w: fragment length must fit the sequence", ErrInvalidConfig)
	}
	if c.Assembly.MinOverlap < 1 {
		return fmt.Errorf("%w: assembly min overlap must be at least 1", ErrInvalidConfig)
	}
	if c.Assembly.Repetitions < 1 {
		return fmt.Errorf("%w: assembly repetitions must be at least 1", ErrInvalidConfig)
	}

	return nil
}

// sizeRange enumerates from..to inclusive in the given step.
func sizeRange(from, to, step int) []int {
	var sizes []int
	for n := from; n <= to; n += step {
		sizes = append(sizes, n)
	}

	return sizes
}
