// SPDX-License-Identifier: MIT

package fusion

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/kernel"
	"gopkg.in/yaml.v3"
)

// Default run settings applied by ApplyDefaults.
const (
	DefaultMethod     = combine.Equal
	DefaultComponents = 2
	DefaultTop        = 10
)

// BlockConfig describes one data modality.
type BlockConfig struct {
	Name   string        `yaml:"name"`
	Path   string        `yaml:"path"` // CSV file; relative paths resolve against the config file
	Kernel kernel.Params `yaml:"kernel"`
}

// CombineConfig carries the optional solver knobs. Unset fields keep the
// combine package defaults; for the integer knobs 0 means unset, since
// neither accepts 0. The float knobs are pointers so that an explicit
// `lambda: 0` or `ridge: 0` is honoured.
type CombineConfig struct {
	Neighbors int      `yaml:"neighbors,omitempty"`
	Lambda    *float64 `yaml:"lambda,omitempty"`    // finite, >= 0
	Entropy   *float64 `yaml:"entropy,omitempty"`   // finite, > 0
	Ridge     *float64 `yaml:"ridge,omitempty"`     // finite, >= 0
	MaxIter   int      `yaml:"max_iter,omitempty"`
	Tolerance *float64 `yaml:"tolerance,omitempty"` // finite, > 0
}

// ImportanceConfig enables permutation importance.
type ImportanceConfig struct {
	Enabled  bool                `yaml:"enabled"`
	Workers  int                 `yaml:"workers,omitempty"`  // 0 = GOMAXPROCS
	Features map[string][]string `yaml:"features,omitempty"` // block → features; empty = all
	Top      int                 `yaml:"top,omitempty"`      // features listed per block and component in reports
}

// Config is one integration run.
type Config struct {
	Blocks     []BlockConfig    `yaml:"blocks"`
	Method     string           `yaml:"method"`
	Components int              `yaml:"components"`
	Seed       int64            `yaml:"seed"`
	Combine    CombineConfig    `yaml:"combine"`
	Importance ImportanceConfig `yaml:"importance"`

	dir string // directory of the file the config was loaded from
}

// LoadConfig reads a YAML run configuration from path; relative block paths
// resolve against its directory. See ReadConfig.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fusion: open config: %w", err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	cfg.dir = filepath.Dir(path)

	return cfg, nil
}

// ReadConfig decodes a YAML run configuration, rejecting unknown keys, then
// applies defaults and validates it.
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills unset run settings.
func (c *Config) ApplyDefaults() {
	if c.Method == "" {
		c.Method = string(DefaultMethod)
	}
	if c.Components == 0 {
		c.Components = DefaultComponents
	}
	if c.Importance.Top == 0 {
		c.Importance.Top = DefaultTop
	}
}

// Validate reports every problem of the configuration at once, as an
// ErrInvalidConfig wrapping a *multierror.Error.
func (c *Config) Validate() error {
	var result *multierror.Error

	if len(c.Blocks) == 0 {
		result = multierror.Append(result, fmt.Errorf("no blocks configured"))
	}
	seen := make(map[string]bool, len(c.Blocks))
	for i, b := range c.Blocks {
		if b.Name == "" {
			result = multierror.Append(result, fmt.Errorf("blocks[%d]: name is required", i))
		} else if seen[b.Name] {
			result = multierror.Append(result, fmt.Errorf("blocks[%d]: duplicate name %q", i, b.Name))
		}
		seen[b.Name] = true
		if _, err := kernel.ParseFunc(b.Kernel); err != nil {
			result = multierror.Append(result, fmt.Errorf("blocks[%d] %q: %w", i, b.Name, err))
		}
	}
	if _, err := combine.ParseMethod(c.Method); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Components < 1 {
		result = multierror.Append(result, fmt.Errorf("components must be >= 1, got %d", c.Components))
	}

	cc := c.Combine
	if cc.Neighbors < 0 {
		result = multierror.Append(result, fmt.Errorf("combine.neighbors must be >= 0, got %d", cc.Neighbors))
	}
	if cc.MaxIter < 0 {
		result = multierror.Append(result, fmt.Errorf("combine.max_iter must be >= 0, got %d", cc.MaxIter))
	}
	// Same bounds as the combine.With* constructors, which panic outside them.
	for _, f := range []struct {
		name     string
		v        *float64
		positive bool
	}{
		{"lambda", cc.Lambda, false},
		{"entropy", cc.Entropy, true},
		{"ridge", cc.Ridge, false},
		{"tolerance", cc.Tolerance, true},
	} {
		if f.v == nil {
			continue
		}
		v := *f.v
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			result = multierror.Append(result, fmt.Errorf("combine.%s must be finite, got %g", f.name, v))
		case f.positive && v <= 0:
			result = multierror.Append(result, fmt.Errorf("combine.%s must be > 0, got %g", f.name, v))
		case v < 0:
			result = multierror.Append(result, fmt.Errorf("combine.%s must be >= 0, got %g", f.name, v))
		}
	}

	imp := c.Importance
	if imp.Workers < 0 {
		result = multierror.Append(result, fmt.Errorf("importance.workers must be >= 0, got %d", imp.Workers))
	}
	if imp.Top < 0 {
		result = multierror.Append(result, fmt.Errorf("importance.top must be >= 0, got %d", imp.Top))
	}
	for name := range imp.Features {
		if !seen[name] {
			result = multierror.Append(result, fmt.Errorf("importance.features: unknown block %q", name))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// combineOptions maps the set knobs onto combine options. Validate must
// have passed.
func (c *Config) combineOptions() []combine.Option {
	var opts []combine.Option
	cc := c.Combine
	if cc.Neighbors > 0 {
		opts = append(opts, combine.WithNeighbors(cc.Neighbors))
	}
	if cc.Lambda != nil {
		opts = append(opts, combine.WithLambda(*cc.Lambda))
	}
	if cc.Entropy != nil {
		opts = append(opts, combine.WithEntropy(*cc.Entropy))
	}
	if cc.Ridge != nil {
		opts = append(opts, combine.WithRidge(*cc.Ridge))
	}
	if cc.MaxIter > 0 {
		opts = append(opts, combine.WithMaxIter(cc.MaxIter))
	}
	if cc.Tolerance != nil {
		opts = append(opts, combine.WithTolerance(*cc.Tolerance))
	}

	return opts
}

// resolve returns p relative to the config file's directory.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}

	return filepath.Join(c.dir, p)
}
