package pico

import (
	"os"

	"github.com/picolang/pico/pkg/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the options that flow through the database on behalf of the
// surrounding tooling: watch mode, an optional config-file path, and the
// two GC tunables. It is assembled with functional options so that adding a
// future knob never breaks existing call sites.
type Config struct {
	Watch             bool
	ConfigPath        string
	MaxNodes          int
	MinRetainedEpochs Epoch
	Logger            *logrus.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithWatch enables continuous re-runs on source change (consumed by a
// watcher external to the engine; the engine only carries the flag).
func WithWatch(watch bool) Option {
	return func(c *Config) { c.Watch = watch }
}

// WithConfigPath sets the optional path to a host configuration file.
func WithConfigPath(path string) Option {
	return func(c *Config) { c.ConfigPath = path }
}

// WithMaxNodes sets the GC high-water mark: CollectGarbage runs
// automatically once the live derived-node count exceeds this.
func WithMaxNodes(n int) Option {
	return func(c *Config) { c.MaxNodes = n }
}

// WithMinRetainedEpochs protects nodes touched within this many epochs of
// the current one from LRU eviction, even when not explicitly retained.
// Zero disables the protection window entirely.
func WithMinRetainedEpochs(epochs Epoch) Option {
	return func(c *Config) { c.MinRetainedEpochs = epochs }
}

// WithLogger overrides the default logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// defaultMaxNodes and defaultMinRetainedEpochs are the GC tunables' chosen
// defaults.
const (
	defaultMaxNodes          = 10_000
	defaultMinRetainedEpochs = Epoch(2)
)

// NewConfig builds a Config from the given options, applying defaults for
// anything unset.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		MaxNodes:          defaultMaxNodes,
		MinRetainedEpochs: defaultMinRetainedEpochs,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = newDefaultLogger()
	}
	if err := validateConfig(c); err != nil {
		return nil, err
	}
	return c, nil
}

// configSchema validates the scalar fields of a Config the way the
// surrounding compiler's config file would be validated: each field gets
// its own schema, composed into an object schema.
func configSchema() *schema.ObjectSchema {
	return schema.Object(map[string]schema.Schema{
		"max_nodes":           &schema.NumberSchema{Positive: true, Integer: true},
		"min_retained_epochs": &schema.NumberSchema{Integer: true},
	})
}

func validateConfig(c *Config) error {
	if c.MaxNodes <= 0 {
		return errors.Errorf("pico: max_nodes must be positive, got %d", c.MaxNodes)
	}
	if c.ConfigPath != "" {
		if _, err := os.Stat(c.ConfigPath); err != nil {
			return errors.Wrapf(err, "pico: config path %q", c.ConfigPath)
		}
	}
	// Run the scalar fields through the same schema validators a parsed
	// config file would go through, so both paths share one source of truth.
	s := configSchema()
	_, err := s.Validate(map[string]any{
		"max_nodes":           c.MaxNodes,
		"min_retained_epochs": int(c.MinRetainedEpochs),
	})
	return err
}
