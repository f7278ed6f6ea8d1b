package executor

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/bitvec/resource"
)

// Config is the file form of the executor options.
//
//	min_array_size: 20000
//	parallelism: 8
//	logging:
//	  level: debug
//	  format: json
//	resources:
//	  memory_limit_bytes: 1073741824
//	  max_workers: 8
type Config struct {
	MinArraySize int             `yaml:"min_array_size"`
	Parallelism  int             `yaml:"parallelism"`
	Logging      LoggingConfig   `yaml:"logging"`
	Resources    resource.Config `yaml:"resources"`
}

// LoggingConfig selects the slog handler. An empty level disables logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" (default) or "json"
}

// DefaultConfig returns the configuration matching New with no options.
func DefaultConfig() Config {
	return Config{MinArraySize: DefaultMinArraySize}
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data. Missing fields keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MinArraySize < 0 {
		return fmt.Errorf("%w: min_array_size %d", ErrInvalidArgument, c.MinArraySize)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalidArgument, c.Parallelism)
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: logging format %q", ErrInvalidArgument, c.Logging.Format)
	}
	return nil
}

func (l LoggingConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, fmt.Errorf("%w: logging level %q", ErrInvalidArgument, l.Level)
	}
	return lvl, nil
}

// Options converts the config into executor options. A resource controller
// is only created when at least one limit is set.
func (c Config) Options() []Option {
	opts := []Option{
		WithMinArraySize(c.MinArraySize),
		WithParallelism(c.Parallelism),
	}

	if c.Logging.Level != "" {
		lvl, _ := c.Logging.level()
		if strings.EqualFold(c.Logging.Format, "json") {
			opts = append(opts, WithLogger(NewJSONLogger(lvl)))
		} else {
			opts = append(opts, WithLogger(NewTextLogger(lvl)))
		}
	}

	if c.Resources != (resource.Config{}) {
		opts = append(opts, WithResourceController(resource.NewController(c.Resources)))
	}
	return opts
}
