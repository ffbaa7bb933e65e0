package main

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".treefuzz"
	configType = "yaml"
	envPrefix  = "TREEFUZZ"

	DefaultLogLevel = "info"
	DefaultSeed     = 1
	DefaultOps      = 20000
	DefaultKeySpace = 1 << 10
	DefaultWorkers  = 4
	DefaultBenchN   = 1 << 16
)

var DefaultStrategies = []string{"bin", "avl", "rb", "treap", "splay", "sb", "rand"}

// Config of a treefuzz invocation. Precedence, lowest first: defaults,
// config file, TREEFUZZ_* environment variables, flags.
type Config struct {
	LogLevel   string   `mapstructure:"log_level"`
	Seed       uint64   `mapstructure:"seed"`
	Strategies []string `mapstructure:"strategies"`
	Ops        int      `mapstructure:"ops"`
	KeySpace   int      `mapstructure:"keyspace"`
	Workers    int      `mapstructure:"workers"`
	BenchN     int      `mapstructure:"bench_n"`
}

// LoadConfig reads the configuration. A missing config file isn't an error
// unless path names one explicitly.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("strategies", DefaultStrategies)
	v.SetDefault("ops", DefaultOps)
	v.SetDefault("keyspace", DefaultKeySpace)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("bench_n", DefaultBenchN)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			}
		})
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &c, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Ops <= 0 {
		return errors.Errorf("ops must be positive, got %d", c.Ops)
	} else if c.KeySpace <= 0 {
		return errors.Errorf("keyspace must be positive, got %d", c.KeySpace)
	} else if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	} else if c.BenchN <= 0 {
		return errors.Errorf("bench_n must be positive, got %d", c.BenchN)
	} else if len(c.Strategies) == 0 {
		return errors.New("no strategy selected")
	}
	for _, s := range c.Strategies {
		if !slices.Contains(DefaultStrategies, s) {
			return errors.Errorf("unknown strategy %q, want one of %v", s, DefaultStrategies)
		}
	}
	return nil
}
