// Package config loads lanedot settings from flags, environment variables
// and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Bench    BenchConfig `mapstructure:"bench"`
	LogLevel string      `mapstructure:"log_level"`
}

type BenchConfig struct {
	// Sizes is the list of input lengths to measure.
	Sizes []int `mapstructure:"sizes"`
	// Runs is the number of timed rounds per kernel/size combination.
	Runs int `mapstructure:"runs"`
	// Warmup is the number of untimed rounds before measurement.
	Warmup int `mapstructure:"warmup"`
	// Iters is the number of kernel invocations per round.
	Iters int `mapstructure:"iters"`
	// Seed drives the input generator; the same seed reproduces a run.
	Seed uint64 `mapstructure:"seed"`
	// Format selects the report output: table or json.
	Format string `mapstructure:"format"`
	// Tolerance is the relative divergence from the scalar reference at
	// which a benchmark run fails. Zero disables the gate.
	Tolerance float64 `mapstructure:"tolerance"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			Sizes:     []int{16, 1024, 65536, 1 << 20},
			Runs:      5,
			Warmup:    2,
			Iters:     100,
			Seed:      1,
			Format:    "table",
			Tolerance: 1e-5,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.IntSlice("bench-sizes", defaults.Bench.Sizes, "Input lengths to measure")
	fs.Int("bench-runs", defaults.Bench.Runs, "Timed rounds per kernel/size")
	fs.Int("bench-warmup", defaults.Bench.Warmup, "Untimed warm-up rounds")
	fs.Int("bench-iters", defaults.Bench.Iters, "Kernel invocations per round")
	fs.Uint64("bench-seed", defaults.Bench.Seed, "Seed for input generation")
	fs.String("bench-format", defaults.Bench.Format, "Report format: table|json")
	fs.Float64("bench-tolerance", defaults.Bench.Tolerance, "Relative tolerance vs scalar reference (0 = disabled)")
	fs.String("log-level", defaults.LogLevel, "Log level: debug|info|warn|error")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("LANEDOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lanedot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if len(cfg.Bench.Sizes) == 0 {
		return fmt.Errorf("bench.sizes must not be empty")
	}
	for _, n := range cfg.Bench.Sizes {
		if n < 1 {
			return fmt.Errorf("bench.sizes entries must be at least 1, got %d", n)
		}
	}
	if cfg.Bench.Runs < 1 {
		return fmt.Errorf("bench.runs must be at least 1, got %d", cfg.Bench.Runs)
	}
	if cfg.Bench.Warmup < 0 {
		return fmt.Errorf("bench.warmup must not be negative, got %d", cfg.Bench.Warmup)
	}
	if cfg.Bench.Iters < 1 {
		return fmt.Errorf("bench.iters must be at least 1, got %d", cfg.Bench.Iters)
	}
	if cfg.Bench.Format != "table" && cfg.Bench.Format != "json" {
		return fmt.Errorf("bench.format must be 'table' or 'json', got %q", cfg.Bench.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("bench.sizes", c.Bench.Sizes)
	v.SetDefault("bench.runs", c.Bench.Runs)
	v.SetDefault("bench.warmup", c.Bench.Warmup)
	v.SetDefault("bench.iters", c.Bench.Iters)
	v.SetDefault("bench.seed", c.Bench.Seed)
	v.SetDefault("bench.format", c.Bench.Format)
	v.SetDefault("bench.tolerance", c.Bench.Tolerance)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("bench.sizes", "bench-sizes")
	v.RegisterAlias("bench.runs", "bench-runs")
	v.RegisterAlias("bench.warmup", "bench-warmup")
	v.RegisterAlias("bench.iters", "bench-iters")
	v.RegisterAlias("bench.seed", "bench-seed")
	v.RegisterAlias("bench.format", "bench-format")
	v.RegisterAlias("bench.tolerance", "bench-tolerance")
	v.RegisterAlias("log_level", "log-level")
}
