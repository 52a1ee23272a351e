// Package config provides viper-backed configuration loading for pactctl
// and any long-running host of the decomposition/plan/exec pipeline.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/quotientgraph/pact/decomp"
	"github.com/quotientgraph/pact/exec"
)

// Config holds all tunable knobs for a PACT run.
type Config struct {
	Decomposition DecompositionConfig `mapstructure:"decomposition"`
	Execution     ExecutionConfig     `mapstructure:"execution"`
	Log           LogConfig           `mapstructure:"log"`
	Telemetry     TelemetryConfig     `mapstructure:"telemetry"`
}

// DecompositionConfig configures hypertree-decomposition acquisition.
type DecompositionConfig struct {
	SolverPath      string `mapstructure:"solver_path"`
	HTDAttempts     int    `mapstructure:"htd_attempts"`
	SolverTimeoutMS int    `mapstructure:"solver_timeout_ms"`
	RefineCovers    bool   `mapstructure:"refine_covers"`
}

// ExecutionConfig configures the relational executor.
type ExecutionConfig struct {
	GracefulBigint bool `mapstructure:"graceful_bigint"`
	SliceCount     int  `mapstructure:"slice_count"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from configPath (or standard search locations
// when empty), falling back to defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("pact")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/pact")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// use defaults
		} else if os.IsNotExist(err) {
			// use defaults
		} else {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PACT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration of the given type (e.g. "yaml",
// "json") from an in-memory reader, for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("decomposition.htd_attempts", 1)
	v.SetDefault("decomposition.solver_timeout_ms", 30000)
	v.SetDefault("decomposition.refine_covers", true)

	v.SetDefault("execution.graceful_bigint", true)
	v.SetDefault("execution.slice_count", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "pactctl")
}

// Validate rejects configurations the rest of the pipeline can't act on.
func (c *Config) Validate() error {
	if c.Decomposition.HTDAttempts < 1 {
		return fmt.Errorf("decomposition.htd_attempts must be >= 1")
	}
	if c.Decomposition.SolverTimeoutMS < 1 {
		return fmt.Errorf("decomposition.solver_timeout_ms must be >= 1")
	}
	if c.Execution.SliceCount < 1 {
		return fmt.Errorf("execution.slice_count must be >= 1")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be \"json\" or \"text\", got %q", c.Log.Format)
	}
	return nil
}

// DecompConfig converts to decomp.Config for Acquire.
func (c *Config) DecompConfig() decomp.Config {
	return decomp.Config{
		HTDAttempts:   c.Decomposition.HTDAttempts,
		SolverTimeout: time.Duration(c.Decomposition.SolverTimeoutMS) * time.Millisecond,
		RefineCovers:  c.Decomposition.RefineCovers,
	}
}

// ExecConfig converts to exec.ExecConfig for Run/RunSliced.
func (c *Config) ExecConfig() exec.ExecConfig {
	return exec.ExecConfig{GracefulBigint: c.Execution.GracefulBigint}
}
