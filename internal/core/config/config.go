package config

import (
	"time"
)

const (
	FormatNode   = "node"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

type Config struct {
	Version       int           `toml:"version"`
	Analysis      Analysis      `toml:"analysis"`
	Output        Output        `toml:"output"`
	Log           Log           `toml:"log"`
	Observability Observability `toml:"observability"`
}

type Analysis struct {
	// Language selects the grammar: typescript, tsx or javascript.
	Language string `toml:"language"`
	// CountDeclarations also counts binding sites (parameters, imports, declarators).
	CountDeclarations bool `toml:"count_declarations"`
	// SkipLines lists 1-based lines whose matches are ignored. Defaults to [1].
	SkipLines []int `toml:"skip_lines"`
	// Strict turns syntax errors in the input into a parse failure.
	Strict bool `toml:"strict"`
}

type Output struct {
	Format string `toml:"format"`
}

type Log struct {
	Level string `toml:"level"`
}

type Observability struct {
	EnableMetrics   bool          `toml:"enable_metrics"`
	MetricsFile     string        `toml:"metrics_file"`
	EnableTracing   bool          `toml:"enable_tracing"`
	OTLPEndpoint    string        `toml:"otlp_endpoint"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
