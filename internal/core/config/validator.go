package config

import (
	"callscan/internal/core/errors"
	"fmt"
	"log/slog"
	"strings"
)

var supportedLanguages = []string{"javascript", "tsx", "typescript"}

// Validate checks a loaded or hand-built configuration.
func Validate(cfg *Config) error {
	validators := []func(*Config) error{
		validateVersion,
		validateAnalysis,
		validateOutput,
		validateLog,
		validateObservability,
	}
	for _, v := range validators {
		if err := v(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return invalid("version", fmt.Sprintf("unsupported config version %d; supported version is 1", cfg.Version))
	}
	return nil
}

func validateAnalysis(cfg *Config) error {
	if !contains(supportedLanguages, cfg.Analysis.Language) {
		return invalid("analysis.language", fmt.Sprintf("analysis.language must be one of: %s, got %q", strings.Join(supportedLanguages, ", "), cfg.Analysis.Language))
	}
	for i, line := range cfg.Analysis.SkipLines {
		if line < 1 {
			return invalid("analysis.skip_lines", fmt.Sprintf("analysis.skip_lines[%d] must be >= 1, got %d", i, line))
		}
	}
	return nil
}

func validateOutput(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatNode, FormatJSON, FormatPretty:
		return nil
	default:
		return invalid("output.format", fmt.Sprintf("output.format must be one of: node, json, pretty, got %q", cfg.Output.Format))
	}
}

func validateLog(cfg *Config) error {
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

func validateObservability(cfg *Config) error {
	if cfg.Observability.EnableTracing && cfg.Observability.OTLPEndpoint == "" {
		return invalid("observability.otlp_endpoint", "observability.otlp_endpoint must not be empty when tracing is enabled")
	}
	if cfg.Observability.MetricsFile != "" && !cfg.Observability.EnableMetrics {
		return invalid("observability.metrics_file", "observability.metrics_file requires observability.enable_metrics")
	}
	return nil
}

// ParseLevel maps a log.level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, invalid("log.level", fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", level))
	}
}

func invalid(field, msg string) error {
	return errors.AddContext(errors.New(errors.CodeValidationError, msg), errors.CtxField, field)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
