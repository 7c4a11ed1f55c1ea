package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: CALLSCAN_[SECTION]_[KEY] (e.g., CALLSCAN_OUTPUT_FORMAT).
func ApplyEnvOverrides(cfg *Config) {
	// Analysis
	setEnvString(&cfg.Analysis.Language, "CALLSCAN_ANALYSIS_LANGUAGE")
	setEnvBool(&cfg.Analysis.CountDeclarations, "CALLSCAN_ANALYSIS_COUNT_DECLARATIONS")
	setEnvBool(&cfg.Analysis.Strict, "CALLSCAN_ANALYSIS_STRICT")

	// Output and logging
	setEnvString(&cfg.Output.Format, "CALLSCAN_OUTPUT_FORMAT")
	setEnvString(&cfg.Log.Level, "CALLSCAN_LOG_LEVEL")

	// Observability
	setEnvBool(&cfg.Observability.EnableMetrics, "CALLSCAN_OBSERVABILITY_ENABLE_METRICS")
	setEnvString(&cfg.Observability.MetricsFile, "CALLSCAN_OBSERVABILITY_METRICS_FILE")
	setEnvBool(&cfg.Observability.EnableTracing, "CALLSCAN_OBSERVABILITY_ENABLE_TRACING")
	setEnvString(&cfg.Observability.OTLPEndpoint, "CALLSCAN_OBSERVABILITY_OTLP_ENDPOINT")

	normalize(cfg)
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err != nil {
			slog.Warn("ignoring invalid env override", "key", key, "value", val)
			return
		}
		slog.Debug("applying env override", "key", key, "value", val)
		*target = b
	}
}
