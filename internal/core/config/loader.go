package config

import (
	"callscan/internal/core/errors"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.AddContext(errors.Wrap(err, errors.CodeNotFound, "config file not found"), errors.CtxPath, path)
		}
		return nil, err
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.AddContext(errors.Wrap(err, errors.CodeValidationError, "decode config"), errors.CtxPath, path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.AddContext(
			errors.New(errors.CodeValidationError, "unknown config key"),
			errors.CtxField, undecoded[0].String(),
		)
	}

	applyDefaults(&cfg)
	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Analysis.Language) == "" {
		cfg.Analysis.Language = "typescript"
	}
	// The first line holds the import of the target, so it is skipped unless
	// the file says otherwise. An explicit empty list keeps every line.
	if cfg.Analysis.SkipLines == nil {
		cfg.Analysis.SkipLines = []int{1}
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = FormatNode
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Observability.ShutdownTimeout <= 0 {
		cfg.Observability.ShutdownTimeout = 5 * time.Second
	}
}

func normalize(cfg *Config) {
	cfg.Analysis.Language = strings.ToLower(strings.TrimSpace(cfg.Analysis.Language))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Observability.MetricsFile = strings.TrimSpace(cfg.Observability.MetricsFile)
	cfg.Observability.OTLPEndpoint = strings.TrimSpace(cfg.Observability.OTLPEndpoint)
}
