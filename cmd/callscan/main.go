package main

import (
	"callscan/internal/core/app"
	"callscan/internal/core/config"
	"callscan/internal/core/errors"
	"callscan/internal/core/ports"
	"callscan/internal/shared/observability"
	"callscan/internal/shared/version"
	"callscan/internal/ui/report"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const defaultConfigPath = "./callscan.toml"

type options struct {
	configPath string
	format     string
	verbose    bool
	version    bool
	args       []string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("callscan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.StringVar(&opts.format, "format", "", "Output format: node, json or pretty (overrides config)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: callscan [flags] [file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "callscan v%s\n", version.Version)
		return 0
	}
	if len(opts.args) > 1 {
		fmt.Fprintln(stderr, "callscan analyzes a single file: callscan [flags] [file]")
		return 2
	}

	// Results go to stdout, so logs go to stderr. The level follows -verbose
	// until the config is resolved, so env overrides are logged too.
	var level slog.LevelVar
	if opts.verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: &level,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	config.ApplyEnvOverrides(cfg)
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	configured, _ := config.ParseLevel(cfg.Log.Level)
	level.Set(configured)

	if cfg.Observability.EnableTracing {
		shutdown, err := observability.InitTracing(ctx, cfg.Observability.OTLPEndpoint)
		if err != nil {
			slog.Error("failed to initialise tracing", "error", err)
			return 1
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Observability.ShutdownTimeout)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}

	req := ports.AnalyzeRequest{}
	if len(opts.args) == 1 {
		req.Path = opts.args[0]
	}
	res, err := a.AnalysisService().Analyze(ctx, req)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		return 1
	}

	if err := report.Render(stdout, cfg.Output.Format, res); err != nil {
		slog.Error("failed to render report", "error", err)
		return 1
	}

	if cfg.Observability.EnableMetrics && cfg.Observability.MetricsFile != "" {
		if err := observability.WriteMetricsFile(cfg.Observability.MetricsFile); err != nil {
			slog.Warn("failed to write metrics file", "error", err)
		}
	}
	return 0
}

// loadConfig reads path; a missing default config file falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.IsCode(err, errors.CodeNotFound) {
		return config.DefaultConfig(), nil
	}
	return nil, err
}
