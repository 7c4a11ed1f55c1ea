package app

import (
	"callscan/internal/core/errors"
	"callscan/internal/core/ports"
	"callscan/internal/shared/observability"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type analysisService struct {
	app *App
}

var _ ports.AnalysisService = (*analysisService)(nil)

func NewAnalysisService(app *App) ports.AnalysisService {
	return &analysisService{app: app}
}

func (s *analysisService) Analyze(ctx context.Context, req ports.AnalyzeRequest) (result ports.AnalyzeResult, err error) {
	runID := uuid.NewString()
	ctx, span := observability.Tracer().Start(ctx, "analysisService.Analyze", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.app == nil || s.app.Config == nil {
		return ports.AnalyzeResult{}, errors.New(errors.CodeValidationError, "app is not initialised")
	}

	source, origin, language, err := s.app.resolveInput(req)
	if err != nil {
		return ports.AnalyzeResult{}, err
	}
	span.SetAttributes(
		attribute.String("origin", origin),
		attribute.String("language", language),
	)

	start := time.Now()
	tree, err := s.app.Parser.Parse(ctx, language, source)
	if err != nil {
		return ports.AnalyzeResult{}, errors.AddContext(err, errors.CtxPath, origin)
	}
	defer tree.Close()
	parsed := time.Now()
	observability.ParsingDuration.WithLabelValues(language).Observe(parsed.Sub(start).Seconds())

	syntaxErrors := tree.ErrorLocations()
	if len(syntaxErrors) > 0 {
		observability.SyntaxErrorsTotal.WithLabelValues(language).Inc()
		if s.app.Config.Analysis.Strict {
			return ports.AnalyzeResult{}, errors.AddContext(syntaxError(syntaxErrors), errors.CtxPath, origin)
		}
		slog.Warn("source contains syntax errors", "origin", origin, "count", len(syntaxErrors), "first_line", syntaxErrors[0].Line)
	}

	usages, stats := s.app.Counter.CountWithStats(tree)
	observability.CountDuration.Observe(time.Since(parsed).Seconds())
	observability.NodesVisitedTotal.Add(float64(stats.NodesVisited))
	observability.SkippedTotal.Add(float64(stats.Skipped))
	for _, name := range usages.Names() {
		observability.ReferencesTotal.WithLabelValues(name).Add(float64(usages[name].CallNum))
	}

	if err := usages.Validate(); err != nil {
		return ports.AnalyzeResult{}, err
	}

	span.SetAttributes(
		attribute.Int("nodes_visited", stats.NodesVisited),
		attribute.Int("matches", stats.Matches),
	)
	duration := time.Since(start)
	slog.Debug("analysis complete",
		"run_id", runID,
		"origin", origin,
		"language", language,
		"target", s.app.Counter.Target,
		"nodes", stats.NodesVisited,
		"matches", stats.Matches,
		"skipped", stats.Skipped,
		"duration", duration,
	)

	return ports.AnalyzeResult{
		RunID:        runID,
		Origin:       origin,
		Language:     language,
		Target:       s.app.Counter.Target,
		Usages:       usages,
		Stats:        stats,
		SyntaxErrors: syntaxErrors,
		Duration:     duration,
	}, nil
}
