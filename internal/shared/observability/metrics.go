package observability

import (
	"callscan/internal/core/errors"
	"callscan/internal/shared/util"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "callscan_parsing_seconds",
		Help:    "Time spent parsing a source snippet.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	CountDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "callscan_count_seconds",
		Help:    "Time spent walking a syntax tree and counting references.",
		Buckets: prometheus.DefBuckets,
	})

	NodesVisitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callscan_nodes_visited_total",
		Help: "Total number of syntax tree nodes visited by the counter.",
	})

	ReferencesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callscan_references_total",
		Help: "Total number of counted references by identifier name.",
	}, []string{"name"})

	SkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callscan_skipped_references_total",
		Help: "Total number of references dropped because they sit on a skipped line.",
	})

	SyntaxErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callscan_syntax_error_trees_total",
		Help: "Total number of parsed inputs whose tree contains ERROR or MISSING nodes.",
	}, []string{"language"})
)

// WriteMetricsFile writes every registered metric to path in the text
// exposition format, for pickup by a node_exporter textfile collector.
func WriteMetricsFile(path string) error {
	if err := util.EnsureParentDir(path); err != nil {
		return errors.AddContext(errors.Wrap(err, errors.CodeInternal, "create metrics dir"), errors.CtxPath, path)
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.AddContext(errors.Wrap(err, errors.CodeInternal, "write metrics file"), errors.CtxPath, path)
	}
	return nil
}
