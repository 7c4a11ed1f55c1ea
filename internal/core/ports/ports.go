package ports

import (
	"callscan/internal/engine/parser"
	"callscan/internal/engine/usage"
	"context"
	"time"
)

// CodeParser abstracts snippet parsing.
type CodeParser interface {
	Parse(ctx context.Context, language string, source []byte) (*parser.Tree, error)
	SupportsLanguage(language string) bool
}

// AnalyzeRequest names one snippet to analyze. Exactly one of Path or Source
// is used; when both are empty the embedded sample is analyzed.
type AnalyzeRequest struct {
	Path     string
	Source   []byte
	Language string
}

// AnalyzeResult is the outcome of counting references in one snippet.
type AnalyzeResult struct {
	RunID        string
	Origin       string
	Language     string
	Target       string
	Usages       usage.Result
	Stats        usage.Stats
	SyntaxErrors []parser.Location
	Duration     time.Duration
}

// AnalysisService is the driving port used by the CLI.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error)
}
