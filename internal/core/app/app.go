package app

import (
	"callscan/internal/core/config"
	"callscan/internal/core/errors"
	"callscan/internal/core/ports"
	"callscan/internal/engine/parser"
	"callscan/internal/engine/usage"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type App struct {
	Config  *config.Config
	Parser  ports.CodeParser
	Counter *usage.Counter
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeValidationError, "config is required")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	loader, err := parser.NewGrammarLoader()
	if err != nil {
		return nil, err
	}

	skip := make([]int, len(cfg.Analysis.SkipLines))
	copy(skip, cfg.Analysis.SkipLines)

	return &App{
		Config: cfg,
		Parser: parser.NewParser(loader),
		Counter: &usage.Counter{
			Target:            usage.DefaultTarget,
			CountDeclarations: cfg.Analysis.CountDeclarations,
			SkipLines:         skip,
		},
	}, nil
}

func (a *App) AnalysisService() ports.AnalysisService {
	return NewAnalysisService(a)
}

// resolveInput returns the source bytes, a label for them and the grammar to use.
func (a *App) resolveInput(req ports.AnalyzeRequest) ([]byte, string, string, error) {
	language := strings.ToLower(strings.TrimSpace(req.Language))

	switch {
	case req.Path != "":
		data, err := os.ReadFile(req.Path)
		if err != nil {
			code := errors.CodeInternal
			if os.IsNotExist(err) {
				code = errors.CodeNotFound
			}
			return nil, "", "", errors.AddContext(errors.Wrap(err, code, "read source file"), errors.CtxPath, req.Path)
		}
		if language == "" {
			language = LanguageForPath(req.Path)
		}
		if language == "" {
			language = a.Config.Analysis.Language
		}
		return data, req.Path, language, nil
	case req.Source != nil:
		if language == "" {
			language = a.Config.Analysis.Language
		}
		return req.Source, "<input>", language, nil
	default:
		if language == "" {
			language = parser.LangTypeScript
		}
		return []byte(SampleSource), SampleOrigin, language, nil
	}
}

// LanguageForPath maps a file extension to a grammar, or "" when unknown.
func LanguageForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return parser.LangTypeScript
	case ".tsx":
		return parser.LangTSX
	case ".js", ".mjs", ".cjs", ".jsx":
		return parser.LangJavaScript
	default:
		return ""
	}
}

func syntaxError(locations []parser.Location) error {
	first := locations[0]
	return errors.AddContext(
		errors.New(errors.CodeParseFailed, fmt.Sprintf("%d syntax error(s), first at line %d column %d", len(locations), first.Line, first.Column)),
		errors.CtxOperation, "strict_parse",
	)
}
