package parser

import (
	"callscan/internal/core/errors"
	"callscan/internal/shared/util"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

const (
	LangTypeScript = "typescript"
	LangTSX        = "tsx"
	LangJavaScript = "javascript"
)

// GrammarLoader holds the bundled tree-sitter grammars by language id.
type GrammarLoader struct {
	languages map[string]*sitter.Language
}

// NewGrammarLoader loads the requested grammars, or every bundled grammar when
// none are named.
func NewGrammarLoader(langs ...string) (*GrammarLoader, error) {
	if len(langs) == 0 {
		langs = []string{LangJavaScript, LangTSX, LangTypeScript}
	}

	gl := &GrammarLoader{languages: make(map[string]*sitter.Language, len(langs))}
	for _, langID := range langs {
		switch langID {
		case LangTypeScript:
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
		case LangTSX:
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
		case LangJavaScript:
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_javascript.Language())
		default:
			return nil, errors.AddContext(
				errors.New(errors.CodeNotSupported, fmt.Sprintf("no bundled grammar for %q", langID)),
				errors.CtxLanguage, langID,
			)
		}
	}
	return gl, nil
}

func (gl *GrammarLoader) Language(langID string) (*sitter.Language, bool) {
	lang, ok := gl.languages[langID]
	return lang, ok
}

func (gl *GrammarLoader) Languages() []string {
	return util.SortedStringKeys(gl.languages)
}
