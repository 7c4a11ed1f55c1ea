package parser

import (
	"callscan/internal/core/errors"
	"context"
	"fmt"
	"strings"
)

type Parser struct {
	loader *GrammarLoader
	pools  map[string]*ParserPool
}

func NewParser(loader *GrammarLoader) *Parser {
	p := &Parser{
		loader: loader,
		pools:  make(map[string]*ParserPool),
	}
	for _, id := range loader.Languages() {
		lang, _ := loader.Language(id)
		p.pools[id] = NewParserPool(lang)
	}
	return p
}

// Parse parses source with the named grammar. Syntax errors do not fail the
// parse; they show up as ERROR nodes in the returned tree.
func (p *Parser) Parse(ctx context.Context, language string, source []byte) (*Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	language = strings.ToLower(strings.TrimSpace(language))
	pool, ok := p.pools[language]
	if !ok {
		return nil, errors.AddContext(
			errors.New(errors.CodeNotSupported, fmt.Sprintf("unsupported language: %s", language)),
			errors.CtxLanguage, language,
		)
	}

	sp := pool.Get()
	defer pool.Put(sp)

	tree := sp.Parse(source, nil)
	if tree == nil {
		return nil, errors.AddContext(errors.New(errors.CodeParseFailed, "parse failed"), errors.CtxLanguage, language)
	}

	return &Tree{
		Language: language,
		Source:   source,
		tree:     tree,
	}, nil
}

func (p *Parser) SupportsLanguage(language string) bool {
	_, ok := p.pools[language]
	return ok
}

func (p *Parser) Languages() []string {
	return p.loader.Languages()
}
