package parser

import (
	"sync"
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// tsLanguage returns the tree-sitter TypeScript grammar for test use.
func tsLanguage() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
}

func TestParserPool_GetPut(t *testing.T) {
	pool := NewParserPool(tsLanguage())

	sp := pool.Get()
	if sp == nil {
		t.Fatal("expected non-nil parser from pool")
	}
	if pool.Leased() != 1 {
		t.Fatalf("expected 1 leased parser, got %d", pool.Leased())
	}

	pool.Put(sp)
	if pool.Leased() != 0 {
		t.Fatalf("expected 0 leased parsers, got %d", pool.Leased())
	}
}

func TestParserPool_PutNil(t *testing.T) {
	pool := NewParserPool(tsLanguage())

	// Put(nil) must be a no-op.
	pool.Put(nil)
	if pool.Leased() != 0 {
		t.Fatalf("expected 0 leased parsers, got %d", pool.Leased())
	}
}

func TestParserPool_ReusedParserStillParses(t *testing.T) {
	pool := NewParserPool(tsLanguage())

	for i := 0; i < 3; i++ {
		sp := pool.Get()
		tree := sp.Parse([]byte("if (app) { app.get(1); }"), nil)
		if tree == nil {
			t.Fatalf("iteration %d: expected a tree", i)
		}
		if tree.RootNode().HasError() {
			t.Errorf("iteration %d: unexpected syntax error", i)
		}
		tree.Close()
		pool.Put(sp)
	}
}

func TestParserPool_Concurrent(t *testing.T) {
	pool := NewParserPool(tsLanguage())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sp := pool.Get()
			defer pool.Put(sp)
			tree := sp.Parse([]byte("const x = app;"), nil)
			if tree == nil {
				t.Error("expected a tree")
				return
			}
			tree.Close()
		}()
	}
	wg.Wait()

	if pool.Leased() != 0 {
		t.Fatalf("expected all parsers returned, got %d leased", pool.Leased())
	}
}
