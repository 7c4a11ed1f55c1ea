package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Location struct {
	Line   int
	Column int
}

// Tree is a parsed source snippet together with its line index.
// It is read-only; Close releases the underlying tree-sitter tree.
type Tree struct {
	Language string
	Source   []byte
	tree     *sitter.Tree
}

func (t *Tree) Root() *sitter.Node {
	if t == nil || t.tree == nil {
		return nil
	}
	return t.tree.RootNode()
}

// Line returns the 1-based line on which node starts.
func (t *Tree) Line(node *sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}

func (t *Tree) Location(node *sitter.Node) Location {
	pos := node.StartPosition()
	return Location{
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
	}
}

func (t *Tree) Text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(t.Source[node.StartByte():node.EndByte()])
}

// HasErrors reports whether the parser had to insert ERROR or MISSING nodes.
func (t *Tree) HasErrors() bool {
	root := t.Root()
	return root != nil && root.HasError()
}

// ErrorLocations lists the start of every ERROR or MISSING node in source order.
func (t *Tree) ErrorLocations() []Location {
	var out []Location
	var visit func(node *sitter.Node)
	visit = func(node *sitter.Node) {
		if node == nil || !node.HasError() && !node.IsMissing() {
			return
		}
		if node.IsError() || node.IsMissing() {
			out = append(out, t.Location(node))
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			visit(node.Child(i))
		}
	}
	visit(t.Root())
	return out
}

func (t *Tree) Close() {
	if t == nil || t.tree == nil {
		return
	}
	t.tree.Close()
	t.tree = nil
}
