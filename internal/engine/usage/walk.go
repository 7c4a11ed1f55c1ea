package usage

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Walk visits node and all of its descendants depth-first. Children are
// visited in source order before their parent, and every node exactly once,
// so leaves such as identifiers are seen in source order.
func Walk(node *sitter.Node, visit func(*sitter.Node)) {
	if node == nil {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		Walk(node.Child(i), visit)
	}
	visit(node)
}
