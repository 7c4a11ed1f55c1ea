package usage

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// DefaultTarget is the identifier counted by the CLI.
const DefaultTarget = "app"

// Source is a parsed tree plus the helpers the counter needs to read it.
type Source interface {
	Root() *sitter.Node
	Line(node *sitter.Node) int
	Text(node *sitter.Node) string
}

// Counter counts references to a single identifier name.
type Counter struct {
	Target string
	// CountDeclarations also counts binding sites of Target.
	CountDeclarations bool
	// SkipLines holds 1-based lines whose occurrences are ignored.
	SkipLines []int
}

// NewCounter returns a counter for target that skips line 1.
func NewCounter(target string) *Counter {
	return &Counter{Target: target, SkipLines: []int{1}}
}

// Stats describes a single counting pass.
type Stats struct {
	NodesVisited int
	Names        int
	Matches      int
	Skipped      int
}

// Count walks src and returns the usages of the target name. The tree is not
// modified, so repeated calls on the same source return equal results.
func (c *Counter) Count(src Source) Result {
	res, _ := c.CountWithStats(src)
	return res
}

// CountWithStats is Count plus walk statistics.
func (c *Counter) CountWithStats(src Source) (Result, Stats) {
	res := make(Result)
	var stats Stats
	if src == nil || strings.TrimSpace(c.Target) == "" {
		return res, stats
	}
	skip := make(map[int]bool, len(c.SkipLines))
	for _, line := range c.SkipLines {
		skip[line] = true
	}

	Walk(src.Root(), func(node *sitter.Node) {
		stats.NodesVisited++
		c.visit(src, node, skip, res, &stats)
	})
	return res, stats
}

func (c *Counter) visit(src Source, node *sitter.Node, skip map[int]bool, res Result, stats *Stats) {
	if !IsName(node) {
		return
	}
	stats.Names++
	name := src.Text(node)
	if name != c.Target {
		return
	}
	if !Classify(node, name).Counted(c.CountDeclarations) {
		return
	}
	line := src.Line(node)
	if skip[line] {
		stats.Skipped++
		return
	}
	stats.Matches++
	res.Add(name, line)
}
