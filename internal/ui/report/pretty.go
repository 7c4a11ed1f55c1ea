package report

import (
	"callscan/internal/core/ports"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	footerStyle = lipgloss.NewStyle().
			Faint(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1)
)

// FormatPretty renders a boxed terminal summary of res.
func FormatPretty(res ports.AnalyzeResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("References to %q in %s", res.Target, res.Origin)))
	b.WriteString("\n")

	names := res.Usages.Names()
	if len(names) == 0 {
		b.WriteString(emptyStyle.Render("no references found"))
		b.WriteString("\n")
	}
	for _, name := range names {
		u := res.Usages[name]
		lines := make([]string, 0, len(u.CallLines))
		for _, line := range u.CallLines {
			lines = append(lines, strconv.Itoa(line))
		}
		b.WriteString(fmt.Sprintf("%s  %d %s on lines %s\n",
			nameStyle.Render(name), u.CallNum, plural(u.CallNum, "reference", "references"), strings.Join(lines, ", ")))
	}

	if n := len(res.SyntaxErrors); n > 0 {
		first := res.SyntaxErrors[0]
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d %s, first at %d:%d", n, plural(n, "syntax error", "syntax errors"), first.Line, first.Column)))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("%s · %d nodes · %d skipped", res.Language, res.Stats.NodesVisited, res.Stats.Skipped)))

	return boxStyle.Render(b.String()) + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
