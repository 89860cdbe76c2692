package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/ariadne/pkg/domain"
)

// BuildReport produces a markdown summary of a finished run.
func BuildReport(snap domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("# Exploration report\n\n")
	fmt.Fprintf(&sb, "- Discovered cells: %d\n", len(snap.Cells))
	fmt.Fprintf(&sb, "- Routes to exit: %d\n", len(snap.Results))
	fmt.Fprintf(&sb, "- Final position: (%d,%d)\n", snap.Position.X, snap.Position.Y)

	switch {
	case snap.Win:
		sb.WriteString("- Outcome: **escaped**\n")
	case snap.Dead:
		sb.WriteString("- Outcome: **died**\n")
	case snap.Finished:
		sb.WriteString("- Outcome: finished without escape\n")
	default:
		sb.WriteString("- Outcome: in progress\n")
	}

	if len(snap.Results) > 0 {
		sb.WriteString("\n## Routes\n\n")
		for i, route := range snap.Results {
			fmt.Fprintf(&sb, "%d. %d cells: %s\n", i+1, route.Len(), formatRoute(route))
		}
	}

	if len(snap.Log) > 0 {
		sb.WriteString("\n## Journey log\n\n")
		for _, line := range snap.Log {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}

	return sb.String()
}

func formatRoute(route domain.Path) string {
	steps := make([]string, len(route))
	for i, c := range route {
		steps[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return strings.Join(steps, " -> ")
}

// NewRenderer returns a function that renders markdown for the terminal using
// glamour, auto-detecting the background style. Rendering failures fall back
// to the raw markdown.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) string {
		if err != nil || r == nil {
			return markdown
		}
		out, renderErr := r.Render(markdown)
		if renderErr != nil {
			return markdown
		}
		return out
	}
}
