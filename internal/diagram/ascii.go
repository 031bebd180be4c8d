package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/emfajardo/gogrillage/internal/geometry"
	"github.com/emfajardo/gogrillage/internal/girder"
)

// DrawASCIIProfile renders a force profile as a terminal chart.
func DrawASCIIProfile(series girder.Series, kind geometry.ForceKind, girderIndex int) string {
	if len(series) == 0 {
		return ""
	}
	style := styleFor(kind)
	chart := asciigraph.Plot(series.Values(),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("Girder %d - %s", girderIndex, style.title)),
		asciigraph.Precision(1),
	)
	return "\n" + chart + "\n"
}

// DrawSummaryBox creates a bordered summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
