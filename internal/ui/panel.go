package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PanelInner returns the content area of a bordered panel of the given
// outer size.
func PanelInner(width, height int) (w, h int) {
	return max(1, width-2), max(1, height-2)
}

// renderPanel draws lines inside a rounded border of exactly width x height
// cells. Lines beyond the inner height are dropped.
func renderPanel(lines []string, width, height int, active bool) string {
	innerW, innerH := PanelInner(width, height)
	lines = fitLines(lines, innerH)
	for i, l := range lines {
		if lipgloss.Width(l) > innerW {
			lines[i] = ansi.Truncate(l, innerW, "")
		}
	}

	sty := StylePanelBorder
	if active {
		sty = StylePanelActive
	}
	rendered := sty.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))

	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	return strings.Join(fitLines(strings.Split(rendered, "\n"), height), "\n")
}

// fitLines pads or truncates lines to exactly n entries.
func fitLines(lines []string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < len(lines) && i < n; i++ {
		out = append(out, lines[i])
	}
	for len(out) < n {
		out = append(out, "")
	}
	return out
}
