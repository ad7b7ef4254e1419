package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderLogPanel renders the newest-first activity log.
func RenderLogPanel(lines []string, active bool, width, height int) string {
	innerW, _ := PanelInner(width, height)

	title := StylePanelTitle.Render(fmt.Sprintf("ACTIVITY LOG [%d]", len(lines)))
	out := []string{title, StyleChartAxis.Render(strings.Repeat("-", innerW))}

	if !active || len(lines) == 0 {
		out = append(out, "", StyleHelp.Render(" No Feed Activity"))
		return renderPanel(out, width, height, false)
	}

	for _, l := range lines {
		out = append(out, StyleLogLine.Render(" "+ansi.Truncate(l, innerW-1, "")))
	}
	return renderPanel(out, width, height, false)
}
