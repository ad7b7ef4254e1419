package ui

import (
	"fmt"
	"strings"

	"crowdwatch.klederson.com/internal/config"
	"crowdwatch.klederson.com/internal/telemetry"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, mode telemetry.Mode, active, online bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	startStop := "tart"
	if active {
		startStop = "top"
	}
	keys := []struct{ key, label string }{
		{"S", startStop},
		{"M", "ode"},
		{"R", "emount"},
		{"B", "ackdrop"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	var status string
	switch {
	case active && online:
		status = StyleStatusActive.Render("SYSTEM ONLINE")
	case active:
		status = StyleStatusError.Render("CONNECTING")
	default:
		status = StyleStatusIdle.Render("STANDBY")
	}

	modeInfo := StyleMenuLabel.Render("Feed: " + strings.ToUpper(mode.String()))

	left := StyleMenuKey.Render(title) + menu.String()
	right := status + "  " + modeInfo + " "

	return StyleMenuBar.Width(width).Render(left + pad(width-2-lipgloss.Width(left)-lipgloss.Width(right)) + right)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
