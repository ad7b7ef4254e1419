package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports.
type StatusInfo struct {
	Active    bool
	Particles int
	Links     int
	Polls     int
	Failures  int
	MeanCount float64
	LastError error
	RetryIn   time.Duration
	Recording bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusInfo) string {
	var status string
	if s.Active {
		status = StyleStatusActive.Render("[TRACKING]")
	} else {
		status = StyleStatusIdle.Render("[IDLE]")
	}

	info := fmt.Sprintf(" Particles: %d  Links: %d  Polls: %d  Errors: %d  Avg: %.1f",
		s.Particles, s.Links, s.Polls, s.Failures, s.MeanCount)
	if s.Recording {
		info += "  REC"
	}

	content := status + StyleStatusBar.Padding(0).Render(info)
	if s.Active && s.LastError != nil {
		content += StyleStatusError.Render(fmt.Sprintf("  offline, retry in %s", s.RetryIn.Round(time.Second)))
	}

	gap := width - 2 - lipgloss.Width(content) // bar padding
	return StyleStatusBar.Width(width).Render(content + pad(gap))
}
