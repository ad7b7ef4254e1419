package ui

import (
	"fmt"
	"math"
	"strings"

	"crowdwatch.klederson.com/internal/telemetry"
	"github.com/charmbracelet/lipgloss"
)

// RenderCards renders the metric cards: risk, head count, motion, speed,
// place and feed status.
func RenderCards(d *telemetry.Dashboard, width, height int) string {
	innerW, _ := PanelInner(width, height)

	title := StylePanelTitle.Render("SURVEILLANCE")
	mode := StyleHelp.Render(strings.ToUpper(d.Mode.String()))
	titleLine := title + pad(innerW-lipgloss.Width(title)-lipgloss.Width(mode)) + mode

	lines := []string{titleLine, StyleChartAxis.Render(strings.Repeat("-", innerW))}

	r := d.Latest
	fields := []struct{ label, value string }{
		{"Risk", riskBadge(d.Risk())},
		{"People", StyleCardValue.Render(fmt.Sprintf("%d", r.PeopleCount))},
		{"Motion", StyleCardValue.Render(orDash(r.Motion, d.Active))},
		{"Speed", StyleCardValue.Render(orDash(r.Speed, d.Active))},
		{"Place", StyleCardValue.Render(orDash(r.Place, d.Active))},
		{"Status", StyleCardValue.Render(orDash(r.Status, d.Active))},
	}
	for _, f := range fields {
		lines = append(lines, StyleCardLabel.Render(fmt.Sprintf("  %-8s", f.label))+f.value)
	}

	if d.Mode == telemetry.ModeVideo && d.Active {
		barW := max(innerW-18, 10)
		lines = append(lines, StyleCardLabel.Render("  Video   ")+renderProgressBar(r.Progress, barW)+
			StyleCardValue.Render(fmt.Sprintf(" %3.0f%%", r.Progress)))
	}

	return renderPanel(lines, width, height, d.Active)
}

func riskBadge(risk string) string {
	switch risk {
	case telemetry.RiskHigh:
		return StyleRiskHigh.Render(" " + risk + " ")
	case telemetry.RiskMedium:
		return StyleRiskMedium.Render(risk)
	default:
		return StyleCardValue.Render(risk)
	}
}

func orDash(v string, active bool) string {
	if !active || v == "" {
		return "--"
	}
	return v
}

// renderProgressBar maps 0..100 onto width cells.
func renderProgressBar(percent float64, width int) string {
	ratio := math.Min(math.Max(percent/100, 0), 1)
	filled := int(math.Round(ratio * float64(width)))

	filledPart := StyleChartBar.Render(strings.Repeat("|", filled))
	emptyPart := StyleChartAxis.Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}
