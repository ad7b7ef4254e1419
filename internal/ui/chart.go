package ui

import (
	"math"
	"strings"

	"crowdwatch.klederson.com/internal/config"
	"crowdwatch.klederson.com/internal/telemetry"
	"gonum.org/v1/gonum/floats"
)

// ChartScale returns the value mapped to the top of the chart.
func ChartScale(counts []float64) float64 {
	if len(counts) == 0 {
		return config.ChartMinScale
	}
	return math.Max(config.ChartMinScale, floats.Max(counts))
}

// RenderChart draws the head count history as vertical bars, one column
// group per sample with its clock label underneath.
func RenderChart(samples []telemetry.Sample, width, height int) string {
	innerW, innerH := PanelInner(width, height)
	lines := []string{StylePanelTitle.Render("CROWD DENSITY")}

	plotH := innerH - 2 // title and labels
	if plotH < 1 || len(samples) == 0 {
		return renderPanel(lines, width, height, false)
	}

	counts := make([]float64, len(samples))
	for i, s := range samples {
		counts[i] = float64(s.Count)
	}
	scale := ChartScale(counts)

	groupW := max(innerW/config.HistorySize, 1)
	barW := max(groupW-1, 1)

	rows := make([]strings.Builder, plotH)
	var labels strings.Builder
	for i, v := range counts {
		filled := int(math.Round(v / scale * float64(plotH)))
		for r := 0; r < plotH; r++ {
			level := plotH - r
			if level <= filled {
				rows[r].WriteString(StyleChartBar.Render(strings.Repeat("█", barW)))
			} else {
				rows[r].WriteString(StyleChartAxis.Render(strings.Repeat(" ", barW)))
			}
			rows[r].WriteString(pad(groupW - barW))
		}

		label := telemetry.ClockLabel(samples[i].At)
		if groupW < len(label)+1 {
			label = label[len(label)-min(groupW, len(label)):]
		}
		labels.WriteString(StyleHelp.Render(label) + pad(groupW-len(label)))
	}

	for r := range rows {
		lines = append(lines, rows[r].String())
	}
	lines = append(lines, labels.String())
	return renderPanel(lines, width, height, false)
}
