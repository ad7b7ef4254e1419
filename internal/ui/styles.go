package ui

import "github.com/charmbracelet/lipgloss"

// Slate and blue palette
var (
	ColorAccent     = lipgloss.Color("#3B82F6")
	ColorAccentDim  = lipgloss.Color("#1E3A8A")
	ColorText       = lipgloss.Color("#E2E8F0")
	ColorMuted      = lipgloss.Color("#64748B")
	ColorFaint      = lipgloss.Color("#334155")
	ColorBackground = lipgloss.Color("#020617")
	ColorBar        = lipgloss.Color("#0F172A")
	ColorBorder     = lipgloss.Color("#1E293B")
	ColorOnline     = lipgloss.Color("#22C55E")
	ColorWarning    = lipgloss.Color("#F59E0B")
	ColorDanger     = lipgloss.Color("#EF4444")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorMuted).
			Padding(0, 1)

	StyleStatusActive = lipgloss.NewStyle().
				Foreground(ColorOnline).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorDanger)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccentDim)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleCardLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleCardValue = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleRiskHigh = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorDanger).
			Bold(true)

	StyleRiskMedium = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleChartBar = lipgloss.NewStyle().
			Foreground(ColorAccent)

	StyleChartAxis = lipgloss.NewStyle().
			Foreground(ColorFaint)

	StyleLogLine = lipgloss.NewStyle().
			Foreground(ColorAccent)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
