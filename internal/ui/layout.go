package ui

import "github.com/charmbracelet/lipgloss"

// Layout is the cell geometry of one frame.
type Layout struct {
	Width, Height int

	BodyHeight    int
	BackdropWidth int
	SideWidth     int

	CardsHeight int
	ChartHeight int
	LogHeight   int
}

// Backdrop returns the backdrop panel's inner origin and size in cells,
// relative to the top left of the terminal.
func (l Layout) Backdrop() (col, row, cols, rows int) {
	cols, rows = PanelInner(l.BackdropWidth, l.BodyHeight)
	// one row of menu bar, then the border
	return 1, 2, cols, rows
}

// ComputeLayout splits the terminal between the backdrop and the dashboard
// column.
func ComputeLayout(width, height int) Layout {
	const menuH, statusH = 1, 1
	bodyH := max(height-menuH-statusH, 12)

	sideW := max(width*2/5, 36)
	backW := width - sideW
	if backW < 20 {
		backW = 20
		sideW = max(width-backW, 20)
	}

	cardsH := 10
	chartH := max((bodyH-cardsH)/2, 6)
	logH := max(bodyH-cardsH-chartH, 4)

	return Layout{
		Width:         width,
		Height:        height,
		BodyHeight:    bodyH,
		BackdropWidth: backW,
		SideWidth:     sideW,
		CardsHeight:   cardsH,
		ChartHeight:   chartH,
		LogHeight:     logH,
	}
}

// ComposeLayout joins the backdrop and the dashboard column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, backdrop, cards, chart, logs, statusBar string) string {
	side := lipgloss.JoinVertical(lipgloss.Left, cards, chart, logs)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, backdrop, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
