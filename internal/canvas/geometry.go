package canvas

import (
	"math"

	"crowdwatch.klederson.com/internal/config"
)

// CellCenter returns the world coordinates of the middle of a cell.
func CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * config.CellWidth, (float64(row) + 0.5) * config.CellHeight
}

// WorldToCell maps world coordinates to the cell containing them.
func WorldToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / config.CellWidth)), int(math.Floor(y / config.CellHeight))
}

// CellDistance computes the world-unit distance from a cell's center to the
// center of the grid, correcting for the tall terminal cell.
func CellDistance(col, row, cols, rows int) float64 {
	x, y := CellCenter(col, row)
	cx := float64(cols) * config.CellWidth / 2
	cy := float64(rows) * config.CellHeight / 2
	dx := x - cx
	dy := y - cy
	return math.Sqrt(dx*dx + dy*dy)
}

// Vignette returns the fraction of a cell's color that survives the radial
// fade toward the background: 1 at the center, 0 at the farthest corner.
func Vignette(col, row, cols, rows int) float64 {
	cx := float64(cols) * config.CellWidth / 2
	cy := float64(rows) * config.CellHeight / 2
	far := math.Sqrt(cx*cx + cy*cy)
	if far == 0 {
		return 1
	}
	v := 1 - CellDistance(col, row, cols, rows)/far
	if v < 0 {
		return 0
	}
	return v
}

// LineChar picks the character that best follows a segment's direction on
// screen. dx and dy are in world units, y increasing downward.
func LineChar(dx, dy float64) rune {
	cx := math.Abs(dx / config.CellWidth)
	cy := math.Abs(dy / config.CellHeight)

	switch {
	case cy <= cx*0.5:
		return '-'
	case cx <= cy*0.5:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// crossesGrid reports whether a span [start, start+span) contains a multiple
// of the grid spacing.
func crossesGrid(start, span float64) bool {
	next := math.Ceil(start/config.GridSpacing) * config.GridSpacing
	return next < start+span
}
