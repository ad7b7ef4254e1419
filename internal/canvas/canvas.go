// Package canvas is a terminal drawing surface: a grid of character cells
// that accepts world-unit drawing primitives and renders to a styled string.
package canvas

import (
	"math"
	"strings"

	"crowdwatch.klederson.com/internal/config"
	"crowdwatch.klederson.com/internal/particles"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLine
	cellDot
)

type cell struct {
	kind  cellKind
	ch    rune
	color colorful.Color
	alpha float64
	bold  bool
}

type styleKey struct {
	hex  string
	bold bool
}

// Canvas implements particles.Surface on a terminal cell grid.
type Canvas struct {
	cols, rows int
	cells      []cell

	background colorful.Color
	grid       colorful.Color
	vignette   bool

	styles map[styleKey]lipgloss.Style
}

// New creates an empty canvas. Call Resize before drawing.
func New() *Canvas {
	return &Canvas{
		background: particles.MustHex(config.BackgroundHex),
		grid:       particles.MustHex(config.AccentHex),
		vignette:   config.VignetteEnabled,
		styles:     make(map[styleKey]lipgloss.Style),
	}
}

// Resize sets the canvas to cover width x height world units and clears it.
func (c *Canvas) Resize(width, height float64) {
	c.cols = int(math.Max(0, math.Floor(width/config.CellWidth)))
	c.rows = int(math.Max(0, math.Floor(height/config.CellHeight)))
	c.cells = make([]cell, c.cols*c.rows)
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// SetVignette toggles the radial fade applied at render time.
func (c *Canvas) SetVignette(on bool) {
	c.vignette = on
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// FillCircle marks the cell under (x, y) as a particle. Particles always
// win over lines drawn into the same cell.
func (c *Canvas) FillCircle(x, y, radius float64, fill particles.Paint) {
	col, row := WorldToCell(x, y)
	idx, ok := c.index(col, row)
	if !ok {
		return
	}
	ch := '•'
	if radius >= 2 {
		ch = '●'
	}
	c.cells[idx] = cell{kind: cellDot, ch: ch, color: fill.Color, alpha: fill.Alpha}
}

// StrokeLine rasterizes a segment across the cells it passes through. Where
// lines overlap, the more opaque one is kept.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, stroke particles.Stroke) {
	ch := '·'
	if stroke.Width >= 1 {
		ch = LineChar(x1-x0, y1-y0)
	}
	bold := stroke.Glow > 0

	c0, r0 := WorldToCell(x0, y0)
	c1, r1 := WorldToCell(x1, y1)
	plot(c0, r0, c1, r1, func(col, row int) {
		idx, ok := c.index(col, row)
		if !ok {
			return
		}
		cur := &c.cells[idx]
		if cur.kind == cellDot || (cur.kind == cellLine && cur.alpha >= stroke.Alpha) {
			return
		}
		*cur = cell{kind: cellLine, ch: ch, color: stroke.Color, alpha: stroke.Alpha, bold: bold}
	})
}

// Render produces the canvas as newline-separated styled rows.
func (c *Canvas) Render() string {
	if c.cols == 0 || c.rows == 0 {
		return ""
	}

	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		var runKey styleKey
		run.Reset()
		for col := 0; col < c.cols; col++ {
			ch, key := c.resolve(col, row)
			if run.Len() > 0 && key != runKey {
				sb.WriteString(c.style(runKey).Render(run.String()))
				run.Reset()
			}
			runKey = key
			run.WriteRune(ch)
		}
		if run.Len() > 0 {
			sb.WriteString(c.style(runKey).Render(run.String()))
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// At returns the character drawn in a cell, for inspection.
func (c *Canvas) At(col, row int) rune {
	idx, ok := c.index(col, row)
	if !ok || c.cells[idx].kind == cellEmpty {
		return ' '
	}
	return c.cells[idx].ch
}

func (c *Canvas) resolve(col, row int) (rune, styleKey) {
	fade := 1.0
	if c.vignette {
		fade = Vignette(col, row, c.cols, c.rows)
	}

	cl := c.cells[row*c.cols+col]
	if cl.kind != cellEmpty {
		return cl.ch, styleKey{hex: c.blend(cl.color, cl.alpha*fade), bold: cl.bold}
	}

	x := float64(col) * config.CellWidth
	y := float64(row) * config.CellHeight
	vert := crossesGrid(x, config.CellWidth)
	horiz := crossesGrid(y, config.CellHeight)
	switch {
	case vert && horiz:
		return '+', styleKey{hex: c.blend(c.grid, config.GridAlpha*fade)}
	case vert:
		return ':', styleKey{hex: c.blend(c.grid, config.GridAlpha*fade)}
	case horiz:
		return '.', styleKey{hex: c.blend(c.grid, config.GridAlpha*fade)}
	}
	return ' ', styleKey{}
}

func (c *Canvas) blend(col colorful.Color, alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	return c.background.BlendRgb(col, alpha).Clamped().Hex()
}

func (c *Canvas) style(k styleKey) lipgloss.Style {
	if k.hex == "" {
		return lipgloss.NewStyle()
	}
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(k.hex)).Bold(k.bold)
	c.styles[k] = s
	return s
}

func (c *Canvas) index(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, false
	}
	return row*c.cols + col, true
}

// plot walks the cells of a line with Bresenham's algorithm.
func plot(c0, r0, c1, r1 int, fn func(col, row int)) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	for {
		fn(c0, r0)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
