package canvas

import (
	"strings"
	"testing"

	"crowdwatch.klederson.com/internal/particles"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

func newCanvas(cols, rows int) *Canvas {
	c := New()
	c.Resize(float64(cols)*8, float64(rows)*16)
	return c
}

func TestResizeComputesGrid(t *testing.T) {
	c := New()
	c.Resize(800, 480)
	cols, rows := c.Size()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)

	c.Resize(0, 0)
	cols, rows = c.Size()
	assert.Zero(t, cols)
	assert.Zero(t, rows)
	assert.Empty(t, c.Render())
}

func TestFillCircle(t *testing.T) {
	c := newCanvas(10, 5)
	c.FillCircle(20, 20, 1.5, particles.Paint{Color: white, Alpha: 1})
	c.FillCircle(44, 70, 2.2, particles.Paint{Color: white, Alpha: 1})
	assert.Equal(t, '•', c.At(2, 1))
	assert.Equal(t, '●', c.At(5, 4))

	// out of bounds is ignored
	c.FillCircle(-5, 10, 1, particles.Paint{Color: white, Alpha: 1})
	c.FillCircle(1000, 10, 1, particles.Paint{Color: white, Alpha: 1})
}

func TestStrokeLineCoversCells(t *testing.T) {
	c := newCanvas(20, 5)
	c.StrokeLine(4, 8, 156, 8, particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 0.5}, Width: 0.3})
	for col := 0; col < 20; col++ {
		assert.Equal(t, '·', c.At(col, 0), "col %d", col)
	}
	assert.Equal(t, ' ', c.At(0, 1))
}

func TestHighlightedStrokeFollowsDirection(t *testing.T) {
	c := newCanvas(20, 10)
	stroke := particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 1}, Width: 1.2, Glow: 15}
	c.StrokeLine(4, 8, 100, 8, stroke)
	assert.Equal(t, '-', c.At(3, 0))

	c.Clear()
	c.StrokeLine(4, 8, 4, 150, stroke)
	assert.Equal(t, '|', c.At(0, 4))
}

func TestParticleBeatsLine(t *testing.T) {
	c := newCanvas(10, 3)
	c.FillCircle(20, 8, 1, particles.Paint{Color: white, Alpha: 0.8})
	c.StrokeLine(0, 8, 79, 8, particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 1}, Width: 1.2})
	assert.Equal(t, '•', c.At(2, 0))
	assert.Equal(t, '-', c.At(3, 0))
}

func TestStrongerLineWins(t *testing.T) {
	c := newCanvas(10, 3)
	weak := particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 0.2}, Width: 0.3}
	strong := particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 0.9}, Width: 1.2}
	c.StrokeLine(0, 8, 79, 8, strong)
	c.StrokeLine(0, 8, 79, 8, weak)
	assert.Equal(t, '-', c.At(4, 0))
}

func TestClearEmptiesCells(t *testing.T) {
	c := newCanvas(10, 3)
	c.FillCircle(20, 8, 1, particles.Paint{Color: white, Alpha: 1})
	c.Clear()
	assert.Equal(t, ' ', c.At(2, 0))
}

func TestRenderDimensions(t *testing.T) {
	c := newCanvas(30, 6)
	c.FillCircle(100, 40, 2, particles.Paint{Color: white, Alpha: 1})
	c.StrokeLine(0, 0, 239, 95, particles.Stroke{Paint: particles.Paint{Color: white, Alpha: 0.7}, Width: 1.2})

	out := c.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 30, lipgloss.Width(l))
	}
}

func TestPlotEndpoints(t *testing.T) {
	var cells [][2]int
	plot(0, 0, 3, -2, func(col, row int) { cells = append(cells, [2]int{col, row}) })
	require.NotEmpty(t, cells)
	assert.Equal(t, [2]int{0, 0}, cells[0])
	assert.Equal(t, [2]int{3, -2}, cells[len(cells)-1])
}
