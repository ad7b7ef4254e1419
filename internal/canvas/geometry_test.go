package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldToCellRoundTrip(t *testing.T) {
	x, y := CellCenter(7, 3)
	col, row := WorldToCell(x, y)
	assert.Equal(t, 7, col)
	assert.Equal(t, 3, row)

	col, row = WorldToCell(-0.5, -0.5)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)
}

func TestVignette(t *testing.T) {
	center := Vignette(50, 15, 101, 31)
	corner := Vignette(0, 0, 101, 31)
	assert.InDelta(t, 1.0, center, 1e-9)
	assert.Less(t, corner, 0.05)
	assert.GreaterOrEqual(t, corner, 0.0)
	assert.Equal(t, 1.0, Vignette(0, 0, 0, 0))
}

func TestLineChar(t *testing.T) {
	assert.Equal(t, '-', LineChar(100, 5))
	assert.Equal(t, '|', LineChar(2, -100))
	assert.Equal(t, '\\', LineChar(40, 80))
	assert.Equal(t, '\\', LineChar(-40, -80))
	assert.Equal(t, '/', LineChar(40, -80))
}

func TestCrossesGrid(t *testing.T) {
	assert.True(t, crossesGrid(0, 8))
	assert.False(t, crossesGrid(8, 8))
	assert.True(t, crossesGrid(32, 16))
	assert.False(t, crossesGrid(48, 16))
}
