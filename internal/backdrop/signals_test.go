package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalsDispatchInOrder(t *testing.T) {
	s := NewSignals()
	var got []string
	s.OnResize(func(w, h float64) { got = append(got, "first") })
	s.OnResize(func(w, h float64) { got = append(got, "second") })

	s.Resize(10, 20)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestSignalsUnsubscribe(t *testing.T) {
	s := NewSignals()
	var moves int
	unsub := s.OnPointerMove(func(x, y float64) { moves++ })
	stopResize := s.OnResize(func(w, h float64) {})
	assert.Equal(t, 2, s.Listeners())

	s.PointerMove(1, 1)
	unsub()
	unsub()
	s.PointerMove(2, 2)

	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, s.Listeners())
	stopResize()
	assert.Zero(t, s.Listeners())
}

func TestSignalsUnsubscribeDuringDispatch(t *testing.T) {
	s := NewSignals()
	var calls int
	var unsub func()
	unsub = s.OnResize(func(w, h float64) {
		calls++
		unsub()
	})
	s.OnResize(func(w, h float64) { calls++ })

	s.Resize(1, 1)
	s.Resize(1, 1)
	assert.Equal(t, 3, calls)
}
