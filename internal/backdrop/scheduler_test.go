package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueStepRunsQueuedOnly(t *testing.T) {
	q := NewFrameQueue()
	var runs int
	var loop func()
	loop = func() {
		runs++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	assert.Equal(t, 1, q.Step())
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, q.Pending())

	assert.Equal(t, 1, q.Step())
	assert.Equal(t, 2, runs)
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	var ran []string
	a := q.RequestFrame(func() { ran = append(ran, "a") })
	q.RequestFrame(func() { ran = append(ran, "b") })

	q.CancelFrame(a)
	q.CancelFrame(a)
	q.CancelFrame(FrameID(999))

	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 1, q.Step())
	assert.Equal(t, []string{"b"}, ran)
	assert.Zero(t, q.Pending())
}

func TestFrameQueueIDsAreUnique(t *testing.T) {
	q := NewFrameQueue()
	a := q.RequestFrame(func() {})
	q.Step()
	b := q.RequestFrame(func() {})
	assert.NotEqual(t, a, b)

	// cancelling a stale id must not drop the live request
	q.CancelFrame(a)
	assert.Equal(t, 1, q.Pending())
}
