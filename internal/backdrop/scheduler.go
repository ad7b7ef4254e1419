package backdrop

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler runs a callback once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler stepped explicitly by its owner, once per
// display refresh. Callbacks requested while a step is running wait for the
// next step. Not safe for concurrent use.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Step.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a queued callback. Unknown or already-run IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Step runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Step() int {
	batch := q.pending
	q.pending = nil

	ran := 0
	for _, r := range batch {
		r.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
