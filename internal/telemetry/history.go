package telemetry

import "time"

// Sample is one point on the density chart.
type Sample struct {
	At    time.Time
	Count int
}

// History is a circular buffer of the most recent samples.
type History struct {
	buf   []Sample
	pos   int
	count int
}

// NewHistory creates a buffer holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{
		buf: make([]Sample, capacity),
	}
}

// Push adds a sample, evicting the oldest when full.
func (h *History) Push(s Sample) {
	h.buf[h.pos] = s
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Samples returns the stored samples in chronological order.
func (h *History) Samples() []Sample {
	if h.count == 0 {
		return nil
	}
	result := make([]Sample, h.count)
	if h.count < len(h.buf) {
		copy(result, h.buf[:h.count])
	} else {
		n := copy(result, h.buf[h.pos:])
		copy(result[n:], h.buf[:h.pos])
	}
	return result
}

// Counts returns the sample counts in chronological order.
func (h *History) Counts() []float64 {
	samples := h.Samples()
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Count)
	}
	return out
}

// Last returns the most recent sample.
func (h *History) Last() (Sample, bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	return h.buf[(h.pos-1+len(h.buf))%len(h.buf)], true
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Reset empties the buffer.
func (h *History) Reset() {
	h.pos = 0
	h.count = 0
}

// Logbook keeps the newest log lines first, dropping the oldest past capacity.
type Logbook struct {
	lines    []string
	capacity int
}

// NewLogbook creates a logbook holding up to capacity lines.
func NewLogbook(capacity int) *Logbook {
	return &Logbook{capacity: capacity}
}

// Add prepends a line.
func (l *Logbook) Add(line string) {
	l.lines = append([]string{line}, l.lines...)
	if len(l.lines) > l.capacity {
		l.lines = l.lines[:l.capacity]
	}
}

// Lines returns the log, newest first.
func (l *Logbook) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Reset empties the log.
func (l *Logbook) Reset() {
	l.lines = nil
}
