package backdrop

// ResizeFunc receives a new surface size in world units.
type ResizeFunc func(width, height float64)

// PointerFunc receives a pointer position in world units.
type PointerFunc func(x, y float64)

type listener[F any] struct {
	id int
	fn F
}

// Signals fans out host resize and pointer-move events to registered
// listeners, in registration order. It is driven from the event loop and is
// not safe for concurrent use.
type Signals struct {
	nextID  int
	resize  []listener[ResizeFunc]
	pointer []listener[PointerFunc]
}

// NewSignals creates a hub with no listeners.
func NewSignals() *Signals {
	return &Signals{}
}

// OnResize registers fn and returns a function that removes it.
// The returned function is safe to call more than once.
func (s *Signals) OnResize(fn ResizeFunc) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.resize = append(s.resize, listener[ResizeFunc]{id: id, fn: fn})
	return func() { s.resize = remove(s.resize, id) }
}

// OnPointerMove registers fn and returns a function that removes it.
func (s *Signals) OnPointerMove(fn PointerFunc) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.pointer = append(s.pointer, listener[PointerFunc]{id: id, fn: fn})
	return func() { s.pointer = remove(s.pointer, id) }
}

// Resize delivers a resize event.
func (s *Signals) Resize(width, height float64) {
	for _, l := range snapshot(s.resize) {
		l.fn(width, height)
	}
}

// PointerMove delivers a pointer-move event.
func (s *Signals) PointerMove(x, y float64) {
	for _, l := range snapshot(s.pointer) {
		l.fn(x, y)
	}
}

// Listeners returns the number of registered listeners of both kinds.
func (s *Signals) Listeners() int {
	return len(s.resize) + len(s.pointer)
}

// snapshot copies the listener list so callbacks may unsubscribe mid-dispatch.
func snapshot[F any](ls []listener[F]) []listener[F] {
	return append([]listener[F](nil), ls...)
}

func remove[F any](ls []listener[F], id int) []listener[F] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}
