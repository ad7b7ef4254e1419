// Package backdrop drives the ambient particle field: it sizes the surface,
// spawns the population, subscribes to host signals and keeps a frame loop
// running until teardown.
package backdrop

import (
	"errors"
	"math/rand"
	"time"

	"crowdwatch.klederson.com/internal/particles"
	"go.uber.org/zap"
)

// ErrReleased is returned when mounting a controller that was torn down.
var ErrReleased = errors.New("backdrop: controller already torn down")

// State is the lifecycle phase of a Controller.
type State int

const (
	StateUnmounted State = iota
	StateInitializing
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	default:
		return "unmounted"
	}
}

// Surface is a drawing target the controller can resize.
type Surface interface {
	particles.Surface
	Resize(width, height float64)
}

// FrameStats is reported to the frame observer after every frame.
type FrameStats struct {
	particles.FrameStats
	Duration time.Duration
}

// Options configures a Controller.
type Options struct {
	Surface   Surface
	Scheduler Scheduler
	Signals   *Signals
	Rand      *rand.Rand
	Style     particles.Style
	Logger    *zap.Logger
	OnFrame   func(FrameStats) // optional
}

// Controller owns one mounted particle field.
type Controller struct {
	surface  Surface
	sched    Scheduler
	signals  *Signals
	store    *particles.Store
	renderer *particles.Renderer
	log      *zap.Logger
	onFrame  func(FrameStats)

	state    State
	released bool
	pointer  particles.Pointer

	frame        FrameID
	framePending bool
	unsubscribe  []func()
}

// New creates an unmounted controller.
func New(opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	style := opts.Style
	if style == (particles.Style{}) {
		style = particles.DefaultStyle()
	}
	return &Controller{
		surface:  opts.Surface,
		sched:    opts.Scheduler,
		signals:  opts.Signals,
		store:    particles.NewStore(rng),
		renderer: particles.NewRenderer(style),
		log:      log,
		onFrame:  opts.OnFrame,
	}
}

// Mount sizes the surface, spawns the population, subscribes to the host
// signals and requests the first frame. Mounting a running controller is a
// no-op.
func (c *Controller) Mount(width, height float64) error {
	if c.released {
		return ErrReleased
	}
	if c.state != StateUnmounted {
		return nil
	}

	c.initialize(width, height)

	if c.signals != nil {
		c.unsubscribe = append(c.unsubscribe,
			c.signals.OnResize(c.handleResize),
			c.signals.OnPointerMove(c.handlePointer),
		)
	}
	c.state = StateRunning
	c.requestFrame()

	c.log.Debug("backdrop mounted",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("particles", c.store.Len()))
	return nil
}

// Teardown detaches the listeners and cancels the pending frame. It is safe
// to call any number of times.
func (c *Controller) Teardown() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil

	if c.framePending && c.sched != nil {
		c.sched.CancelFrame(c.frame)
	}
	c.framePending = false

	if !c.released {
		c.log.Debug("backdrop torn down", zap.Int("particles", c.store.Len()))
	}
	c.state = StateUnmounted
	c.released = true
	c.store.Initialize(0, 0)
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// Pointer returns the last pointer position the controller has seen.
func (c *Controller) Pointer() particles.Pointer {
	return c.pointer
}

// Population returns a copy of the current particles.
func (c *Controller) Population() []particles.Particle {
	return append([]particles.Particle(nil), c.store.Particles()...)
}

// FramePending reports whether a frame is scheduled.
func (c *Controller) FramePending() bool {
	return c.framePending
}

func (c *Controller) initialize(width, height float64) {
	c.state = StateInitializing
	if c.surface != nil {
		c.surface.Resize(width, height)
	}
	c.store.Initialize(width, height)
}

func (c *Controller) handleResize(width, height float64) {
	if c.state != StateRunning {
		return
	}
	c.initialize(width, height)
	c.state = StateRunning
	c.log.Debug("backdrop resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("particles", c.store.Len()))
}

func (c *Controller) handlePointer(x, y float64) {
	c.pointer = particles.Pointer{X: x, Y: y, Present: true}
}

func (c *Controller) requestFrame() {
	if c.sched == nil {
		return
	}
	c.frame = c.sched.RequestFrame(c.tick)
	c.framePending = true
}

// tick renders one frame from a pointer snapshot, then schedules the next.
func (c *Controller) tick() {
	c.framePending = false
	if c.state != StateRunning {
		return
	}

	ptr := c.pointer
	start := time.Now()
	stats := c.renderer.RenderFrame(c.store, ptr, c.surface)
	if c.onFrame != nil {
		c.onFrame(FrameStats{FrameStats: stats, Duration: time.Since(start)})
	}

	c.requestFrame()
}
