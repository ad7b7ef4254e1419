package app

import (
	"context"
	"math/rand"
	"time"

	"crowdwatch.klederson.com/internal/backdrop"
	"crowdwatch.klederson.com/internal/canvas"
	"crowdwatch.klederson.com/internal/config"
	"crowdwatch.klederson.com/internal/metrics"
	"crowdwatch.klederson.com/internal/telemetry"
	"crowdwatch.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	canvas   *canvas.Canvas
	frames   *backdrop.FrameQueue
	signals  *backdrop.Signals
	backdrop *backdrop.Controller
	rng      *rand.Rand

	dash     *telemetry.Dashboard
	source   telemetry.Source
	poller   *telemetry.Poller
	client   *telemetry.Client // nil in demo mode
	recorder *telemetry.Recorder
	program  telemetry.Sender

	log       *zap.Logger
	lastFrame backdrop.FrameStats
}

// resetter is a source that keeps per-session state.
type resetter interface {
	Reset()
}

// Options configures the root model.
type Options struct {
	Settings config.Settings
	Source   telemetry.Source // overrides the source picked from Settings
	Recorder *telemetry.Recorder
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// AppModel is the root Bubble Tea model for CrowdWatch.
type AppModel struct {
	width  int
	height int
	layout ui.Layout

	fps          int
	showBackdrop bool

	shared *shared
}

// New creates a new AppModel.
func New(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	st := opts.Settings

	s := &shared{
		canvas:   canvas.New(),
		frames:   backdrop.NewFrameQueue(),
		signals:  backdrop.NewSignals(),
		rng:      rng,
		dash:     telemetry.NewDashboard(telemetry.Mode(st.Mode)),
		recorder: opts.Recorder,
		log:      log,
	}

	source := opts.Source
	if source == nil {
		if st.Demo {
			// the poller goroutine draws from its own generator
			source = telemetry.NewMockSource(rand.New(rand.NewSource(rng.Int63())))
		} else {
			s.client = telemetry.NewClient(st.Endpoint, st.Timeout)
			source = s.client
		}
	}
	s.source = source
	s.poller = telemetry.NewPoller(source, st.PollInterval, st.Timeout, log)

	fps := st.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	return AppModel{
		fps:          fps,
		showBackdrop: true,
		shared:       s,
	}
}

// Attach gives the model the program that poll results are sent to. Must be
// called before p.Run().
func (m *AppModel) Attach(p telemetry.Sender) {
	m.shared.program = p
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = ui.ComputeLayout(msg.Width, msg.Height)
		m.resizeBackdrop()
		return m, nil

	case tea.MouseMsg:
		m.pointerMoved(msg.X, msg.Y)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.frames.Step()
		return m, tickCmd(m.fps)

	case telemetry.ReadingMsg:
		m.applyReading(msg)
		return m, nil

	case telemetry.PollErrorMsg:
		if !m.shared.dash.Accepts(msg.Session) {
			return m, nil
		}
		m.shared.dash.Fail(msg.Err, msg.Retry)
		metrics.ObservePoll(m.shared.dash.Mode.String(), msg.Err)
		return m, nil

	case StopLiveMsg:
		if msg.Err != nil {
			m.shared.log.Warn("stop live analysis failed", zap.Error(msg.Err))
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shutdown()
		return m, tea.Quit

	case "s", "S":
		if m.shared.dash.Active {
			return m, m.stopSession()
		}
		m.startSession()

	case "m", "M":
		if !m.shared.dash.Active {
			m.shared.dash.Mode = m.shared.dash.Mode.Toggle()
		}

	case "r", "R":
		if m.showBackdrop {
			m.teardownBackdrop()
			m.resizeBackdrop()
		}

	case "b", "B":
		m.showBackdrop = !m.showBackdrop
		if m.showBackdrop {
			m.resizeBackdrop()
		} else {
			m.teardownBackdrop()
		}
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	l := m.layout
	d := m.shared.dash

	menuBar := ui.RenderMenuBar(l.Width, d.Mode, d.Active, d.Online())

	content := ""
	if m.showBackdrop {
		content = m.shared.canvas.Render()
	}
	backdropPanel := ui.RenderBackdropPanel(l.BackdropWidth, l.BodyHeight, content, m.showBackdrop)

	cards := ui.RenderCards(d, l.SideWidth, l.CardsHeight)
	var samples []telemetry.Sample
	if d.Active {
		samples = d.Samples()
	}
	chart := ui.RenderChart(samples, l.SideWidth, l.ChartHeight)
	logs := ui.RenderLogPanel(d.Logs(), d.Active, l.SideWidth, l.LogHeight)

	frame := m.shared.lastFrame
	statusBar := ui.RenderStatusBar(l.Width, ui.StatusInfo{
		Active:    d.Active,
		Particles: frame.Particles,
		Links:     frame.Links,
		Polls:     d.Polls,
		Failures:  d.Failures,
		MeanCount: d.MeanCount(),
		LastError: d.LastError,
		RetryIn:   d.RetryIn,
		Recording: m.shared.recorder != nil,
	})

	return ui.ComposeLayout(menuBar, backdropPanel, cards, chart, logs, statusBar)
}

// backdropSize returns the backdrop panel's content area in world units.
func (m AppModel) backdropSize() (width, height float64) {
	_, _, cols, rows := m.layout.Backdrop()
	return float64(cols) * config.CellWidth, float64(rows) * config.CellHeight
}

// resizeBackdrop mounts a fresh backdrop if none is running, otherwise
// signals the new size to the running one.
func (m AppModel) resizeBackdrop() {
	if !m.showBackdrop || m.width == 0 {
		return
	}
	w, h := m.backdropSize()

	s := m.shared
	if s.backdrop != nil && s.backdrop.State() == backdrop.StateRunning {
		s.signals.Resize(w, h)
		return
	}

	s.backdrop = backdrop.New(backdrop.Options{
		Surface:   s.canvas,
		Scheduler: s.frames,
		Signals:   s.signals,
		Rand:      s.rng,
		Logger:    s.log,
		OnFrame:   s.observeFrame,
	})
	if err := s.backdrop.Mount(w, h); err != nil {
		s.log.Error("mounting backdrop", zap.Error(err))
	}
}

func (m AppModel) teardownBackdrop() {
	s := m.shared
	if s.backdrop != nil {
		s.backdrop.Teardown()
		s.backdrop = nil
	}
	s.canvas.Clear()
	s.lastFrame = backdrop.FrameStats{}
}

// pointerMoved forwards a mouse position inside the backdrop panel as a
// world-unit pointer move at the center of the hovered cell.
func (m AppModel) pointerMoved(x, y int) {
	if !m.showBackdrop || m.width == 0 {
		return
	}
	col, row, cols, rows := m.layout.Backdrop()
	cx, cy := x-col, y-row
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}
	m.shared.signals.PointerMove(canvas.CellCenter(cx, cy))
}

func (m AppModel) startSession() {
	s := m.shared
	session := uuid.NewString()
	s.dash.Start(session)
	if r, ok := s.source.(resetter); ok {
		r.Reset()
	}
	if s.program != nil {
		s.poller.Start(s.program, s.dash.Mode, session)
	}
	s.log.Info("session started",
		zap.String("session", session),
		zap.String("mode", s.dash.Mode.String()))
}

func (m AppModel) stopSession() tea.Cmd {
	s := m.shared
	s.poller.Stop()
	s.log.Info("session stopped",
		zap.String("session", s.dash.Session),
		zap.Int("polls", s.dash.Polls),
		zap.Int("failures", s.dash.Failures))

	mode := s.dash.Mode
	s.dash.Stop()

	if mode != telemetry.ModeLive || s.client == nil {
		return nil
	}
	client := s.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout)
		defer cancel()
		return StopLiveMsg{Err: client.StopLive(ctx)}
	}
}

func (m AppModel) applyReading(msg telemetry.ReadingMsg) {
	s := m.shared
	if !s.dash.Accepts(msg.Session) {
		return
	}
	s.dash.Apply(msg.Reading, msg.At)
	metrics.ObservePoll(msg.Mode.String(), nil)

	if err := s.recorder.Write(telemetry.NewRecord(msg.At, msg.Session, msg.Mode, msg.Reading)); err != nil {
		s.log.Warn("recording reading", zap.Error(err))
	}
}

func (m AppModel) shutdown() {
	s := m.shared
	m.teardownBackdrop()
	s.poller.Stop()
	if err := s.recorder.Close(); err != nil {
		s.log.Warn("closing record file", zap.Error(err))
	}
	s.log.Info("shutting down")
}

func (s *shared) observeFrame(stats backdrop.FrameStats) {
	s.lastFrame = stats
	metrics.ObserveFrame(stats.Particles, stats.Links, stats.Duration)
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
