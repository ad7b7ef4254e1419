package telemetry

import (
	"context"
	"sync"
	"time"

	"crowdwatch.klederson.com/internal/config"
	"github.com/cenkalti/backoff/v4"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ReadingMsg is sent via tea.Program.Send for every successful poll.
type ReadingMsg struct {
	Session string
	Reading Reading
	Mode    Mode
	At      time.Time
}

// PollErrorMsg reports a failed poll.
type PollErrorMsg struct {
	Session string
	Err     error
	Retry   time.Duration
}

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Poller fetches readings on an interval in its own goroutine and delivers
// them as tea messages.
type Poller struct {
	source   Source
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller creates a stopped poller.
func NewPoller(source Source, interval, timeout time.Duration, log *zap.Logger) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		source:   source,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

// Start begins polling the mode's feed, fetching once immediately. Messages
// carry session so the receiver can drop stragglers from an earlier run. A
// running poller is restarted.
func (p *Poller) Start(s Sender, mode Mode, session string) {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.loop(ctx, s, mode, session)
}

// Stop cancels polling. It does not wait for the goroutine: Stop is called
// from the tea event loop, which the goroutine may be blocked sending to.
// Safe to call when not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Running reports whether the poll goroutine is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) loop(ctx context.Context, s Sender, mode Mode, session string) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.interval
	bo.MaxInterval = config.MaxPollBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		wait := p.interval
		if err := p.pollOnce(ctx, s, mode, session); err != nil {
			if ctx.Err() != nil {
				return
			}
			wait = bo.NextBackOff()
			p.log.Warn("telemetry poll failed",
				zap.String("mode", mode.String()),
				zap.Duration("retry_in", wait),
				zap.Error(err))
			s.Send(PollErrorMsg{Session: session, Err: err, Retry: wait})
		} else {
			bo.Reset()
		}
		timer.Reset(wait)
	}
}

func (p *Poller) pollOnce(ctx context.Context, s Sender, mode Mode, session string) error {
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	r, err := p.source.Fetch(fetchCtx, mode)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.Send(ReadingMsg{Session: session, Reading: r, Mode: mode, At: time.Now()})
	return nil
}
