package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *collector) Send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collector) snapshot() []tea.Msg {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tea.Msg(nil), c.msgs...)
}

type scriptedSource struct {
	mu    sync.Mutex
	errs  []error
	calls int
	modes []Mode
}

func (s *scriptedSource) Fetch(ctx context.Context, mode Mode) (Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes = append(s.modes, mode)
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return Reading{}, s.errs[i]
	}
	return Reading{PeopleCount: i, Risk: RiskLow}, nil
}

func (s *scriptedSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestPollerFetchesImmediatelyAndRepeats(t *testing.T) {
	src := &scriptedSource{}
	out := &collector{}
	p := NewPoller(src, 10*time.Millisecond, time.Second, nil)

	p.Start(out, ModeVideo, "session-1")
	defer p.Stop()

	require.Eventually(t, func() bool { return len(out.snapshot()) >= 3 }, 2*time.Second, 5*time.Millisecond)

	msg, ok := out.snapshot()[0].(ReadingMsg)
	require.True(t, ok)
	assert.Equal(t, "session-1", msg.Session)
	assert.Equal(t, ModeVideo, msg.Mode)
	assert.Equal(t, 0, msg.Reading.PeopleCount)
	assert.False(t, msg.At.IsZero())
	assert.True(t, p.Running())
}

func TestPollerReportsErrorsAndRecovers(t *testing.T) {
	boom := errors.New("boom")
	src := &scriptedSource{errs: []error{boom, boom}}
	out := &collector{}
	p := NewPoller(src, 5*time.Millisecond, time.Second, nil)

	p.Start(out, ModeLive, "s")
	defer p.Stop()

	require.Eventually(t, func() bool {
		for _, m := range out.snapshot() {
			if _, ok := m.(ReadingMsg); ok {
				return true
			}
		}
		return false
	}, 3*time.Second, 5*time.Millisecond)

	msgs := out.snapshot()
	first, ok := msgs[0].(PollErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, first.Err, boom)
	assert.Greater(t, first.Retry, time.Duration(0))
	assert.Equal(t, "s", first.Session)
	_, ok = msgs[1].(PollErrorMsg)
	assert.True(t, ok)
}

func TestPollerStop(t *testing.T) {
	src := &scriptedSource{}
	out := &collector{}
	p := NewPoller(src, 5*time.Millisecond, time.Second, nil)

	p.Stop() // not running yet
	p.Start(out, ModeLive, "s")
	require.Eventually(t, func() bool { return src.count() > 0 }, time.Second, time.Millisecond)

	p.Stop()
	p.Stop()
	assert.False(t, p.Running())

	// give the goroutine time to observe cancellation, then make sure it
	// stays quiet
	time.Sleep(30 * time.Millisecond)
	calls := src.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, src.count())
}

func TestPollerRestartSwitchesMode(t *testing.T) {
	src := &scriptedSource{}
	out := &collector{}
	p := NewPoller(src, 5*time.Millisecond, time.Second, nil)

	p.Start(out, ModeLive, "a")
	require.Eventually(t, func() bool { return src.count() > 0 }, time.Second, time.Millisecond)
	p.Start(out, ModeVideo, "b")
	defer p.Stop()

	require.Eventually(t, func() bool {
		msgs := out.snapshot()
		if len(msgs) == 0 {
			return false
		}
		last, ok := msgs[len(msgs)-1].(ReadingMsg)
		return ok && last.Session == "b" && last.Mode == ModeVideo
	}, time.Second, time.Millisecond)
}
