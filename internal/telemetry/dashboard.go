package telemetry

import (
	"fmt"
	"time"

	"crowdwatch.klederson.com/internal/config"
	"gonum.org/v1/gonum/stat"
)

// Dashboard holds what the UI shows about the current surveillance session.
// It is owned by the tea model and mutated only from Update.
type Dashboard struct {
	Active  bool
	Mode    Mode
	Session string

	Latest  Reading
	Updated time.Time

	Polls     int
	Failures  int
	LastError error
	RetryIn   time.Duration

	history *History
	logbook *Logbook
}

// NewDashboard creates an idle dashboard for the mode.
func NewDashboard(mode Mode) *Dashboard {
	return &Dashboard{
		Mode:    mode,
		history: NewHistory(config.HistorySize),
		logbook: NewLogbook(config.LogSize),
	}
}

// Start activates a new session.
func (d *Dashboard) Start(session string) {
	d.Reset()
	d.Active = true
	d.Session = session
}

// Stop ends the session and clears all session data.
func (d *Dashboard) Stop() {
	d.Reset()
}

// Reset returns the dashboard to its idle state, keeping the mode.
func (d *Dashboard) Reset() {
	d.Active = false
	d.Session = ""
	d.Latest = Reading{}
	d.Updated = time.Time{}
	d.Polls = 0
	d.Failures = 0
	d.LastError = nil
	d.RetryIn = 0
	d.history.Reset()
	d.logbook.Reset()
}

// Apply records a successful reading.
func (d *Dashboard) Apply(r Reading, at time.Time) {
	if !d.Active {
		return
	}
	d.Latest = r
	d.Updated = at
	d.Polls++
	d.LastError = nil
	d.RetryIn = 0
	d.history.Push(Sample{At: at, Count: r.PeopleCount})
	d.logbook.Add(FormatLogLine(at, r))
}

// Fail records a failed poll.
func (d *Dashboard) Fail(err error, retry time.Duration) {
	if !d.Active {
		return
	}
	d.Failures++
	d.LastError = err
	d.RetryIn = retry
}

// Accepts reports whether a message from session belongs to the live run.
func (d *Dashboard) Accepts(session string) bool {
	return d.Active && session == d.Session
}

// Risk returns the current risk level, IDLE when no session is active.
func (d *Dashboard) Risk() string {
	if !d.Active || d.Latest.Risk == "" {
		return RiskIdle
	}
	return d.Latest.Risk
}

// Samples returns the chart history, oldest first.
func (d *Dashboard) Samples() []Sample {
	return d.history.Samples()
}

// Counts returns the chart values, oldest first.
func (d *Dashboard) Counts() []float64 {
	return d.history.Counts()
}

// Logs returns the log lines, newest first.
func (d *Dashboard) Logs() []string {
	return d.logbook.Lines()
}

// MeanCount returns the average head count over the history window.
func (d *Dashboard) MeanCount() float64 {
	counts := d.history.Counts()
	if len(counts) == 0 {
		return 0
	}
	return stat.Mean(counts, nil)
}

// Online reports whether the last poll succeeded.
func (d *Dashboard) Online() bool {
	return d.Active && d.LastError == nil && d.Polls > 0
}

// FormatLogLine renders one log entry.
func FormatLogLine(at time.Time, r Reading) string {
	return fmt.Sprintf("[%s] TRK_OBJ: %d | RSK_LVL: %s", ClockLabel(at), r.PeopleCount, r.Risk)
}

// ClockLabel formats a time as MM:SS.
func ClockLabel(t time.Time) string {
	return t.Format("04:05")
}
