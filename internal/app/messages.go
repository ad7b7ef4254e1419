package app

import "time"

// TickMsg drives the display refresh: each tick steps the frame queue.
type TickMsg time.Time

// StopLiveMsg reports the result of asking the service to stop its live
// analysis.
type StopLiveMsg struct {
	Err error
}
