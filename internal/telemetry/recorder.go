package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// Record is one CSV row of recorded telemetry.
type Record struct {
	Time        string `csv:"time"`
	Session     string `csv:"session"`
	Mode        string `csv:"mode"`
	PeopleCount int    `csv:"people_count"`
	Risk        string `csv:"risk"`
	Motion      string `csv:"motion"`
	Speed       string `csv:"speed"`
	Place       string `csv:"place"`
	Status      string `csv:"status"`
}

// NewRecord builds a row from a reading.
func NewRecord(at time.Time, session string, mode Mode, r Reading) Record {
	return Record{
		Time:        at.Format(time.RFC3339),
		Session:     session,
		Mode:        mode.String(),
		PeopleCount: r.PeopleCount,
		Risk:        r.Risk,
		Motion:      r.Motion,
		Speed:       r.Speed,
		Place:       r.Place,
		Status:      r.Status,
	}
}

// Recorder appends readings to a CSV stream, writing the header once.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewRecorder writes to w. If w is an io.Closer, Close closes it.
func NewRecorder(w io.Writer) *Recorder {
	r := &Recorder{w: w}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// OpenRecorder creates (or truncates) the CSV file at path.
// Returns nil if path is empty (recording disabled).
func OpenRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating record file: %w", err)
	}
	return NewRecorder(f), nil
}

// Write appends one record.
func (r *Recorder) Write(rec Record) error {
	if r == nil {
		return nil
	}

	records := []Record{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close releases the underlying file.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
