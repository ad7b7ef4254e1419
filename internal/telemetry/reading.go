package telemetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mode selects which analysis feed is polled.
type Mode string

const (
	ModeLive  Mode = "live"
	ModeVideo Mode = "video"
)

// Endpoint returns the progress path for the mode.
func (m Mode) Endpoint() string {
	if m == ModeLive {
		return "/live_progress"
	}
	return "/progress"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLive {
		return ModeVideo
	}
	return ModeLive
}

func (m Mode) String() string {
	return string(m)
}

// Risk levels reported by the analysis service.
const (
	RiskIdle   = "IDLE"
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Reading is one telemetry sample from the analysis service.
type Reading struct {
	PeopleCount int
	Risk        string
	Motion      string
	Speed       string
	Place       string
	Status      string
	Progress    float64
}

// wireReading mirrors the JSON body. Numeric fields are loosely typed because
// the service is not consistent about quoting them.
type wireReading struct {
	PeopleCount  any    `json:"people_count"`
	Risk         string `json:"risk"`
	Motion       string `json:"motion"`
	MotionStatus string `json:"motion_status"`
	Speed        any    `json:"speed"`
	Place        string `json:"place"`
	Status       string `json:"status"`
	Progress     any    `json:"progress"`
}

// DecodeReading parses a progress response body.
func DecodeReading(data []byte) (Reading, error) {
	var w wireReading
	if err := json.Unmarshal(data, &w); err != nil {
		return Reading{}, fmt.Errorf("decoding reading: %w", err)
	}

	r := Reading{
		PeopleCount: int(toNumber(w.PeopleCount)),
		Risk:        strings.ToUpper(strings.TrimSpace(w.Risk)),
		Motion:      w.Motion,
		Speed:       toText(w.Speed),
		Place:       w.Place,
		Status:      w.Status,
		Progress:    toNumber(w.Progress),
	}
	if r.Risk == "" {
		r.Risk = RiskLow
	}
	if r.Motion == "" {
		r.Motion = w.MotionStatus
	}
	if r.PeopleCount < 0 {
		r.PeopleCount = 0
	}
	return r, nil
}

// toNumber accepts a JSON number or a numeric string. Anything else is 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func toText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// ClassifyRisk maps a head count to a risk level using the service's
// thresholds.
func ClassifyRisk(count, mediumAt, highAt int) string {
	switch {
	case count < mediumAt:
		return RiskLow
	case count < highAt:
		return RiskMedium
	default:
		return RiskHigh
	}
}
