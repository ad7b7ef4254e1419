package telemetry

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"crowdwatch.klederson.com/internal/config"
)

var mockPlaces = []string{
	"Main Concourse",
	"North Gate",
	"Platform 3",
	"Food Court",
	"Parking Level B",
}

// MockSource generates plausible crowd readings for demo mode without an
// analysis service.
type MockSource struct {
	mu        sync.Mutex
	rng       *rand.Rand
	start     time.Time
	now       func() time.Time
	base      float64
	amplitude float64
	phase     float64
	place     string
	progress  float64
}

// NewMockSource creates a demo source. A nil rng seeds from the clock.
func NewMockSource(rng *rand.Rand) *MockSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockSource{
		rng:       rng,
		start:     time.Now(),
		now:       time.Now,
		base:      4 + rng.Float64()*6, // 4-10 people
		amplitude: 3 + rng.Float64()*6, // 3-9 people swing
		phase:     rng.Float64() * 2 * math.Pi,
		place:     mockPlaces[rng.Intn(len(mockPlaces))],
	}
}

// Reset rewinds the synthetic feed for a new session.
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.start = m.now()
	m.progress = 0
}

// Fetch returns the next synthetic reading.
func (m *MockSource) Fetch(ctx context.Context, mode Mode) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now().Sub(m.start).Seconds()

	// Sinusoidal crowd swell + noise
	count := m.base + m.amplitude*math.Sin(t*0.2+m.phase) + (m.rng.Float64()-0.5)*3
	if count < 0 {
		count = 0
	}
	n := int(math.Round(count))

	motion := "IDLE"
	speed := "Static"
	if n > 0 {
		motion = "ACTIVE"
		speed = "Detecting"
	}

	r := Reading{
		PeopleCount: n,
		Risk:        ClassifyRisk(n, config.RiskMediumAt, config.RiskHighAt),
		Motion:      motion,
		Speed:       speed,
		Place:       m.place,
		Status:      "streaming",
	}

	if mode == ModeVideo {
		m.progress = math.Min(100, m.progress+1+m.rng.Float64()*2)
		r.Progress = math.Round(m.progress)
		r.Status = "processing"
		if m.progress >= 100 {
			r.Status = "completed"
		}
	}
	return r, nil
}
