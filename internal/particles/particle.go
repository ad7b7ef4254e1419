// Package particles implements the ambient particle field: a population of
// drifting points that wrap at the surface edges, and the proximity graph
// drawn between them every frame.
package particles

import (
	"math"
	"math/rand"

	"crowdwatch.klederson.com/internal/config"
)

// Particle is one ambient point. Velocity and radius are fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Store owns the particle population and its motion law.
// It is not safe for concurrent use; the render loop is its only writer.
type Store struct {
	rng       *rand.Rand
	width     float64
	height    float64
	particles []Particle
}

// NewStore creates an empty store drawing randomness from rng.
func NewStore(rng *rand.Rand) *Store {
	return &Store{rng: rng}
}

// PopulationSize returns floor(width*height / DensityDivisor), or 0 for a
// degenerate surface.
func PopulationSize(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / config.DensityDivisor))
}

// Initialize replaces the population with a fresh one sized to the surface.
// The previous arena is dropped wholesale, never reused.
func (s *Store) Initialize(width, height float64) []Particle {
	s.width = math.Max(width, 0)
	s.height = math.Max(height, 0)

	n := PopulationSize(s.width, s.height)
	arena := make([]Particle, n)
	for i := range arena {
		arena[i] = Particle{
			X:      s.rng.Float64() * s.width,
			Y:      s.rng.Float64() * s.height,
			Radius: config.RadiusMin + s.rng.Float64()*(config.RadiusMax-config.RadiusMin),
			VX:     (s.rng.Float64()*2 - 1) * config.SpeedRange,
			VY:     (s.rng.Float64()*2 - 1) * config.SpeedRange,
		}
	}
	s.particles = arena
	return arena
}

// Particles returns the live population. Callers must not retain it across
// an Initialize.
func (s *Store) Particles() []Particle {
	return s.particles
}

// Len returns the population size.
func (s *Store) Len() int {
	return len(s.particles)
}

// Bounds returns the surface size the population was spawned for.
func (s *Store) Bounds() (width, height float64) {
	return s.width, s.height
}

// Step advances every particle once within the store's bounds.
func (s *Store) Step() {
	for i := range s.particles {
		Advance(&s.particles[i], s.width, s.height)
	}
}

// Advance moves p by its velocity and wraps it to the opposite edge when it
// leaves [0,width) x [0,height).
func Advance(p *Particle, width, height float64) {
	p.X = wrap(p.X+p.VX, width)
	p.Y = wrap(p.Y+p.VY, height)
}

// wrap sends coordinates past the upper bound to 0 and coordinates below 0
// to the upper bound, then folds the result into [0, bound).
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= bound {
		v = 0
	} else if v < 0 {
		v = bound
	}
	// Landing on the upper bound itself (including a wrap from below) is
	// outside the half-open range.
	if v >= bound {
		v = math.Nextafter(bound, 0)
	}
	return v
}
