package particles

import (
	"math"

	"crowdwatch.klederson.com/internal/config"
)

// Pointer is a snapshot of the pointer position in world units.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Link is one edge of the proximity graph. A is always the lower index.
type Link struct {
	A, B        int
	Distance    float64
	Opacity     float64
	Highlighted bool
}

// AppendLinks appends every pair closer than LinkDistance to dst and returns
// the extended slice. Each unordered pair is visited once.
func AppendLinks(dst []Link, pop []Particle, ptr Pointer) []Link {
	for a := 0; a < len(pop); a++ {
		for b := a + 1; b < len(pop); b++ {
			if l, ok := linkBetween(pop, a, b, ptr); ok {
				dst = append(dst, l)
			}
		}
	}
	return dst
}

// linkBetween computes the edge for the pair (i, j) in either order.
// Highlighting is gated on the lower index, so (i, j) and (j, i) agree.
func linkBetween(pop []Particle, i, j int, ptr Pointer) (Link, bool) {
	if i == j {
		return Link{}, false
	}
	a, b := i, j
	if b < a {
		a, b = b, a
	}

	d := distance(pop[a].X, pop[a].Y, pop[b].X, pop[b].Y)
	if d >= config.LinkDistance {
		return Link{}, false
	}

	l := Link{
		A:        a,
		B:        b,
		Distance: d,
		Opacity:  1 - d/config.LinkDistance,
	}
	if ptr.Present && distance(pop[a].X, pop[a].Y, ptr.X, ptr.Y) < config.HighlightRadius {
		l.Highlighted = true
	} else {
		l.Opacity *= config.AmbientOpacity
	}
	return l, true
}

func distance(x0, y0, x1, y1 float64) float64 {
	dx := x0 - x1
	dy := y0 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
