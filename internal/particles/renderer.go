package particles

import (
	"crowdwatch.klederson.com/internal/config"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint is a fill color with alpha in [0, 1].
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// Stroke describes a line segment's styling.
type Stroke struct {
	Paint
	Width     float64
	Glow      float64 // Blur radius of the soft glow, 0 for none
	GlowColor colorful.Color
}

// Surface is the 2D drawing target for a frame.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, fill Paint)
	StrokeLine(x0, y0, x1, y1 float64, stroke Stroke)
}

// Style holds the colors a Renderer draws with.
type Style struct {
	Accent    colorful.Color
	Highlight colorful.Color
}

// DefaultStyle returns the accent blue and white highlight palette.
func DefaultStyle() Style {
	return Style{
		Accent:    MustHex(config.AccentHex),
		Highlight: MustHex(config.HighlightHex),
	}
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Particles int
	Links     int
}

// Renderer produces frames from a Store and a pointer snapshot.
type Renderer struct {
	style Style
	links []Link // reused across frames
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// RenderFrame clears the surface, advances and draws every particle, then
// draws the proximity graph. A nil surface skips the frame entirely.
func (r *Renderer) RenderFrame(store *Store, ptr Pointer, s Surface) FrameStats {
	if s == nil || store == nil {
		return FrameStats{}
	}

	s.Clear()

	dot := Paint{Color: r.style.Accent, Alpha: config.ParticleAlpha}
	pop := store.Particles()
	width, height := store.Bounds()
	for i := range pop {
		Advance(&pop[i], width, height)
		s.FillCircle(pop[i].X, pop[i].Y, pop[i].Radius, dot)
	}

	r.links = AppendLinks(r.links[:0], pop, ptr)
	for _, l := range r.links {
		a, b := pop[l.A], pop[l.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, r.strokeFor(l))
	}

	return FrameStats{Particles: len(pop), Links: len(r.links)}
}

func (r *Renderer) strokeFor(l Link) Stroke {
	if l.Highlighted {
		return Stroke{
			Paint:     Paint{Color: r.style.Highlight, Alpha: l.Opacity},
			Width:     config.HighlightLineWidth,
			Glow:      config.HighlightGlow,
			GlowColor: r.style.Accent,
		}
	}
	return Stroke{
		Paint: Paint{Color: r.style.Accent, Alpha: l.Opacity},
		Width: config.AmbientLineWidth,
	}
}

// MustHex parses a palette constant, panicking on a malformed one.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
