// Package field implements the animated particle backdrop: a set of drifting
// translucent dots that advance once per display frame and reflect off the
// edges of the surface they live on.
package field

import "math/rand"

// Config holds the generation tuning. The values are presentational defaults
// carried over from the page design, not derived from anything.
type Config struct {
	NarrowWidth float64 // below this surface width the field thins out
	SparseCount int     // particle count on narrow surfaces
	DenseCount  int     // particle count at NarrowWidth and above
	MinRadius   float64 // px, inclusive
	MaxRadius   float64 // px, exclusive
	MaxSpeed    float64 // velocity components are uniform in [-MaxSpeed, MaxSpeed)
	MaxOpacity  float64 // opacities are uniform in [0, MaxOpacity)
}

// DefaultConfig returns the stock tuning: 15 dots under 768px width, 25
// otherwise, radius [1,3), speed [-0.15,0.15) px/frame, opacity [0,0.3).
func DefaultConfig() Config {
	return Config{
		NarrowWidth: 768,
		SparseCount: 15,
		DenseCount:  25,
		MinRadius:   1,
		MaxRadius:   3,
		MaxSpeed:    0.15,
		MaxOpacity:  0.3,
	}
}

// Particle is a single animated dot. It is mutated in place every step and is
// never removed on its own; the whole set is regenerated when the surface
// resizes.
type Particle struct {
	X, Y    float64 // position, px
	DX, DY  float64 // velocity, px per frame
	R       float64 // radius, px
	Opacity float64 // fill alpha in [0,1]
}

// Canvas is the drawing surface the field renders to. Production wraps the
// screen image; tests substitute a recording fake.
type Canvas interface {
	FillCircle(x, y, r, opacity float64)
}

// Field owns the particle set for one surface. It is driven from a single
// frame loop and does no locking.
type Field struct {
	cfg       Config
	w, h      float64
	particles []Particle
	rng       *rand.Rand
}

// New returns an empty field. Resize sizes the surface and generates the
// first particle set.
func New(cfg Config, rng *rand.Rand) *Field {
	return &Field{cfg: cfg, rng: rng}
}

// Resize sets the surface dimensions and regenerates every particle. The old
// set is invalid after a resize because the count depends on the new width.
func (f *Field) Resize(w, h float64) {
	f.w, f.h = w, h
	f.regenerate()
}

func (f *Field) regenerate() {
	n := f.cfg.DenseCount
	if f.w < f.cfg.NarrowWidth {
		n = f.cfg.SparseCount
	}
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * f.w,
			Y:       f.rng.Float64() * f.h,
			DX:      (f.rng.Float64() - 0.5) * 2 * f.cfg.MaxSpeed,
			DY:      (f.rng.Float64() - 0.5) * 2 * f.cfg.MaxSpeed,
			R:       f.cfg.MinRadius + f.rng.Float64()*(f.cfg.MaxRadius-f.cfg.MinRadius),
			Opacity: f.rng.Float64() * f.cfg.MaxOpacity,
		}
	}
}

// Step advances every particle by one frame. A particle whose next position
// would leave [0,W]×[0,H] has the offending velocity component negated before
// it moves, so the dot turns back instead of escaping. The axes are checked
// independently; a corner hit reflects on both in the same step.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		if nx := p.X + p.DX; nx < 0 || nx > f.w {
			p.DX = -p.DX
		}
		if ny := p.Y + p.DY; ny < 0 || ny > f.h {
			p.DY = -p.DY
		}
		p.X += p.DX
		p.Y += p.DY
	}
}

// Draw paints every particle as a filled circle with its own opacity.
func (f *Field) Draw(c Canvas) {
	for i := range f.particles {
		p := &f.particles[i]
		c.FillCircle(p.X, p.Y, p.R, p.Opacity)
	}
}

// Particles exposes the live set. Callers must treat it as read-only.
func (f *Field) Particles() []Particle { return f.particles }

// Size returns the current surface dimensions.
func (f *Field) Size() (w, h float64) { return f.w, f.h }
