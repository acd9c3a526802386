// Package chrome implements the scroll-linked page furniture: the content
// scroll offset with its smooth glide, the nav bar reveal, the back-to-top
// control, fade-in visibility tracking, and the named stat counters. All of
// it is plain threshold state driven once per frame; drawing happens
// elsewhere.
package chrome

// Default tuning. Presentational values preserved from the page design.
const (
	DefaultGlideFraction   = 0.18 // share of the remaining distance covered per frame
	DefaultGlideSnap       = 0.5  // px; closer than this snaps to the target
	DefaultNavRevealOffset = 100  // px scrolled before the nav bar shows
	DefaultTopShowOffset   = 300  // px scrolled before back-to-top activates
	DefaultFadeFraction    = 0.1  // element share that must enter the viewport
	DefaultFadeBottomInset = 50   // px trimmed from the viewport bottom edge
)

// Scroll tracks the vertical offset of the content viewport and the glide
// used for smooth scrolling. Offsets are clamped to [0, content-view].
type Scroll struct {
	GlideFraction float64
	GlideSnap     float64

	offset  float64
	max     float64
	target  float64
	gliding bool
}

// NewScroll returns a scroll state with the default glide tuning and no
// scrollable range; call SetLimits once the content height is known.
func NewScroll() *Scroll {
	return &Scroll{
		GlideFraction: DefaultGlideFraction,
		GlideSnap:     DefaultGlideSnap,
	}
}

// SetLimits fixes the scrollable range from the content and viewport heights.
// The current offset (and an in-flight glide target) are re-clamped so a
// shrinking document cannot leave the viewport past its end.
func (s *Scroll) SetLimits(contentH, viewH float64) {
	s.max = contentH - viewH
	if s.max < 0 {
		s.max = 0
	}
	s.offset = s.clamp(s.offset)
	s.target = s.clamp(s.target)
}

// Offset returns the current scroll position in px.
func (s *Scroll) Offset() float64 { return s.offset }

// Max returns the largest reachable offset.
func (s *Scroll) Max() float64 { return s.max }

// ScrollBy applies a manual scroll delta. Manual input cancels a glide, the
// same way user wheel input interrupts a smooth scroll.
func (s *Scroll) ScrollBy(dy float64) {
	s.gliding = false
	s.offset = s.clamp(s.offset + dy)
}

// JumpTo moves instantly to y, cancelling any glide.
func (s *Scroll) JumpTo(y float64) {
	s.gliding = false
	s.offset = s.clamp(y)
}

// GlideTo starts a smooth scroll toward y.
func (s *Scroll) GlideTo(y float64) {
	s.target = s.clamp(y)
	s.gliding = true
}

// Gliding reports whether a smooth scroll is in flight.
func (s *Scroll) Gliding() bool { return s.gliding }

// Step advances an in-flight glide by one frame: ease out toward the target,
// snapping once the remainder is under GlideSnap px.
func (s *Scroll) Step() {
	if !s.gliding {
		return
	}
	d := s.target - s.offset
	if d < s.GlideSnap && d > -s.GlideSnap {
		s.offset = s.target
		s.gliding = false
		return
	}
	s.offset += d * s.GlideFraction
}

func (s *Scroll) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > s.max {
		return s.max
	}
	return y
}
