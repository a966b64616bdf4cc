package cover

import "math"

// ScrollAction is invoked on every scroll update with the raw offset and the
// header visible ratio. Callers clamp the ratio themselves.
type ScrollAction func(offset Point, headerVisibleRatio float64)

// Tracker forwards offset changes to a ScrollAction.
type Tracker struct {
	SafeAreaTop float64
	OnScroll    ScrollAction

	last   Point
	primed bool
}

// Track records the offset and notifies OnScroll when it differs from the
// previous one. The first call always notifies. Reports whether it notified.
func (t *Tracker) Track(offset Point) bool {
	if t.primed && offset == t.last {
		return false
	}
	t.last = offset
	t.primed = true

	if t.OnScroll != nil {
		t.OnScroll(offset, HeaderVisibleRatio(offset.Y, t.SafeAreaTop))
	}
	return true
}

// Last returns the most recently tracked offset.
func (t *Tracker) Last() Point {
	return t.last
}

// Default scroller tuning.
const (
	DefaultScrollStep      = 85.0
	DefaultScrollEase      = 0.15
	DefaultOverscrollLimit = 120.0
)

// Scroller animates a vertical scroll position toward a target. Scrolling up
// past the top pulls the content down (rubber band) up to the overscroll
// limit, then springs back to the top once the pull has been displayed.
type Scroller struct {
	position   float64 // distance scrolled down, negative while overscrolled
	target     float64
	maxScroll  float64
	step       float64
	ease       float64
	overscroll float64
}

// NewScroller creates a scroller that moves by step per input.
func NewScroller(step float64) *Scroller {
	if step <= 0 {
		step = DefaultScrollStep
	}
	return &Scroller{
		step:       step,
		ease:       DefaultScrollEase,
		overscroll: DefaultOverscrollLimit,
	}
}

// SetOverscrollLimit sets how far content can be pulled past the top.
// Zero disables overscroll.
func (s *Scroller) SetOverscrollLimit(limit float64) {
	s.overscroll = max(0, limit)
}

// SetBounds sets the scrollable range from the content and viewport heights.
func (s *Scroller) SetBounds(contentHeight, viewportHeight float64) {
	s.maxScroll = max(0, contentHeight-viewportHeight)
	if s.target > s.maxScroll {
		s.target = s.maxScroll
	}
	if s.position > s.maxScroll {
		s.position = s.maxScroll
	}
}

// MaxScroll returns the furthest scroll position.
func (s *Scroller) MaxScroll() float64 {
	return s.maxScroll
}

// ScrollUp moves the target toward the top, pulling past it when already there.
func (s *Scroller) ScrollUp() {
	if s.target <= 0 {
		s.target = max(-s.overscroll, s.target-s.step/2)
		return
	}
	s.target = max(0, s.target-s.step)
}

// ScrollDown moves the target toward the bottom.
func (s *Scroller) ScrollDown() {
	s.target = min(s.maxScroll, max(0, s.target)+s.step)
}

// ScrollTo moves the target to position, clamped to the scrollable range.
func (s *Scroller) ScrollTo(position float64) {
	s.target = math.Max(0, math.Min(position, s.maxScroll))
}

// Restore jumps straight to a position, used when returning to a page.
func (s *Scroller) Restore(position float64) {
	position = math.Max(0, math.Min(position, s.maxScroll))
	s.position = position
	s.target = position
}

// Update advances the animation by one frame. Reports whether the position moved.
func (s *Scroller) Update() bool {
	previous := s.position

	delta := s.target - s.position
	if math.Abs(delta) < 0.5 {
		s.position = s.target
	} else {
		s.position += delta * s.ease
	}

	if s.position == s.target && s.target < 0 {
		s.target = 0
	}

	return s.position != previous
}

// Position returns the current scroll distance from the top.
func (s *Scroller) Position() float64 {
	return s.position
}

// Offset returns the position as a tracker offset.
func (s *Scroller) Offset() Point {
	return Point{Y: -s.position}
}

// Settled reports whether the animation has come to rest.
func (s *Scroller) Settled() bool {
	return s.position == s.target && s.target >= 0
}
