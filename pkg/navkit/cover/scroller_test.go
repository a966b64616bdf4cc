package cover

import "testing"

func settle(s *Scroller, frames int) {
	for i := 0; i < frames; i++ {
		s.Update()
	}
}

func TestScrollerOverscrollSpringsBack(t *testing.T) {
	s := NewScroller(80)
	s.SetBounds(1000, 400)

	s.ScrollUp()

	var pulled bool
	for i := 0; i < 400; i++ {
		s.Update()
		if s.Offset().Y > 0 {
			pulled = true
		}
	}

	if !pulled {
		t.Fatal("expected a positive offset while overscrolling")
	}
	if s.Position() != 0 {
		t.Fatalf("position = %v, want 0 after spring back", s.Position())
	}
	if !s.Settled() {
		t.Fatal("expected scroller to be settled")
	}
}

func TestScrollerOverscrollLimit(t *testing.T) {
	s := NewScroller(80)
	s.SetOverscrollLimit(50)

	for i := 0; i < 10; i++ {
		s.ScrollUp()
	}

	for i := 0; i < 400; i++ {
		s.Update()
		if s.Offset().Y > 50 {
			t.Fatalf("offset %v exceeded overscroll limit", s.Offset().Y)
		}
	}
}

func TestScrollerClampsAtBottom(t *testing.T) {
	s := NewScroller(85)
	s.SetBounds(1000, 400)

	for i := 0; i < 20; i++ {
		s.ScrollDown()
	}
	for i := 0; i < 400; i++ {
		s.Update()
		if s.Position() > s.MaxScroll() {
			t.Fatalf("position %v exceeded max %v", s.Position(), s.MaxScroll())
		}
	}

	if s.Position() != 600 {
		t.Fatalf("position = %v, want 600", s.Position())
	}
}

func TestScrollerScrollUpFromMiddle(t *testing.T) {
	s := NewScroller(100)
	s.SetBounds(1000, 500)
	s.Restore(250)

	s.ScrollUp()
	settle(s, 400)

	if s.Position() != 150 {
		t.Fatalf("position = %v, want 150", s.Position())
	}
}

func TestScrollerRestoreClamps(t *testing.T) {
	s := NewScroller(0)
	s.SetBounds(300, 200)
	s.Restore(5000)

	if s.Position() != 100 {
		t.Fatalf("position = %v, want 100", s.Position())
	}
	if s.Update() {
		t.Fatal("restored scroller should not move")
	}
}

func TestScrollerShrinkingContentClamps(t *testing.T) {
	s := NewScroller(85)
	s.SetBounds(2000, 400)
	s.Restore(1500)

	s.SetBounds(600, 400)
	if s.Position() != 200 {
		t.Fatalf("position = %v, want 200", s.Position())
	}
}

func TestTrackerNotifiesOnChange(t *testing.T) {
	var calls int
	var lastRatio float64

	tracker := Tracker{
		SafeAreaTop: 0,
		OnScroll: func(offset Point, ratio float64) {
			calls++
			lastRatio = ratio
		},
	}

	if !tracker.Track(Point{}) {
		t.Fatal("first track should notify")
	}
	if tracker.Track(Point{}) {
		t.Fatal("unchanged offset should not notify")
	}
	if !tracker.Track(Point{Y: -22}) {
		t.Fatal("changed offset should notify")
	}

	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if lastRatio != 0.5 {
		t.Fatalf("ratio = %v, want 0.5", lastRatio)
	}
	if tracker.Last() != (Point{Y: -22}) {
		t.Fatalf("last = %+v", tracker.Last())
	}
}

func TestTrackerWithoutCallback(t *testing.T) {
	var tracker Tracker
	if !tracker.Track(Point{Y: 10}) {
		t.Fatal("expected notification result even without a callback")
	}
}

func TestScrollerScrollToClamps(t *testing.T) {
	s := NewScroller(0)
	s.SetBounds(1000, 400)

	s.ScrollTo(250)
	settle(s, 200)
	if s.Position() != 250 {
		t.Fatalf("position = %v, want 250", s.Position())
	}

	s.ScrollTo(5000)
	settle(s, 200)
	if s.Position() != 600 {
		t.Fatalf("position = %v, want 600", s.Position())
	}

	s.ScrollTo(-50)
	settle(s, 200)
	if s.Position() != 0 {
		t.Fatalf("ScrollTo never overscrolls, position = %v", s.Position())
	}
}
