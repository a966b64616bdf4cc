package backnav

import "go.uber.org/atomic"

// GestureLock holds whether the quick-back gesture is disabled.
//
// Pages request a value while building a frame. The lock takes it when
// Settle runs after the frame is presented. Locked is safe to read from any
// goroutine.
type GestureLock struct {
	locked  *atomic.Bool
	pending *atomic.Bool
	dirty   *atomic.Bool
}

// NewGestureLock creates an unlocked gesture lock.
func NewGestureLock() *GestureLock {
	return &GestureLock{
		locked:  atomic.NewBool(false),
		pending: atomic.NewBool(false),
		dirty:   atomic.NewBool(false),
	}
}

// Request records the desired lock state for the next Settle.
func (g *GestureLock) Request(disabled bool) {
	g.pending.Store(disabled)
	g.dirty.Store(true)
}

// Settle applies a pending request. Reports whether the lock state changed.
func (g *GestureLock) Settle() bool {
	if !g.dirty.Swap(false) {
		return false
	}
	next := g.pending.Load()
	return g.locked.Swap(next) != next
}

// Locked reports whether the gesture is currently disabled.
func (g *GestureLock) Locked() bool {
	return g.locked.Load()
}
