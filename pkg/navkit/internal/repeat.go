package internal

import (
	"time"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
)

// RepeatInput turns a held button into repeated presses.
// Embed this in page controllers to get the same hold-to-scroll feel
// on every page.
type RepeatInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewRepeatInput creates a RepeatInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewRepeatInput() RepeatInput {
	return NewRepeatInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewRepeatInputWithTiming creates a RepeatInput with custom timing.
func NewRepeatInputWithTiming(delay, interval time.Duration) RepeatInput {
	return RepeatInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

// Press starts repeating button, replacing any button already held.
func (r *RepeatInput) Press(button constants.VirtualButton) {
	r.held = button
	r.hasRepeated = false
	r.lastRepeatTime = r.clock()
}

// Release stops repeating if button is the one held.
func (r *RepeatInput) Release(button constants.VirtualButton) {
	if r.held == button {
		r.Reset()
	}
}

// Held returns the button being repeated, or VirtualButtonUnassigned.
func (r *RepeatInput) Held() constants.VirtualButton {
	return r.held
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. The first repeat occurs after the delay,
// subsequent repeats after the interval.
func (r *RepeatInput) Update() (constants.VirtualButton, bool) {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned, false
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	now := r.clock()
	if now.Sub(r.lastRepeatTime) < threshold {
		return constants.VirtualButtonUnassigned, false
	}

	r.lastRepeatTime = now
	r.hasRepeated = true
	return r.held, true
}

// Reset clears the held button.
func (r *RepeatInput) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.hasRepeated = false
}

func (r *RepeatInput) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}
