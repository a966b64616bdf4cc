package navkit

import "github.com/BrandonKowalski/navkit/pkg/navkit/cover"

// PageAction is how the user left a page.
type PageAction int

const (
	PageActionNone      PageAction = iota // Page still running
	PageActionBack                        // Back control, confirmed prompt, or quick-back popped the page
	PageActionSelected                    // A list row was selected (A button)
	PageActionConfirmed                   // Page confirmed (Start button)
)

func (a PageAction) String() string {
	switch a {
	case PageActionBack:
		return "back"
	case PageActionSelected:
		return "selected"
	case PageActionConfirmed:
		return "confirmed"
	default:
		return "none"
	}
}

// PageResult is returned by every page.
type PageResult struct {
	Action   PageAction
	Selected int         // Selected row index for list pages, -1 otherwise
	Offset   cover.Point // Scroll offset when the page closed
}

// PageResume is the position a page restores when navigated back to.
type PageResume struct {
	Scroll   float64
	Selected int
}

// ResumeState lets the router store the page position when navigating forward.
func (r PageResult) ResumeState() any {
	return PageResume{Scroll: -r.Offset.Y, Selected: r.Selected}
}
