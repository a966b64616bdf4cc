package backnav

import (
	"fmt"
	"strings"
)

// PageStyle selects who draws the back affordance.
//
// With StyleNative the host footer shows its own back hint and the page only
// adds a toolbar back button when it has a reason to (a presented root, or a
// confirmation that must intercept back). With StyleDefault the page always
// draws its own toolbar button and the host hint is hidden.
type PageStyle int

const (
	StyleNative PageStyle = iota
	StyleDefault
)

func (s PageStyle) String() string {
	switch s {
	case StyleNative:
		return "native"
	case StyleDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParsePageStyle maps a case-insensitive name to a PageStyle.
func ParsePageStyle(name string) (PageStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return StyleNative, nil
	case "default":
		return StyleDefault, nil
	}
	return StyleNative, fmt.Errorf("backnav: unknown page style %q", name)
}

// Context is the navigation state of the current screen, read from the
// router once per frame.
type Context struct {
	Presented bool // Screen was opened as a modal presentation
	Empty     bool // Nothing sits below this screen in its stack
}

// Icon is the glyph drawn on the back control.
type Icon int

const (
	IconChevronLeft Icon = iota
	IconClose
)

func (i Icon) String() string {
	if i == IconClose {
		return "close"
	}
	return "chevron-left"
}

// ChromeInput gathers everything the back chrome depends on.
type ChromeInput struct {
	Context      Context
	Style        PageStyle
	Confirmation *Confirmation
	ForceHide    bool
}

// Decision is the resolved back chrome for one frame.
type Decision struct {
	ShowBackButton     bool // Page draws its own back control
	Icon               Icon // Glyph for the back control
	PopGestureDisabled bool // Quick-back gesture is locked
	NativeBackHidden   bool // Host back hint is suppressed
}

// Chrome resolves the back chrome for the given input.
func Chrome(in ChromeInput) Decision {
	confirm := in.Confirmation != nil
	return Decision{
		ShowBackButton:     showBackButton(in),
		Icon:               backIcon(in.Context),
		PopGestureDisabled: confirm,
		NativeBackHidden:   in.Style == StyleDefault || confirm,
	}
}

func showBackButton(in ChromeInput) bool {
	if in.ForceHide {
		return false
	}

	confirm := in.Confirmation != nil
	if in.Context.Presented {
		switch in.Style {
		case StyleDefault:
			return true
		default:
			return in.Context.Empty || confirm
		}
	}

	switch in.Style {
	case StyleDefault:
		// A confirmation shows the control even at an empty root, where the
		// default style alone would leave no way to reach the prompt.
		return !in.Context.Empty || confirm
	default:
		return confirm
	}
}

func backIcon(ctx Context) Icon {
	if ctx.Presented && ctx.Empty {
		return IconClose
	}
	return IconChevronLeft
}
