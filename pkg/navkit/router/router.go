package router

import (
	"fmt"
	"reflect"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenMain Screen = iota
//	    ScreenSettings
//	    ScreenDetail
//	)
type Screen int

// ScreenFunc is a function that runs a screen.
// It takes the screen's navigator and input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(nav *Navigator, input any) (result any, err error)

// TransitionFunc is called after a screen completes without asking its
// navigator to move. It receives the screen that just completed, its result,
// and the navigation stack, and returns the next screen and its input.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Presentation is how a destination screen is opened.
type Presentation int

const (
	Push    Presentation = iota // Pushed onto the current stack
	Present                     // Presented modally, starting a new segment
)

// Resumable is implemented by screen results that carry resume state
// (scroll position, selection) to restore when the screen is returned to.
type Resumable interface {
	ResumeState() any
}

type destination struct {
	screen       Screen
	presentation Presentation
}

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions. Screens navigate through
// their Navigator, and an optional transition function handles any routing
// the navigator did not.
type Router struct {
	screens      map[Screen]ScreenFunc
	destinations map[reflect.Type]destination
	transition   TransitionFunc
	stack        *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens:      make(map[Screen]ScreenFunc),
		destinations: make(map[reflect.Type]destination),
		stack:        NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Destination routes values of type T sent through Navigator.Send to screen.
// The sent value becomes the screen's input.
func Destination[T any](r *Router, screen Screen, presentation Presentation) *Router {
	r.destinations[reflect.TypeFor[T]()] = destination{screen: screen, presentation: presentation}
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen that completes without a
// navigator request.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until navigation leaves the root screen, the
// transition function returns ScreenExit, or an error occurs.
func (r *Router) Run(start Screen, input any) error {
	current := start
	currentInput := input
	var resume any

	for {
		// Get the screen function
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		// Run the screen
		nav := &Navigator{stack: r.stack, resume: resume}
		result, err := fn(nav, currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %d error: %w", current, err)
		}

		switch nav.request {
		case requestSend:
			dest, ok := r.destinations[reflect.TypeOf(nav.value)]
			if !ok {
				return fmt.Errorf("router: screen %d sent %T with no destination registered", current, nav.value)
			}
			if dest.presentation == Present {
				r.stack.PushModal(current, currentInput, resumeOf(result))
			} else {
				r.stack.Push(current, currentInput, resumeOf(result))
			}
			current, currentInput, resume = dest.screen, nav.value, nil
			continue

		case requestBack, requestDismiss:
			var entry *StackEntry
			if nav.request == requestDismiss {
				entry = r.stack.PopPresentation()
			} else {
				entry = r.stack.Pop()
			}
			if entry == nil {
				return nil
			}
			current, currentInput, resume = entry.Screen, entry.Input, entry.Resume
			continue
		}

		if r.transition == nil {
			return nil
		}

		// Determine next screen
		next, nextInput := r.transition(current, result, r.stack)

		// Check for exit
		if next == ScreenExit {
			return nil
		}

		// Move to next screen
		current = next
		currentInput = nextInput
		resume = nil
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}

func resumeOf(result any) any {
	if rs, ok := result.(Resumable); ok {
		return rs.ResumeState()
	}
	return nil
}

type request int

const (
	requestNone request = iota
	requestBack
	requestDismiss
	requestSend
)

// Navigator is handed to each screen run. It answers the router state
// questions navigation chrome asks and records where the screen wants to go
// next. The last request made before the screen returns wins.
type Navigator struct {
	stack   *Stack
	resume  any
	request request
	value   any
}

// Back asks to pop the current screen once it returns.
func (n *Navigator) Back() {
	n.request, n.value = requestBack, nil
}

// Dismiss asks to close the whole modal presentation the screen is in.
func (n *Navigator) Dismiss() {
	n.request, n.value = requestDismiss, nil
}

// Send asks to open the destination registered for value's type, passing
// value as its input.
func (n *Navigator) Send(value any) {
	n.request, n.value = requestSend, value
}

// IsPresented reports whether the screen is inside a modal presentation.
func (n *Navigator) IsPresented() bool {
	return n.stack.Presented()
}

// IsEmpty reports whether nothing sits below the screen in its presentation.
func (n *Navigator) IsEmpty() bool {
	return n.stack.SegmentEmpty()
}

// Context returns the back navigation context for the current screen.
func (n *Navigator) Context() backnav.Context {
	return backnav.Context{
		Presented: n.IsPresented(),
		Empty:     n.IsEmpty(),
	}
}

// Resume returns the resume state stored when the screen was left, or nil
// on a fresh visit.
func (n *Navigator) Resume() any {
	return n.resume
}

// Pending reports whether the screen has asked to navigate.
func (n *Navigator) Pending() bool {
	return n.request != requestNone
}
