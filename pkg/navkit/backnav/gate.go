package backnav

// Navigator pops the current screen.
type Navigator interface {
	Back()
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) Back() { f() }

// State is the confirmation prompt state of a Gate.
type State int

const (
	StateIdle           State = iota // No prompt shown
	StateConfirmPending              // Prompt shown, waiting for confirm or cancel
)

func (s State) String() string {
	if s == StateConfirmPending {
		return "confirm_pending"
	}
	return "idle"
}

// Outcome is what the page should do after a gate transition.
type Outcome int

const (
	OutcomeNone   Outcome = iota // Nothing changed
	OutcomePrompt                // Show the confirmation prompt
	OutcomePopped                // Navigator.Back was called, leave the page
	OutcomeClosed                // Prompt was cancelled, stay on the page
)

func (o Outcome) String() string {
	switch o {
	case OutcomePrompt:
		return "prompt"
	case OutcomePopped:
		return "popped"
	case OutcomeClosed:
		return "closed"
	default:
		return "none"
	}
}

// Gate owns the back confirmation state of one page.
type Gate struct {
	nav          Navigator
	confirmation *Confirmation
	state        State
}

// NewGate creates a gate. A nil confirmation makes every back tap pop right
// away. The confirmation is copied, later edits to it have no effect.
func NewGate(nav Navigator, confirmation *Confirmation) *Gate {
	g := &Gate{nav: nav}
	if confirmation != nil {
		c := *confirmation
		g.confirmation = &c
	}
	return g
}

// TapBack handles a tap on the back control.
func (g *Gate) TapBack() Outcome {
	if g.confirmation == nil {
		g.pop()
		return OutcomePopped
	}
	if g.state == StateConfirmPending {
		return OutcomeNone
	}
	g.state = StateConfirmPending
	return OutcomePrompt
}

// Confirm accepts the prompt and pops. It does nothing while idle.
func (g *Gate) Confirm() Outcome {
	if g.state != StateConfirmPending {
		return OutcomeNone
	}
	g.state = StateIdle
	g.pop()
	return OutcomePopped
}

// Cancel dismisses the prompt without popping. It does nothing while idle.
func (g *Gate) Cancel() Outcome {
	if g.state != StateConfirmPending {
		return OutcomeNone
	}
	g.state = StateIdle
	return OutcomeClosed
}

func (g *Gate) pop() {
	if g.nav != nil {
		g.nav.Back()
	}
}

// State returns the current prompt state.
func (g *Gate) State() State {
	return g.state
}

// PromptVisible reports whether the confirmation prompt is showing.
func (g *Gate) PromptVisible() bool {
	return g.state == StateConfirmPending
}

// Confirmation returns the attached confirmation or nil.
func (g *Gate) Confirmation() *Confirmation {
	return g.confirmation
}

// Prompt returns the resolved dialog content while the prompt is visible.
func (g *Gate) Prompt() (Prompt, bool) {
	if !g.PromptVisible() {
		return Prompt{}, false
	}
	return g.confirmation.Resolve(nil), true
}
