package navkit

import (
	"testing"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
)

type fakeNavigation struct {
	ctx   backnav.Context
	backs int
}

func (f *fakeNavigation) Back() { f.backs++ }
func (f *fakeNavigation) Context() backnav.Context { return f.ctx }

type fakeView struct {
	steps   []constants.VirtualButton
	presses []constants.VirtualButton
}

func (v *fakeView) step(_ *pageSession, b constants.VirtualButton) { v.steps = append(v.steps, b) }
func (v *fakeView) press(_ *pageSession, b constants.VirtualButton) { v.presses = append(v.presses, b) }
func (v *fakeView) update(*pageSession) {}
func (v *fakeView) draw(*pageSession) {}
func (v *fakeView) destroy() {}

// settleFrame does what a rendered frame does to the gesture lock.
func settleFrame(s *pageSession) {
	s.gesture.Request(s.back.decision.PopGestureDisabled)
	s.gesture.Settle()
}

func newTestSession(ctx backnav.Context, style backnav.PageStyle, confirmation *backnav.Confirmation) (*pageSession, *fakeNavigation) {
	nav := &fakeNavigation{ctx: ctx}
	opts := ChromeOptions{
		Navigation:      nav,
		Style:           style,
		Confirmation:    confirmation,
		QuickBackButton: constants.VirtualButtonL1,
	}
	s := newSessionState("Test", opts)
	settleFrame(s)
	return s, nav
}

func TestBackControl(t *testing.T) {
	tests := []struct {
		name         string
		ctx          backnav.Context
		style        backnav.PageStyle
		confirmation *backnav.Confirmation
		wantNative   bool
		wantEnabled  bool
		wantQuick    bool
	}{
		{"root native", backnav.Context{Empty: true}, backnav.StyleNative, nil, false, false, false},
		{"pushed native", backnav.Context{}, backnav.StyleNative, nil, true, true, true},
		{"pushed default", backnav.Context{}, backnav.StyleDefault, nil, false, true, true},
		{"presented root", backnav.Context{Presented: true, Empty: true}, backnav.StyleNative, nil, false, true, true},
		{"root with confirmation", backnav.Context{Empty: true}, backnav.StyleNative, backnav.Discard(), false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackControl(ChromeOptions{
				Navigation:      &fakeNavigation{ctx: tt.ctx},
				Style:           tt.style,
				Confirmation:    tt.confirmation,
				QuickBackButton: constants.VirtualButtonL1,
			})
			if got := b.nativeBackVisible(); got != tt.wantNative {
				t.Errorf("nativeBackVisible() = %v, want %v", got, tt.wantNative)
			}
			if got := b.backEnabled(); got != tt.wantEnabled {
				t.Errorf("backEnabled() = %v, want %v", got, tt.wantEnabled)
			}
			if got := b.quickBackEnabled(false); got != tt.wantQuick {
				t.Errorf("quickBackEnabled(false) = %v, want %v", got, tt.wantQuick)
			}
			if b.quickBackEnabled(true) {
				t.Error("quick back must be off while locked")
			}
		})
	}
}

func TestQuickBackUnassigned(t *testing.T) {
	b := newBackControl(ChromeOptions{QuickBackButton: constants.VirtualButtonUnassigned})
	if b.quickBackEnabled(false) {
		t.Fatal("unassigned quick-back button should disable the gesture")
	}
}

func TestNilNavigationActsPushed(t *testing.T) {
	s := newSessionState("Test", ChromeOptions{Style: backnav.StyleNative})
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonB)
	if s.result.Action != PageActionBack {
		t.Fatalf("action = %v, want back", s.result.Action)
	}
}

func TestBackPopsWithoutConfirmation(t *testing.T) {
	s, nav := newTestSession(backnav.Context{}, backnav.StyleNative, nil)
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonB)

	if nav.backs != 1 {
		t.Fatalf("navigation Back called %d times, want 1", nav.backs)
	}
	if !s.done() || s.result.Action != PageActionBack {
		t.Fatalf("result = %+v, want back", s.result)
	}
}

func TestBackAtRootIsIgnored(t *testing.T) {
	s, nav := newTestSession(backnav.Context{Empty: true}, backnav.StyleNative, nil)
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonB)
	s.handlePress(v, constants.VirtualButtonL1)

	if nav.backs != 0 || s.done() {
		t.Fatalf("root page should stay, backs = %d, result = %+v", nav.backs, s.result)
	}
}

func TestConfirmationFlow(t *testing.T) {
	s, nav := newTestSession(backnav.Context{}, backnav.StyleNative, backnav.NewConfirmation("Leave?", "", "Leave", ""))
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonB)
	if !s.gate.PromptVisible() || s.dialog == nil {
		t.Fatal("B should show the confirmation")
	}
	if s.dialog.prompt.Title != "Leave?" || s.dialog.prompt.CancelLabel == "" {
		t.Fatalf("prompt = %+v", s.dialog.prompt)
	}

	// Buttons go to the dialog while it is open.
	s.handlePress(v, constants.VirtualButtonDown)
	if len(v.steps) != 0 {
		t.Fatal("view received input behind the dialog")
	}

	// A on the default option cancels.
	s.handlePress(v, constants.VirtualButtonA)
	if s.gate.PromptVisible() || s.dialog != nil || nav.backs != 0 {
		t.Fatalf("cancel should close the dialog without popping, backs = %d", nav.backs)
	}

	s.handlePress(v, constants.VirtualButtonB)
	s.handlePress(v, constants.VirtualButtonRight)
	s.handlePress(v, constants.VirtualButtonA)
	if nav.backs != 1 || s.result.Action != PageActionBack {
		t.Fatalf("confirm should pop once, backs = %d, result = %+v", nav.backs, s.result)
	}
}

func TestConfirmationLocksQuickBack(t *testing.T) {
	s, nav := newTestSession(backnav.Context{}, backnav.StyleNative, backnav.Dismiss())
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonL1)
	if nav.backs != 0 {
		t.Fatal("quick back should be locked while a confirmation is attached")
	}
	if len(v.presses) != 1 || v.presses[0] != constants.VirtualButtonL1 {
		t.Fatalf("locked quick-back press should reach the view, got %v", v.presses)
	}
}

func TestQuickBackPops(t *testing.T) {
	s, nav := newTestSession(backnav.Context{Presented: true, Empty: true}, backnav.StyleNative, nil)
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonL1)
	if nav.backs != 1 || s.result.Action != PageActionBack {
		t.Fatalf("quick back: backs = %d, result = %+v", nav.backs, s.result)
	}
}

func TestDirectionalGoesToViewStep(t *testing.T) {
	s, _ := newTestSession(backnav.Context{}, backnav.StyleNative, nil)
	v := &fakeView{}

	s.handlePress(v, constants.VirtualButtonUp)
	s.handlePress(v, constants.VirtualButtonA)

	if len(v.steps) != 1 || v.steps[0] != constants.VirtualButtonUp {
		t.Fatalf("steps = %v", v.steps)
	}
	if len(v.presses) != 1 || v.presses[0] != constants.VirtualButtonA {
		t.Fatalf("presses = %v", v.presses)
	}
	if s.repeat.Held() != constants.VirtualButtonUp {
		t.Fatal("Up should be held for repeat")
	}
}

func TestFooterNativeBackHint(t *testing.T) {
	s, _ := newTestSession(backnav.Context{}, backnav.StyleNative, nil)
	s.opts.FooterHelpItems = []FooterHelpItem{{ButtonName: "A", HelpText: "Select"}}

	items := s.footerItems()
	if len(items) != 2 || items[0].ButtonName != "B" {
		t.Fatalf("footer items = %+v, want the B hint first", items)
	}

	hidden, _ := newTestSession(backnav.Context{}, backnav.StyleDefault, nil)
	if len(hidden.footerItems()) != 0 {
		t.Fatal("default style hides the native back hint")
	}
}

func TestRestoreAppliesResume(t *testing.T) {
	s := newSessionState("Test", ChromeOptions{Resume: PageResume{Scroll: 40, Selected: 3}})
	s.scroller.SetBounds(500, 100)

	r, ok := s.restore()
	if !ok || r.Selected != 3 {
		t.Fatalf("restore() = %+v, %v", r, ok)
	}
	if s.scroller.Position() != 40 {
		t.Fatalf("position = %v, want 40", s.scroller.Position())
	}
}

func TestResumeOf(t *testing.T) {
	if _, ok := resumeOf(nil); ok {
		t.Error("nil resume should not apply")
	}
	if _, ok := resumeOf((*PageResume)(nil)); ok {
		t.Error("nil pointer resume should not apply")
	}
	if r, ok := resumeOf(&PageResume{Scroll: 5}); !ok || r.Scroll != 5 {
		t.Errorf("pointer resume = %+v, %v", r, ok)
	}
	if _, ok := resumeOf("scroll"); ok {
		t.Error("foreign resume types should be ignored")
	}
}

func TestResultResumeState(t *testing.T) {
	r := PageResult{Action: PageActionSelected, Selected: 2, Offset: cover.Point{Y: -120}}
	got, ok := r.ResumeState().(PageResume)
	if !ok || got.Scroll != 120 || got.Selected != 2 {
		t.Fatalf("ResumeState() = %#v", r.ResumeState())
	}
	if PageActionConfirmed.String() != "confirmed" || PageActionNone.String() != "none" {
		t.Fatal("unexpected action names")
	}
}

func TestConfirmDialogHandle(t *testing.T) {
	d := newConfirmDialog(backnav.Prompt{})
	if got := d.handle(constants.VirtualButtonA); got != dialogCancel {
		t.Fatalf("A on the default option = %v, want cancel", got)
	}
	d.handle(constants.VirtualButtonRight)
	if got := d.handle(constants.VirtualButtonStart); got != dialogConfirm {
		t.Fatalf("Start on confirm = %v, want confirm", got)
	}
	if got := d.handle(constants.VirtualButtonB); got != dialogCancel {
		t.Fatalf("B = %v, want cancel", got)
	}
	if got := d.handle(constants.VirtualButtonUp); got != dialogNone {
		t.Fatalf("Up = %v, want none", got)
	}
}

func TestRowListMove(t *testing.T) {
	r := newRowList([]ListItem{{Title: "a"}, {Title: "b"}, {Title: "c"}}, 7)
	if r.selected != 2 {
		t.Fatalf("selection should clamp to the last row, got %d", r.selected)
	}
	if r.move(1) {
		t.Fatal("moving past the end should report no change")
	}
	if !r.move(-2) || r.selected != 0 {
		t.Fatalf("selected = %d, want 0", r.selected)
	}

	empty := newRowList(nil, 0)
	if empty.selected != -1 || empty.move(1) {
		t.Fatal("empty list should have no selection")
	}
}

func TestRevealTarget(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		rowTop   int32
		want     float64
	}{
		{"visible", 0, 40, 0},
		{"above", 100, 40, 40},
		{"below", 0, 190, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revealTarget(tt.position, tt.rowTop, 20, 100); got != tt.want {
				t.Errorf("revealTarget = %v, want %v", got, tt.want)
			}
		})
	}
}
