package navkit

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/locale"
	"github.com/veandco/go-sdl2/sdl"
)

var errNotInitialized = errors.New("navkit is not initialized")

// pageView is the part of a page that differs between page kinds. The
// session owns the loop, the back control and scrolling.
type pageView interface {
	// step moves the selection or the scroll position one notch.
	step(s *pageSession, button constants.VirtualButton)
	// press handles any other button the user pressed.
	press(s *pageSession, button constants.VirtualButton)
	update(s *pageSession)
	draw(s *pageSession)
	destroy()
}

type pageSession struct {
	title  string
	opts   ChromeOptions
	logger *slog.Logger

	window   *internal.Window
	renderer *sdl.Renderer
	cache    *internal.TextureCache
	margins  internal.Padding

	back     backControl
	gate     *backnav.Gate
	gesture  *backnav.GestureLock
	dialog   *confirmDialog
	scroller *cover.Scroller
	tracker  cover.Tracker
	repeat   internal.RepeatInput

	lastInputTime time.Time
	inputDelay    time.Duration

	result    PageResult
	cancelled bool
}

// newSessionState builds the input side of a session. It does not touch SDL.
func newSessionState(title string, opts ChromeOptions) *pageSession {
	s := &pageSession{
		title:      title,
		opts:       opts,
		logger:     internal.GetInternalLogger(),
		back:       newBackControl(opts),
		gesture:    backnav.NewGestureLock(),
		scroller:   cover.NewScroller(cover.DefaultScrollStep),
		tracker:    cover.Tracker{SafeAreaTop: opts.SafeAreaTop, OnScroll: opts.OnScroll},
		repeat:     internal.NewRepeatInput(),
		inputDelay: constants.DefaultInputDelay,
		result:     PageResult{Selected: -1},
	}
	s.gate = backnav.NewGate(backnav.NavigatorFunc(s.popped), opts.Confirmation)
	return s
}

func openPageSession(title string, opts ChromeOptions) (*pageSession, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("page", errNotInitialized)
	}

	s := newSessionState(title, opts)
	s.window = window
	s.renderer = window.Renderer
	s.cache = internal.NewTextureCache()
	s.margins = internal.UniformPadding(20)

	s.logger.Debug("Opening page",
		"title", title,
		"presented", s.back.ctx.Presented,
		"empty", s.back.ctx.Empty,
		"style", opts.Style.String(),
		"back_button", s.back.decision.ShowBackButton,
		"icon", s.back.decision.Icon.String(),
		"confirmation", opts.Confirmation != nil)
	return s, nil
}

// restore applies a resume state once the view knows its content height.
func (s *pageSession) restore() (PageResume, bool) {
	r, ok := resumeOf(s.opts.Resume)
	if !ok {
		return PageResume{}, false
	}
	s.scroller.Restore(r.Scroll)
	s.tracker.Track(s.scroller.Offset())
	return r, true
}

func (s *pageSession) run(view pageView) (*PageResult, error) {
	defer s.close(view)

	for {
		s.render(view)
		s.handleEvents(view)
		if s.done() {
			break
		}
		s.update(view)
	}

	if s.cancelled {
		return nil, ErrCancelled
	}
	s.result.Offset = s.scroller.Offset()
	s.logger.Debug("Closing page", "title", s.title, "action", s.result.Action.String(), "selected", s.result.Selected)
	return &s.result, nil
}

func (s *pageSession) close(view pageView) {
	view.destroy()
	if s.cache != nil {
		s.cache.Destroy()
	}
}

func (s *pageSession) done() bool {
	return s.cancelled || s.result.Action != PageActionNone
}

func (s *pageSession) finish(action PageAction) {
	if s.result.Action == PageActionNone {
		s.result.Action = action
	}
}

// popped runs when the gate lets the page go.
func (s *pageSession) popped() {
	if s.opts.Navigation != nil {
		s.opts.Navigation.Back()
	}
	s.finish(PageActionBack)
}

func (s *pageSession) handleEvents(view pageView) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			s.cancelled = true
			return
		}

		ev, ok := internal.TranslateEvent(event)
		if !ok {
			continue
		}
		if !ev.Pressed {
			s.repeat.Release(ev.Button)
			continue
		}
		if ev.Repeat || !s.isInputAllowed() {
			continue
		}
		s.lastInputTime = time.Now()

		s.handlePress(view, ev.Button)
		if s.done() {
			return
		}
	}
}

func (s *pageSession) isInputAllowed() bool {
	return time.Since(s.lastInputTime) >= s.inputDelay
}

func (s *pageSession) handlePress(view pageView, button constants.VirtualButton) {
	if s.gate.PromptVisible() {
		s.handleDialogPress(button)
		return
	}

	switch {
	case button == constants.VirtualButtonB:
		if s.back.backEnabled() {
			s.tapBack()
		}
	case button == s.back.quickKey && s.back.quickBackEnabled(s.gesture.Locked()):
		s.logger.Debug("Quick back", "title", s.title, "button", button.GetName())
		s.popped()
	case button == constants.VirtualButtonUp || button == constants.VirtualButtonDown:
		s.repeat.Press(button)
		view.step(s, button)
	default:
		view.press(s, button)
	}
}

func (s *pageSession) tapBack() {
	outcome := s.gate.TapBack()
	s.logger.Debug("Back tapped", "title", s.title, "outcome", outcome.String(), "state", s.gate.State().String())

	if outcome == backnav.OutcomePrompt {
		s.repeat.Reset()
		s.dialog = newConfirmDialog(s.gate.Confirmation().Resolve(s.opts.localizer()))
	}
}

func (s *pageSession) handleDialogPress(button constants.VirtualButton) {
	if s.dialog == nil {
		s.dialog = newConfirmDialog(s.gate.Confirmation().Resolve(s.opts.localizer()))
	}

	var outcome backnav.Outcome
	switch s.dialog.handle(button) {
	case dialogConfirm:
		outcome = s.gate.Confirm()
	case dialogCancel:
		outcome = s.gate.Cancel()
	default:
		return
	}

	s.logger.Debug("Confirmation answered", "title", s.title, "outcome", outcome.String(), "state", s.gate.State().String())
	s.dialog = nil
}

func (s *pageSession) update(view pageView) {
	if !s.gate.PromptVisible() {
		if button, ok := s.repeat.Update(); ok {
			view.step(s, button)
		}
	}
	s.scroller.Update()
	s.tracker.Track(s.scroller.Offset())
	view.update(s)
}

func (s *pageSession) render(view pageView) {
	theme := internal.GetTheme()
	bg := theme.BackgroundColor
	s.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	s.renderer.Clear()
	s.window.RenderBackground()

	view.draw(s)
	s.renderFooter()

	if s.dialog != nil {
		s.dialog.render(s.renderer, s.cache, s.width(), s.height())
	}

	s.gesture.Request(s.back.decision.PopGestureDisabled)
	s.window.Present()
	if s.gesture.Settle() {
		s.logger.Debug("Quick back lock changed", "title", s.title, "locked", s.gesture.Locked())
	}
}

func (s *pageSession) width() int32 {
	return s.window.GetWidth()
}

func (s *pageSession) height() int32 {
	return s.window.GetHeight()
}

// footerItems returns the caller's hints plus the native back hint.
func (s *pageSession) footerItems() []FooterHelpItem {
	items := s.opts.FooterHelpItems
	if s.back.nativeBackVisible() {
		items = append([]FooterHelpItem{{
			ButtonName: constants.VirtualButtonB.GetName(),
			HelpText:   s.opts.localizer().Text(locale.Back),
		}}, items...)
	}
	return items
}

func (s *pageSession) footerHeight() int32 {
	if len(s.footerItems()) == 0 {
		return s.margins.Bottom
	}
	return footerHeight(internal.Fonts.SmallFont, s.margins.Bottom) + s.margins.Bottom/2
}

func (s *pageSession) renderFooter() {
	renderFooter(s.renderer, s.cache, internal.Fonts.SmallFont, s.footerItems(), s.margins, s.width(), s.height())
}

// renderScrollbar draws the scroll indicator along the right edge of the
// band [top, top+viewport].
func (s *pageSession) renderScrollbar(top, viewport int32) {
	maxScroll := s.scroller.MaxScroll()
	if maxScroll <= 0 || viewport <= 0 {
		return
	}

	content := float64(viewport) + maxScroll
	barH := internal.Max32(int32(float64(viewport)*float64(viewport)/content), 24)
	progress := s.scroller.Position() / maxScroll
	progress = max(0, min(1, progress))
	y := top + int32(progress*float64(viewport-barH))

	c := internal.GetTheme().HintColor
	c.A = 160
	internal.DrawSmoothScrollbar(s.renderer, s.width()-10, y, 4, barH, c)
}

// renderPlaceholder draws centered hint text in the band below top.
func (s *pageSession) renderPlaceholder(text string, top int32) {
	if text == "" {
		text = s.opts.localizer().Text(locale.NoItems)
	}
	font := internal.Fonts.MediumFont
	maxW := s.width() - s.margins.Horizontal()
	h := internal.MeasureMultilineText(text, font, maxW)
	band := s.height() - top - s.footerHeight()
	y := top + (band-h)/2
	internal.RenderMultilineText(s.renderer, s.cache, text, font, maxW, s.width()/2, y, internal.GetTheme().HintColor, constants.TextAlignCenter)
}
