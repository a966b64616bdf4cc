package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
	"github.com/BrandonKowalski/navkit/pkg/navkit/locale"
)

// Navigation is the part of the router a page talks to. *router.Navigator
// satisfies it.
type Navigation interface {
	Back()
	Context() backnav.Context
}

// ChromeOptions configures the back control and scrolling shared by all pages.
//
// Without a Navigation the page behaves like a pushed screen with something
// below it: the back control returns PageActionBack and nothing else happens.
type ChromeOptions struct {
	Navigation      Navigation
	Style           backnav.PageStyle
	Confirmation    *backnav.Confirmation   // Ask before navigating back; nil pops right away
	HideBackButton  bool                    // Never show the back control
	QuickBackButton constants.VirtualButton // Pops without the back control; Unassigned disables it
	SafeAreaTop     float64                 // Extra header space reported to OnScroll
	OnScroll        cover.ScrollAction
	FooterHelpItems []FooterHelpItem
	Localizer       *locale.Localizer // Defaults to the package localizer
	Resume          any               // PageResume handed back by Navigator.Resume
}

func defaultChromeOptions() ChromeOptions {
	d := PageDefaults()
	return ChromeOptions{
		Style:           d.PageStyle(),
		QuickBackButton: d.QuickBack(),
		SafeAreaTop:     d.SafeAreaTop,
	}
}

func (o ChromeOptions) localizer() *locale.Localizer {
	if o.Localizer != nil {
		return o.Localizer
	}
	return locale.Default()
}

func (o ChromeOptions) context() backnav.Context {
	if o.Navigation == nil {
		return backnav.Context{}
	}
	return o.Navigation.Context()
}

// backControl is the resolved back chrome for one page visit.
type backControl struct {
	ctx      backnav.Context
	decision backnav.Decision
	quickKey constants.VirtualButton
}

func newBackControl(o ChromeOptions) backControl {
	ctx := o.context()
	return backControl{
		ctx: ctx,
		decision: backnav.Chrome(backnav.ChromeInput{
			Context:      ctx,
			Style:        o.Style,
			Confirmation: o.Confirmation,
			ForceHide:    o.HideBackButton,
		}),
		quickKey: o.QuickBackButton,
	}
}

// nativeBackVisible reports whether the footer shows the platform back hint.
// It only exists when there is a screen below in the same presentation.
func (b backControl) nativeBackVisible() bool {
	return !b.decision.NativeBackHidden && !b.ctx.Empty
}

// backEnabled reports whether the B button acts as the back control.
func (b backControl) backEnabled() bool {
	return b.decision.ShowBackButton || b.nativeBackVisible()
}

// quickBackEnabled reports whether the quick-back button may pop right now.
func (b backControl) quickBackEnabled(locked bool) bool {
	if b.quickKey == constants.VirtualButtonUnassigned || locked {
		return false
	}
	return b.ctx.Presented || !b.ctx.Empty
}

func resumeOf(v any) (PageResume, bool) {
	switch r := v.(type) {
	case PageResume:
		return r, true
	case *PageResume:
		if r != nil {
			return *r, true
		}
	}
	return PageResume{}, false
}
