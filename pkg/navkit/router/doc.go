// Package router provides screen navigation with explicit data flow.
//
// Each screen is a function of its input that returns a result. Screens move
// through the *Navigator they are handed: Back pops, Send opens the screen
// registered for a value's type, Dismiss closes a modal presentation. When a
// screen returns without asking to move, a centralized transition function
// decides where to go. This keeps data flow traceable and avoids hidden
// global state.
//
// # Basic Usage
//
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenDetail
//	)
//
//	type DetailInput struct{ Item Item }
//
//	r := router.New()
//	router.Destination[DetailInput](r, ScreenDetail, router.Push)
//
//	r.Register(ScreenList, func(nav *router.Navigator, input any) (any, error) {
//	    res, err := listScreen(input.([]Item), nav.Resume())
//	    if err != nil {
//	        return nil, err
//	    }
//	    if res.Selected != nil {
//	        nav.Send(DetailInput{Item: *res.Selected})
//	    } else {
//	        nav.Back()
//	    }
//	    return res, nil
//	})
//
//	r.Register(ScreenDetail, func(nav *router.Navigator, input any) (any, error) {
//	    detailScreen(input.(DetailInput), nav.Context())
//	    nav.Back()
//	    return nil, nil
//	})
//
//	r.Run(ScreenList, items)
//
// # Presentations
//
// Destinations registered with Present start a modal segment. Inside it,
// IsPresented is true and IsEmpty reports whether anything was pushed within
// the presentation, which is exactly what back chrome needs to pick between a
// close and a back glyph. Back on the first screen of a presentation returns
// to the presenter.
//
// # Resume State
//
// Screen results implementing Resumable store resume state (like scroll
// position) on the stack when navigating forward. When navigating back, the
// screen reads it from Navigator.Resume to restore its position.
//
// Resume state should be nil for stateless screens (dialogs, confirmations).
package router
