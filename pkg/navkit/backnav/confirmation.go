// Package backnav decides how a page's back control looks and behaves: when
// it is shown, which glyph it uses, whether the quick-back gesture is locked,
// and whether tapping it pops right away or asks for confirmation first.
//
// Everything here is UI state with no I/O. Pages own one Gate each and call
// into it from their event loop.
package backnav

import "github.com/BrandonKowalski/navkit/pkg/navkit/locale"

// Confirmation is the content of the dialog shown before navigating back.
// A nil *Confirmation means back navigation pops immediately.
type Confirmation struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string // Optional, defaults to the localized "Cancel"
}

// Dismiss is the preset asking to confirm dismissing a page.
func Dismiss() *Confirmation {
	return &Confirmation{
		Title:        locale.T(locale.DismissTitle),
		ConfirmLabel: locale.T(locale.DismissConfirm),
		CancelLabel:  locale.T(locale.Cancel),
	}
}

// Discard is the preset asking to confirm discarding unsaved changes.
func Discard() *Confirmation {
	return &Confirmation{
		Title:        locale.T(locale.DiscardTitle),
		Message:      locale.T(locale.DiscardMessage),
		ConfirmLabel: locale.T(locale.DiscardConfirm),
		CancelLabel:  locale.T(locale.Cancel),
	}
}

// NewConfirmation builds a custom confirmation. cancelLabel may be empty.
func NewConfirmation(title, message, confirmLabel, cancelLabel string) *Confirmation {
	return &Confirmation{
		Title:        title,
		Message:      message,
		ConfirmLabel: confirmLabel,
		CancelLabel:  cancelLabel,
	}
}

// Prompt is a Confirmation with every default filled in, ready to render.
type Prompt struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

// Resolve fills the defaults: an empty title becomes "Are you sure?", an
// empty cancel label becomes "Cancel", an empty confirm label becomes "Back".
func (c Confirmation) Resolve(l *locale.Localizer) Prompt {
	if l == nil {
		l = locale.Default()
	}

	p := Prompt(c)
	if p.Title == "" {
		p.Title = l.Text(locale.AreYouSure)
	}
	if p.CancelLabel == "" {
		p.CancelLabel = l.Text(locale.Cancel)
	}
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = l.Text(locale.Back)
	}
	return p
}
