package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/locale"
	"github.com/veandco/go-sdl2/sdl"
)

// ListPageOptions configures a page of selectable rows.
type ListPageOptions struct {
	ChromeOptions
	Items            []ListItem
	SelectedIndex    int
	EmptyText        string // Shown when Items is empty
	ToolbarImagePath string
	ConfirmButton    constants.VirtualButton // Finishes with PageActionConfirmed; Unassigned disables it
}

// DefaultListPageOptions returns options built from the active page defaults
// with an A "Select" footer hint.
func DefaultListPageOptions() ListPageOptions {
	chrome := defaultChromeOptions()
	chrome.FooterHelpItems = []FooterHelpItem{
		{ButtonName: constants.VirtualButtonA.GetName(), HelpText: locale.T(locale.Select)},
	}
	return ListPageOptions{ChromeOptions: chrome}
}

// ListPage shows rows until one is selected with A or the user goes back.
// The result carries the selected index; a resume state restores both the
// selection and the scroll position.
func ListPage(title string, options ListPageOptions) (*PageResult, error) {
	s, err := openPageSession(title, options.ChromeOptions)
	if err != nil {
		return nil, err
	}

	v := &listPage{
		options: options,
		rows:    newRowList(options.Items, options.SelectedIndex),
		logo:    s.loadLogo(options.ToolbarImagePath),
		follow:  true,
	}
	return s.run(v)
}

type listPage struct {
	options  ListPageOptions
	rows     rowList
	logo     internal.CachedTexture
	restored bool
	follow   bool
}

func (p *listPage) step(s *pageSession, button constants.VirtualButton) {
	if p.rows.step(s, button) {
		p.follow = true
	}
}

func (p *listPage) press(s *pageSession, button constants.VirtualButton) {
	switch {
	case button == constants.VirtualButtonA && p.rows.selected >= 0:
		s.result.Selected = p.rows.selected
		s.finish(PageActionSelected)
	case p.options.ConfirmButton != constants.VirtualButtonUnassigned && button == p.options.ConfirmButton:
		s.result.Selected = p.rows.selected
		s.finish(PageActionConfirmed)
	}
}

func (p *listPage) update(s *pageSession) {
	if s.result.Action == PageActionNone {
		s.result.Selected = p.rows.selected
	}
}

func (p *listPage) draw(s *pageSession) {
	top := s.renderToolbar(s.title, p.logo, 1, false) + s.margins.Top/2
	bottom := s.height() - s.footerHeight()

	if len(p.rows.items) == 0 {
		s.renderPlaceholder(p.options.EmptyText, top)
		return
	}

	viewport := bottom - top
	s.scroller.SetBounds(float64(p.rows.height()), float64(viewport))
	if !p.restored {
		p.restored = true
		if r, ok := s.restore(); ok {
			p.rows.selectIndex(r.Selected)
			p.follow = false
		}
	}
	if p.follow {
		p.follow = false
		rowH := rowHeight()
		s.scroller.ScrollTo(revealTarget(s.scroller.Position(), int32(p.rows.selected)*rowH, rowH, viewport))
	}

	width := s.width() - s.margins.Horizontal()
	y := top - int32(s.scroller.Position())
	s.renderer.SetClipRect(&sdl.Rect{X: 0, Y: top, W: s.width(), H: viewport})
	p.rows.draw(s, s.margins.Left, y, width, top, bottom)
	s.renderer.SetClipRect(nil)

	s.renderScrollbar(top, viewport)
}

func (p *listPage) destroy() {
	if p.logo.Texture != nil {
		p.logo.Texture.Destroy()
	}
}
