package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// PageOptions configures a plain scrolling page.
type PageOptions struct {
	ChromeOptions
	Content          []Block
	EmptyText        string                  // Shown when Content is empty, defaults to the localized "No items available"
	ToolbarImagePath string                  // Logo drawn at the right of the toolbar
	ConfirmButton    constants.VirtualButton // Finishes the page with PageActionConfirmed; Unassigned disables it
}

// DefaultPageOptions returns options built from the active page defaults.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		ChromeOptions: defaultChromeOptions(),
		ConfirmButton: constants.VirtualButtonStart,
	}
}

// Page shows title over scrolling content until the user goes back or
// confirms. A quit event returns ErrCancelled.
func Page(title string, options PageOptions) (*PageResult, error) {
	s, err := openPageSession(title, options.ChromeOptions)
	if err != nil {
		return nil, err
	}

	v := &plainPage{
		options: options,
		layout:  newContentLayout(options.Content),
		logo:    s.loadLogo(options.ToolbarImagePath),
	}
	return s.run(v)
}

type plainPage struct {
	options  PageOptions
	layout   *contentLayout
	logo     internal.CachedTexture
	restored bool
}

func (p *plainPage) step(s *pageSession, button constants.VirtualButton) {
	if button == constants.VirtualButtonUp {
		s.scroller.ScrollUp()
	} else {
		s.scroller.ScrollDown()
	}
}

func (p *plainPage) press(s *pageSession, button constants.VirtualButton) {
	if p.options.ConfirmButton != constants.VirtualButtonUnassigned && button == p.options.ConfirmButton {
		s.finish(PageActionConfirmed)
	}
}

func (p *plainPage) update(*pageSession) {}

func (p *plainPage) draw(s *pageSession) {
	top := s.renderToolbar(s.title, p.logo, 1, false) + s.margins.Top/2
	bottom := s.height() - s.footerHeight()

	if len(p.options.Content) == 0 {
		s.renderPlaceholder(p.options.EmptyText, top)
		return
	}

	width := s.width() - s.margins.Horizontal()
	viewport := bottom - top
	s.scroller.SetBounds(float64(p.layout.measure(s, width)), float64(viewport))
	if !p.restored {
		p.restored = true
		s.restore()
	}

	y := top - int32(s.scroller.Position())
	s.renderer.SetClipRect(&sdl.Rect{X: 0, Y: top, W: s.width(), H: viewport})
	p.layout.draw(s, s.margins.Left, y, width, top, bottom)
	s.renderer.SetClipRect(nil)

	s.renderScrollbar(top, viewport)
}

func (p *plainPage) destroy() {
	p.layout.destroy()
	if p.logo.Texture != nil {
		p.logo.Texture.Destroy()
	}
}
