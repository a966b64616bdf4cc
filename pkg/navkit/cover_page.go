package navkit

import (
	"context"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// CoverPageOptions configures a page with a cover region above its content.
// CoverHeight and CornerRadius are in 480 line reference units and scale
// with the window.
type CoverPageOptions struct {
	ChromeOptions
	Content       []Block
	Items         []ListItem // Selectable rows drawn after Content
	SelectedIndex int

	CoverImagePath string // Local cover image
	CoverImageURL  string // Downloaded in the background when CoverImagePath is empty
	GradientTop    sdl.Color
	GradientBottom sdl.Color // Zero gradient colors default to the accent and background colors
	CoverStyle     cover.Style
	CoverHeight    float64
	CornerRadius   float64

	EmptyText        string
	ToolbarImagePath string
	ConfirmButton    constants.VirtualButton
}

// DefaultCoverPageOptions returns options built from the active page defaults.
func DefaultCoverPageOptions() CoverPageOptions {
	d := PageDefaults()
	return CoverPageOptions{
		ChromeOptions: defaultChromeOptions(),
		CoverStyle:    d.Cover(),
		CoverHeight:   d.CoverHeight,
		CornerRadius:  d.CornerRadius,
	}
}

// CoverPage shows a cover that reacts to scrolling in its configured style,
// with rows and content scrolling over it. A selects a row when Items is set.
func CoverPage(title string, options CoverPageOptions) (*PageResult, error) {
	s, err := openPageSession(title, options.ChromeOptions)
	if err != nil {
		return nil, err
	}

	if options.CoverHeight <= 0 {
		options.CoverHeight = cover.DefaultHeight
	}

	v := &coverPage{
		options: options,
		layout:  newContentLayout(options.Content),
		rows:    newRowList(options.Items, options.SelectedIndex),
		logo:    s.loadLogo(options.ToolbarImagePath),
	}
	v.loadCover(s)
	return s.run(v)
}

type coverPage struct {
	options CoverPageOptions
	layout  *contentLayout
	rows    rowList
	logo    internal.CachedTexture

	image  internal.CachedTexture
	remote *internal.RemoteImage
	cancel context.CancelFunc

	restored bool
	follow   bool
}

func (p *coverPage) loadCover(s *pageSession) {
	switch {
	case p.options.CoverImagePath != "":
		tex, err := internal.LoadImageFile(s.renderer, p.options.CoverImagePath)
		if err != nil {
			s.logger.Error("Failed to load cover image", "path", p.options.CoverImagePath, "error", err)
			return
		}
		p.image = tex
	case p.options.CoverImageURL != "":
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		p.remote = internal.StartRemoteImage(ctx, p.options.CoverImageURL)
		s.logger.Debug("Fetching cover image", "url", p.options.CoverImageURL)
	}
}

func (p *coverPage) empty() bool {
	return len(p.options.Content) == 0 && len(p.rows.items) == 0
}

func (p *coverPage) step(s *pageSession, button constants.VirtualButton) {
	if len(p.rows.items) == 0 {
		if button == constants.VirtualButtonUp {
			s.scroller.ScrollUp()
		} else {
			s.scroller.ScrollDown()
		}
		return
	}
	if p.rows.step(s, button) {
		p.follow = true
	}
}

func (p *coverPage) press(s *pageSession, button constants.VirtualButton) {
	switch {
	case button == constants.VirtualButtonA && p.rows.selected >= 0:
		s.result.Selected = p.rows.selected
		s.finish(PageActionSelected)
	case p.options.ConfirmButton != constants.VirtualButtonUnassigned && button == p.options.ConfirmButton:
		s.result.Selected = p.rows.selected
		s.finish(PageActionConfirmed)
	}
}

func (p *coverPage) update(s *pageSession) {
	if s.result.Action == PageActionNone {
		s.result.Selected = p.rows.selected
	}

	if p.remote == nil || !p.remote.Ready() {
		return
	}
	data, err := p.remote.Result()
	p.remote = nil
	if err != nil {
		s.logger.Error("Failed to fetch cover image", "url", p.options.CoverImageURL, "error", err)
		return
	}
	tex, err := internal.DecodeImageTexture(s.renderer, data)
	if err != nil {
		s.logger.Error("Failed to decode cover image", "url", p.options.CoverImageURL, "error", err)
		return
	}
	p.image = tex
}

func (p *coverPage) scale(s *pageSession) float64 {
	return float64(s.height()) / 480
}

func (p *coverPage) draw(s *pageSession) {
	if p.empty() {
		top := s.renderToolbar(s.title, p.logo, 1, true) + s.margins.Top/2
		s.renderPlaceholder(p.options.EmptyText, top)
		return
	}

	theme := internal.GetTheme()
	width := s.width()
	bottom := s.height() - s.footerHeight()
	barH := s.toolbarHeight()

	scale := p.scale(s)
	base := p.options.CoverHeight * scale
	radius := p.options.CornerRadius * scale
	contentTop := int32(cover.ContentTopPadding(base, radius))

	innerTop := s.margins.Top
	if radius > 0 {
		innerTop = internal.Max32(int32(radius), s.margins.Top)
	}
	contentW := width - s.margins.Horizontal()
	blocksH := p.layout.measure(s, contentW)
	rowsTop := blocksH
	if blocksH > 0 && len(p.rows.items) > 0 {
		rowsTop += blockSpacing
	}
	totalH := contentTop + innerTop + rowsTop + p.rows.height() + s.margins.Bottom

	s.scroller.SetBounds(float64(totalH), float64(bottom))
	if !p.restored {
		p.restored = true
		if r, ok := s.restore(); ok {
			p.rows.selectIndex(r.Selected)
		} else {
			p.follow = len(p.rows.items) > 0 && p.rows.selected > 0
		}
	}
	if p.follow {
		p.follow = false
		rowH := rowHeight()
		rowTop := contentTop + innerTop + rowsTop + int32(p.rows.selected)*rowH - barH
		s.scroller.ScrollTo(revealTarget(s.scroller.Position(), rowTop, rowH, bottom-barH))
	}

	offset := s.scroller.Offset()
	frame := cover.Transform(offset.Y, base, p.options.CoverStyle)
	p.drawCover(s, sdl.Rect{X: 0, Y: int32(frame.Offset), W: width, H: int32(frame.Height)})

	position := int32(s.scroller.Position())
	y := contentTop - position
	if y < s.height() {
		corners := internal.CornersTop
		if radius == 0 {
			corners = 0
		}
		internal.FillRoundedRect(s.renderer, sdl.Rect{X: 0, Y: y, W: width, H: s.height() - y}, int32(radius), corners, theme.BackgroundColor)
	}

	y += innerTop
	s.renderer.SetClipRect(&sdl.Rect{X: 0, Y: 0, W: width, H: bottom})
	p.layout.draw(s, s.margins.Left, y, contentW, barH, bottom)
	p.rows.draw(s, s.margins.Left, y+rowsTop, contentW, barH, bottom)
	s.renderer.SetClipRect(nil)

	// The bar fades in over one bar height as the content reaches it.
	fadeStart := contentTop - 2*barH
	opacity := float64(position-fadeStart) / float64(internal.Max32(barH, 1))
	s.renderToolbar(s.title, p.logo, opacity, true)

	s.renderScrollbar(barH, bottom-barH)
}

func (p *coverPage) drawCover(s *pageSession, rect sdl.Rect) {
	if rect.H <= 0 {
		return
	}
	if p.image.Texture != nil {
		src := internal.CoverCrop(p.image.W, p.image.H, rect.W, rect.H)
		s.renderer.Copy(p.image.Texture, &src, &rect)
		return
	}

	theme := internal.GetTheme()
	top, bottom := p.options.GradientTop, p.options.GradientBottom
	if top == (sdl.Color{}) {
		top = theme.AccentColor
	}
	if bottom == (sdl.Color{}) {
		bottom = theme.BackgroundColor
	}
	internal.FillVerticalGradient(s.renderer, rect, top, bottom)
}

func (p *coverPage) destroy() {
	if p.cancel != nil {
		p.cancel()
	}
	p.layout.destroy()
	if p.image.Texture != nil {
		p.image.Texture.Destroy()
	}
	if p.logo.Texture != nil {
		p.logo.Texture.Destroy()
	}
}
