package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// toolbarHeight scales the navigation bar from the 480 line reference
// layout and keeps it tall enough for the title font.
func (s *pageSession) toolbarHeight() int32 {
	scaled := int32(cover.NavigationBarHeight * float64(s.height()) / 480)
	return internal.Max32(scaled, int32(internal.Fonts.MediumFont.Height())+12)
}

// renderToolbar draws the back glyph, the title and an optional logo at the
// top of the screen and returns the bar height. opacity fades the bar
// background and the title; the back glyph always stays visible.
func (s *pageSession) renderToolbar(title string, logo internal.CachedTexture, opacity float64, solid bool) int32 {
	theme := internal.GetTheme()
	barH := s.toolbarHeight()
	width := s.width()
	opacity = max(0, min(1, opacity))

	if solid && opacity > 0 {
		bg := theme.BackgroundColor
		s.renderer.SetDrawColor(bg.R, bg.G, bg.B, uint8(opacity*255))
		s.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: barH})
	}

	left := s.margins.Left
	right := width - s.margins.Right

	if s.back.decision.ShowBackButton {
		size := barH / 2
		if solid && opacity < 1 {
			backdrop := theme.BackgroundColor
			backdrop.A = uint8((1 - opacity) * 140)
			pad := size / 3
			internal.FillRoundedRect(s.renderer, sdl.Rect{X: left - pad, Y: (barH-size)/2 - pad, W: size + pad*2, H: size + pad*2}, (size+pad*2)/2, internal.CornersAll, backdrop)
		}
		tex, err := internal.CachedGlyph(s.renderer, s.cache, s.back.decision.Icon, size, theme.TextColor)
		if err != nil {
			s.logger.Error("Failed to render back glyph", "icon", s.back.decision.Icon.String(), "error", err)
		} else {
			s.renderer.Copy(tex.Texture, nil, &sdl.Rect{X: left, Y: (barH - tex.H) / 2, W: tex.W, H: tex.H})
		}
		left += size + s.margins.Left/2
	}

	if logo.Texture != nil {
		w, h := internal.ScaleToFit(logo.W, logo.H, barH*3, barH-8)
		s.renderer.Copy(logo.Texture, nil, &sdl.Rect{X: right - w, Y: (barH - h) / 2, W: w, H: h})
		right -= w + s.margins.Right/2
	}

	if title == "" || opacity == 0 {
		return barH
	}

	tex, err := internal.CachedText(s.renderer, s.cache, title, internal.Fonts.MediumFont, theme.TextColor)
	if err != nil {
		s.logger.Error("Failed to render title", "title", title, "error", err)
		return barH
	}
	if tex.Texture == nil {
		return barH
	}

	// Centered on the screen unless the side controls push it over.
	available := internal.Max32(right-left, 0)
	w := internal.Min32(tex.W, available)
	x := internal.Max32((width-w)/2, left)
	if x+w > right {
		x = right - w
	}

	tex.Texture.SetAlphaMod(uint8(opacity * 255))
	s.renderer.Copy(tex.Texture, &sdl.Rect{W: w, H: tex.H}, &sdl.Rect{X: x, Y: (barH - tex.H) / 2, W: w, H: tex.H})
	tex.Texture.SetAlphaMod(255)

	return barH
}

// loadLogo loads the toolbar image, returning a zero texture when path is
// empty or the file cannot be read.
func (s *pageSession) loadLogo(path string) internal.CachedTexture {
	if path == "" {
		return internal.CachedTexture{}
	}
	tex, err := internal.LoadImageFile(s.renderer, path)
	if err != nil {
		s.logger.Error("Failed to load toolbar image", "path", path, "error", err)
		return internal.CachedTexture{}
	}
	return tex
}
