package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ListItem is one selectable row.
type ListItem struct {
	Title  string
	Detail string // Drawn right aligned in the hint color
}

// rowList tracks the selected row of a list and keeps it in view.
type rowList struct {
	items    []ListItem
	selected int
}

func newRowList(items []ListItem, selected int) rowList {
	r := rowList{items: items}
	r.selectIndex(selected)
	return r
}

func (r *rowList) selectIndex(i int) {
	if len(r.items) == 0 {
		r.selected = -1
		return
	}
	r.selected = max(0, min(i, len(r.items)-1))
}

// move shifts the selection by delta and reports whether it changed.
func (r *rowList) move(delta int) bool {
	if len(r.items) == 0 {
		return false
	}
	previous := r.selected
	r.selectIndex(r.selected + delta)
	return r.selected != previous
}

// step handles Up and Down. At either end the scroller takes the input so
// the content still rubber bands.
func (r *rowList) step(s *pageSession, button constants.VirtualButton) bool {
	if button == constants.VirtualButtonUp {
		if !r.move(-1) {
			s.scroller.ScrollUp()
			return false
		}
		return true
	}
	if !r.move(1) {
		s.scroller.ScrollDown()
		return false
	}
	return true
}

// revealTarget returns the scroll position that keeps the row spanning
// [rowTop, rowTop+rowH] inside a viewport of height viewport scrolled to
// position.
func revealTarget(position float64, rowTop, rowH, viewport int32) float64 {
	top := float64(rowTop)
	bottom := float64(rowTop + rowH)
	switch {
	case top < position:
		return top
	case bottom > position+float64(viewport):
		return bottom - float64(viewport)
	}
	return position
}

func rowHeight() int32 {
	return int32(internal.Fonts.SmallFont.Height()) + 20
}

func (r *rowList) height() int32 {
	return int32(len(r.items)) * rowHeight()
}

// draw renders the rows with the first at y, clipped to [clipTop, clipBottom].
func (r *rowList) draw(s *pageSession, x, y, width, clipTop, clipBottom int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	rowH := rowHeight()

	for i, item := range r.items {
		rowY := y + int32(i)*rowH
		if rowY+rowH < clipTop || rowY > clipBottom {
			continue
		}

		textColor := theme.TextColor
		if i == r.selected {
			internal.FillRoundedRect(s.renderer, sdl.Rect{X: x, Y: rowY, W: width, H: rowH}, rowH/2, internal.CornersAll, theme.HighlightColor)
			textColor = theme.HighlightedTextColor
		}

		inner := width - 32
		detailW := int32(0)
		if item.Detail != "" {
			detail, err := internal.CachedText(s.renderer, s.cache, item.Detail, font, theme.HintColor)
			if err != nil {
				s.logger.Error("Failed to render row detail", "error", err)
			} else if detail.Texture != nil {
				detailW = detail.W + 16
				s.renderer.Copy(detail.Texture, nil, &sdl.Rect{X: x + width - 16 - detail.W, Y: rowY + (rowH-detail.H)/2, W: detail.W, H: detail.H})
			}
		}

		title, err := internal.CachedText(s.renderer, s.cache, item.Title, font, textColor)
		if err != nil {
			s.logger.Error("Failed to render row title", "error", err)
			continue
		}
		if title.Texture == nil {
			continue
		}
		w := internal.Min32(title.W, internal.Max32(inner-detailW, 0))
		s.renderer.Copy(title.Texture, &sdl.Rect{W: w, H: title.H}, &sdl.Rect{X: x + 16, Y: rowY + (rowH-title.H)/2, W: w, H: title.H})
	}
}
