package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type dialogChoice int

const (
	dialogNone dialogChoice = iota
	dialogConfirm
	dialogCancel
)

const (
	dialogOptionCancel = iota
	dialogOptionConfirm
)

// confirmDialog is the back confirmation overlay. It starts on the cancel
// option so a stray A press keeps the user on the page.
type confirmDialog struct {
	prompt   backnav.Prompt
	selected int
}

func newConfirmDialog(prompt backnav.Prompt) *confirmDialog {
	return &confirmDialog{prompt: prompt, selected: dialogOptionCancel}
}

func (d *confirmDialog) handle(button constants.VirtualButton) dialogChoice {
	switch button {
	case constants.VirtualButtonLeft:
		d.selected = dialogOptionCancel
	case constants.VirtualButtonRight:
		d.selected = dialogOptionConfirm
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if d.selected == dialogOptionConfirm {
			return dialogConfirm
		}
		return dialogCancel
	case constants.VirtualButtonB:
		return dialogCancel
	}
	return dialogNone
}

func (d *confirmDialog) render(renderer *sdl.Renderer, cache *internal.TextureCache, windowW, windowH int32) {
	theme := internal.GetTheme()
	titleFont := internal.Fonts.MediumFont
	messageFont := internal.Fonts.SmallFont

	renderer.SetDrawColor(0, 0, 0, 160)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: windowW, H: windowH})

	panelW := internal.Min32(int32(float64(windowW)*0.75), 640)
	padding := int32(24)
	contentW := panelW - padding*2

	titleH := internal.MeasureMultilineText(d.prompt.Title, titleFont, contentW)
	messageH := int32(0)
	if d.prompt.Message != "" {
		messageH = internal.MeasureMultilineText(d.prompt.Message, messageFont, contentW) + 12
	}
	buttonH := int32(messageFont.Height()) + 16
	spacing := int32(24)

	panelH := padding + titleH + messageH + spacing + buttonH + padding
	panel := sdl.Rect{X: (windowW - panelW) / 2, Y: (windowH - panelH) / 2, W: panelW, H: panelH}
	internal.FillRoundedRect(renderer, panel, 14, internal.CornersAll, internal.LerpColor(theme.BackgroundColor, theme.HighlightColor, 0.12))

	centerX := panel.X + panelW/2
	y := panel.Y + padding
	y += internal.RenderMultilineText(renderer, cache, d.prompt.Title, titleFont, contentW, centerX, y, theme.TextColor, constants.TextAlignCenter)
	if d.prompt.Message != "" {
		y += 12
		y += internal.RenderMultilineText(renderer, cache, d.prompt.Message, messageFont, contentW, centerX, y, theme.HintColor, constants.TextAlignCenter)
	}
	y += spacing

	buttonW := (contentW - 12) / 2
	d.renderButton(renderer, cache, d.prompt.CancelLabel, sdl.Rect{X: panel.X + padding, Y: y, W: buttonW, H: buttonH}, d.selected == dialogOptionCancel)
	d.renderButton(renderer, cache, d.prompt.ConfirmLabel, sdl.Rect{X: panel.X + padding + buttonW + 12, Y: y, W: buttonW, H: buttonH}, d.selected == dialogOptionConfirm)
}

func (d *confirmDialog) renderButton(renderer *sdl.Renderer, cache *internal.TextureCache, label string, rect sdl.Rect, selected bool) {
	theme := internal.GetTheme()

	fill := internal.LerpColor(theme.BackgroundColor, theme.HighlightColor, 0.25)
	textColor := theme.TextColor
	if selected {
		fill = theme.AccentColor
		textColor = theme.HighlightColor
	}
	internal.FillRoundedRect(renderer, rect, rect.H/2, internal.CornersAll, fill)

	tex, err := internal.CachedText(renderer, cache, label, internal.Fonts.SmallFont, textColor)
	if err != nil || tex.Texture == nil {
		return
	}
	w := internal.Min32(tex.W, rect.W-16)
	renderer.Copy(tex.Texture, &sdl.Rect{W: w, H: tex.H}, &sdl.Rect{X: rect.X + (rect.W-w)/2, Y: rect.Y + (rect.H-tex.H)/2, W: w, H: tex.H})
}
