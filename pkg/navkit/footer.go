package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is one button hint in the page footer.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

const (
	footerPillPadding int32 = 8
	footerItemSpacing int32 = 18
	footerLabelGap    int32 = 6
)

// footerHeight is the vertical space a footer takes including its margin.
func footerHeight(font *ttf.Font, bottomMargin int32) int32 {
	return int32(font.Height()) + footerPillPadding + bottomMargin
}

func renderFooter(renderer *sdl.Renderer, cache *internal.TextureCache, font *ttf.Font, items []FooterHelpItem, margins internal.Padding, windowW, windowH int32) {
	if len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	pillH := int32(font.Height()) + footerPillPadding/2
	y := windowH - margins.Bottom - pillH
	x := margins.Left

	for _, item := range items {
		button, err := internal.CachedText(renderer, cache, item.ButtonName, font, theme.ButtonLabelColor)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render footer button", "button", item.ButtonName, "error", err)
			continue
		}
		label, err := internal.CachedText(renderer, cache, item.HelpText, font, theme.HintColor)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render footer label", "label", item.HelpText, "error", err)
			continue
		}

		pillW := internal.Max32(button.W+footerPillPadding*2, pillH)
		if x+pillW+footerLabelGap+label.W > windowW-margins.Right {
			break
		}

		internal.FillRoundedRect(renderer, sdl.Rect{X: x, Y: y, W: pillW, H: pillH}, pillH/2, internal.CornersAll, theme.HighlightColor)
		if button.Texture != nil {
			renderer.Copy(button.Texture, nil, &sdl.Rect{X: x + (pillW-button.W)/2, Y: y + (pillH-button.H)/2, W: button.W, H: button.H})
		}
		x += pillW + footerLabelGap

		if label.Texture != nil {
			renderer.Copy(label.Texture, nil, &sdl.Rect{X: x, Y: y + (pillH-label.H)/2, W: label.W, H: label.H})
		}
		x += label.W + footerItemSpacing
	}
}
