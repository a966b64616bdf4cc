package internal

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText draws text into a new texture. Empty text returns a zero value.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) (CachedTexture, error) {
	if text == "" {
		return CachedTexture{}, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("text texture: %w", err)
	}

	return CachedTexture{Texture: texture, W: surface.W, H: surface.H}, nil
}

// CachedText renders text once per font and color and reuses the texture.
func CachedText(renderer *sdl.Renderer, cache *TextureCache, text string, font *ttf.Font, color sdl.Color) (CachedTexture, error) {
	if text == "" {
		return CachedTexture{}, nil
	}
	key := fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)
	return cache.GetOrCreate(key, func() (CachedTexture, error) {
		return RenderText(renderer, text, font, color)
	})
}

// TextWidth measures text in pixels, 0 on error.
func TextWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// WrapText breaks text into lines no wider than maxWidth as reported by
// measure. Explicit newlines are kept. A single word wider than maxWidth
// gets its own line.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// LineSpacing is the gap between wrapped lines for a font height.
func LineSpacing(fontHeight int32) int32 {
	return int32(float32(fontHeight) * 0.3)
}

// MultilineHeight is the height of n lines of text including spacing.
func MultilineHeight(lines int, fontHeight int32) int32 {
	if lines <= 0 {
		return 0
	}
	n := int32(lines)
	return n*fontHeight + (n-1)*LineSpacing(fontHeight)
}

// MeasureMultilineText returns the wrapped height of text.
func MeasureMultilineText(text string, font *ttf.Font, maxWidth int32) int32 {
	lines := WrapText(text, maxWidth, func(s string) int32 { return TextWidth(font, s) })
	return MultilineHeight(len(lines), int32(font.Height()))
}

// RenderMultilineText draws wrapped text starting at y and returns its height.
// For TextAlignCenter x is the center line, for TextAlignRight the right edge.
func RenderMultilineText(renderer *sdl.Renderer, cache *TextureCache, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lines := WrapText(text, maxWidth, func(s string) int32 { return TextWidth(font, s) })
	fontHeight := int32(font.Height())
	spacing := LineSpacing(fontHeight)

	lineY := y
	for _, line := range lines {
		if line != "" {
			tex, err := CachedText(renderer, cache, line, font, color)
			if err != nil {
				GetInternalLogger().Error("Failed to render text line", "error", err)
			} else {
				lineX := x
				switch align {
				case constants.TextAlignCenter:
					lineX = x - tex.W/2
				case constants.TextAlignRight:
					lineX = x - tex.W
				}
				renderer.Copy(tex.Texture, nil, &sdl.Rect{X: lineX, Y: lineY, W: tex.W, H: tex.H})
			}
		}
		lineY += fontHeight + spacing
	}

	return MultilineHeight(len(lines), fontHeight)
}
