package internal

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/glyph"
	"github.com/veandco/go-sdl2/sdl"
)

// GlyphTexture rasterizes a back control glyph into a texture.
func GlyphTexture(renderer *sdl.Renderer, icon backnav.Icon, size int32, c sdl.Color) (CachedTexture, error) {
	rgba, err := glyph.Rasterize(icon, int(size), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	if err != nil {
		return CachedTexture{}, err
	}
	return ImageTexture(renderer, rgba)
}

// CachedGlyph returns the glyph texture for icon at size, rendering it on first use.
func CachedGlyph(renderer *sdl.Renderer, cache *TextureCache, icon backnav.Icon, size int32, c sdl.Color) (CachedTexture, error) {
	key := fmt.Sprintf("glyph|%s|%d|%02x%02x%02x", icon, size, c.R, c.G, c.B)
	return cache.GetOrCreate(key, func() (CachedTexture, error) {
		return GlyphTexture(renderer, icon, size, c)
	})
}

// ImageTexture uploads an RGBA image to the renderer.
func ImageTexture(renderer *sdl.Renderer, rgba *image.RGBA) (CachedTexture, error) {
	w, h := int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy())
	if w == 0 || h == 0 {
		return CachedTexture{}, fmt.Errorf("image texture: empty image")
	}

	pix := Unpremultiply(rgba.Pix)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&pix[0]), w, h, 32, int32(rgba.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return CachedTexture{}, fmt.Errorf("image surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("image texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return CachedTexture{Texture: texture, W: w, H: h}, nil
}

// Unpremultiply converts premultiplied RGBA bytes to straight alpha in a new slice.
func Unpremultiply(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		out[i+3] = a
		switch a {
		case 0:
		case 255:
			out[i], out[i+1], out[i+2] = pix[i], pix[i+1], pix[i+2]
		default:
			for j := 0; j < 3; j++ {
				out[i+j] = uint8(min(255, int(pix[i+j])*255/int(a)))
			}
		}
	}
	return out
}
