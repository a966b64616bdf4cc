// Package glyph rasterizes the back control glyphs from SVG at any size.
package glyph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ViewBox is the side length of the square coordinate space the glyphs are drawn in.
const ViewBox = 24

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
	`<path d="%s" fill="none" stroke="#%02x%02x%02x" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round"/>` +
	`</svg>`

var paths = map[backnav.Icon]string{
	backnav.IconChevronLeft: "M15 4 L7 12 L15 20",
	backnav.IconClose:       "M6 6 L18 18 M18 6 L6 18",
}

// Source returns the SVG document for icon stroked in c.
func Source(icon backnav.Icon, c color.RGBA) ([]byte, error) {
	d, ok := paths[icon]
	if !ok {
		return nil, fmt.Errorf("glyph: unknown icon %v", icon)
	}
	return fmt.Appendf(nil, svgTemplate, d, c.R, c.G, c.B), nil
}

// Rasterize draws icon into a size by size image.
func Rasterize(icon backnav.Icon, size int, c color.RGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph: invalid size %d", size)
	}

	src, err := Source(icon, c)
	if err != nil {
		return nil, err
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse %v: %w", icon, err)
	}

	svg.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)

	svg.Draw(raster, 1.0)

	return rgba, nil
}
