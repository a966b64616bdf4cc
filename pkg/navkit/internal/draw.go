package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// Corners selects which corners of a rectangle are rounded.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersTop = CornerTopLeft | CornerTopRight
	CornersAll = CornersTop | CornerBottomLeft | CornerBottomRight
)

// CornerInsets returns, for each of the radius rows nearest a rounded edge,
// how far the row starts inside the rectangle. Row 0 is the outermost row.
func CornerInsets(radius int32) []int32 {
	if radius <= 0 {
		return nil
	}
	r := float64(radius)
	insets := make([]int32, radius)
	for row := range insets {
		dy := r - float64(row) - 0.5
		insets[row] = int32(math.Round(r - math.Sqrt(r*r-dy*dy)))
	}
	return insets
}

// FillRoundedRect fills rect with color, rounding the selected corners.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, corners Corners, color sdl.Color) {
	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius <= 0 || corners == 0 {
		renderer.FillRect(&rect)
		return
	}

	insets := CornerInsets(radius)
	for row, inset := range insets {
		row := int32(row)
		if corners&CornersTop != 0 {
			fillRow(renderer, rect, rect.Y+row, inset, corners&CornerTopLeft != 0, corners&CornerTopRight != 0)
		} else {
			renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + row, W: rect.W, H: 1})
		}
		if corners&(CornerBottomLeft|CornerBottomRight) != 0 {
			fillRow(renderer, rect, rect.Y+rect.H-1-row, inset, corners&CornerBottomLeft != 0, corners&CornerBottomRight != 0)
		} else {
			renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + rect.H - 1 - row, W: rect.W, H: 1})
		}
	}

	middle := sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius}
	if middle.H > 0 {
		renderer.FillRect(&middle)
	}
}

func fillRow(renderer *sdl.Renderer, rect sdl.Rect, y, inset int32, left, right bool) {
	x0, x1 := rect.X, rect.X+rect.W
	if left {
		x0 += inset
	}
	if right {
		x1 -= inset
	}
	if x1 > x0 {
		renderer.FillRect(&sdl.Rect{X: x0, Y: y, W: x1 - x0, H: 1})
	}
}

// LerpColor blends from a to b by t in [0, 1].
func LerpColor(a, b sdl.Color, t float64) sdl.Color {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return sdl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// FillVerticalGradient fills rect blending from top to bottom.
func FillVerticalGradient(renderer *sdl.Renderer, rect sdl.Rect, top, bottom sdl.Color) {
	if rect.H <= 0 {
		return
	}
	for row := int32(0); row < rect.H; row++ {
		c := LerpColor(top, bottom, float64(row)/float64(max(1, rect.H-1)))
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + row, W: rect.W, H: 1})
	}
}

// DrawSmoothScrollbar draws a pill shaped scrollbar segment.
func DrawSmoothScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	FillRoundedRect(renderer, sdl.Rect{X: x, Y: y, W: width, H: height}, width/2, CornersAll, color)
}

// ScaleToFit shrinks w by h to fit within maxW by maxH keeping its aspect ratio.
func ScaleToFit(w, h, maxW, maxH int32) (int32, int32) {
	if w > maxW && w > 0 {
		h = int32(float32(h) * float32(maxW) / float32(w))
		w = maxW
	}
	if h > maxH && h > 0 {
		w = int32(float32(w) * float32(maxH) / float32(h))
		h = maxH
	}
	return w, h
}

// CoverCrop returns the source rect that fills dstW by dstH from a srcW by
// srcH image without distortion, cropping the overflow evenly.
func CoverCrop(srcW, srcH, dstW, dstH int32) sdl.Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return sdl.Rect{W: srcW, H: srcH}
	}
	srcRatio := float64(srcW) / float64(srcH)
	dstRatio := float64(dstW) / float64(dstH)

	if srcRatio > dstRatio {
		w := int32(float64(srcH) * dstRatio)
		return sdl.Rect{X: (srcW - w) / 2, Y: 0, W: w, H: srcH}
	}
	h := int32(float64(srcW) / dstRatio)
	return sdl.Rect{X: 0, Y: (srcH - h) / 2, W: srcW, H: h}
}
