// Package cover computes the scroll-driven geometry of a cover region drawn
// above scrollable page content.
//
// All functions are pure. Offsets follow the scroll tracker convention:
// a positive Y means the content was pulled down past the top (overscroll),
// a negative Y means the content was scrolled down.
package cover

import (
	"fmt"
	"strings"
)

// Style selects how the cover reacts when content scrolls down.
type Style int

const (
	StyleStatic   Style = iota // Cover stays put at its base height
	StyleParallax              // Cover moves up at half the scroll speed
	StylePinch                 // Cover shrinks with damping as content scrolls
)

// PinchDamping is the factor applied to the scroll distance when a pinch
// cover shrinks.
const PinchDamping = 0.8

// ParallaxRate is the fraction of the scroll distance a parallax cover moves.
const ParallaxRate = 0.5

// CornerOverlap is multiplied by the content corner radius to get how far
// rounded content overlaps the bottom edge of the cover.
const CornerOverlap = 1.4

// NavigationBarHeight is the base height of the navigation bar used by the
// header visible ratio.
const NavigationBarHeight = 44.0

// DefaultHeight is the base cover height used when none is configured.
const DefaultHeight = 350.0

func (s Style) String() string {
	switch s {
	case StyleStatic:
		return "static"
	case StyleParallax:
		return "parallax"
	case StylePinch:
		return "pinch"
	default:
		return "unknown"
	}
}

// ParseStyle maps a case-insensitive style name to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "static":
		return StyleStatic, nil
	case "parallax":
		return StyleParallax, nil
	case "pinch":
		return StylePinch, nil
	}
	return StyleStatic, fmt.Errorf("cover: unknown style %q", name)
}

// Point is a cumulative scroll displacement from the top of the content.
type Point struct {
	X float64
	Y float64
}

// Frame is the displayed geometry of the cover for one scroll position.
type Frame struct {
	Height float64 // Displayed cover height, never negative
	Offset float64 // Vertical offset of the cover from its resting position
}

// Transform returns the cover frame for the given vertical scroll offset.
func Transform(offsetY, baseHeight float64, style Style) Frame {
	if offsetY > 0 {
		return Frame{Height: baseHeight + offsetY}
	}

	switch style {
	case StyleParallax:
		return Frame{Height: baseHeight, Offset: offsetY * ParallaxRate}
	case StylePinch:
		return Frame{Height: max(0, baseHeight+offsetY*PinchDamping)}
	default:
		return Frame{Height: baseHeight}
	}
}

// ContentTopPadding returns the padding above the page content. A non-zero
// corner radius pulls the content up so its rounded top overlaps the cover.
func ContentTopPadding(baseHeight, cornerRadius float64) float64 {
	if cornerRadius == 0 {
		return baseHeight
	}
	return baseHeight - cornerRadius*CornerOverlap
}

// HeaderVisibleRatio reports how much of the navigation header area is still
// covered by content. The value is not clamped: it is negative once the
// header is scrolled past and above 1 while overscrolling.
func HeaderVisibleRatio(offsetY, safeAreaTop float64) float64 {
	headerHeight := NavigationBarHeight + safeAreaTop
	return (headerHeight + offsetY) / headerHeight
}
