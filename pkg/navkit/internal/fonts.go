package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three text styles.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

// DefaultFontSizes suit a 480 pixel tall display.
var DefaultFontSizes = FontSizes{Small: 18, Medium: 24, Large: 32}

// ScaledFontSizes scales DefaultFontSizes to a display height.
func ScaledFontSizes(height int32) FontSizes {
	if height <= 0 {
		return DefaultFontSizes
	}
	scale := float64(height) / 480
	size := func(base int) int {
		return max(8, int(float64(base)*scale+0.5))
	}
	return FontSizes{
		Small:  size(DefaultFontSizes.Small),
		Medium: size(DefaultFontSizes.Medium),
		Large:  size(DefaultFontSizes.Large),
	}
}

type fonts struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

// Fonts holds the open theme fonts after Init.
var Fonts fonts

func initFonts(path string, sizes FontSizes) error {
	if path == "" {
		return fmt.Errorf("load font: theme has no font path")
	}

	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("load font %s at %d: %w", path, size, err)
		}
		return f, nil
	}

	var err error
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		closeFonts()
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		closeFonts()
		return err
	}
	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		closeFonts()
		return err
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "small", sizes.Small, "medium", sizes.Medium, "large", sizes.Large)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fonts{}
}
