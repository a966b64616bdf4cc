package internal

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/config"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of navkit pages.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer button background
	AccentColor          sdl.Color // Dialog confirm button, cover gradient top
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted rows
	HintColor            sdl.Color // Footer hints and placeholders
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme = DefaultTheme()

// DefaultTheme is a dark theme used until one is set.
func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x3A6EA5),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0x9A9A9A),
		BackgroundColor:      HexToColor(0x101010),
	}
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ApplyThemeConfig overrides theme fields set in a config file.
// Colors that fail to parse are left unchanged; config.Validate reports them.
func ApplyThemeConfig(theme Theme, tc config.Theme) Theme {
	apply := func(dst *sdl.Color, hex string) {
		if hex == "" {
			return
		}
		if v, err := config.ParseHex(hex); err == nil {
			*dst = HexToColor(v)
		}
	}

	apply(&theme.HighlightColor, tc.Highlight)
	apply(&theme.AccentColor, tc.Accent)
	apply(&theme.ButtonLabelColor, tc.ButtonLabel)
	apply(&theme.TextColor, tc.Text)
	apply(&theme.HighlightedTextColor, tc.HighlightedText)
	apply(&theme.HintColor, tc.Hint)
	apply(&theme.BackgroundColor, tc.Background)

	if tc.FontPath != "" {
		theme.FontPath = tc.FontPath
	}
	return theme
}
