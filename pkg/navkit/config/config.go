// Package config loads page and theme settings from TOML files.
//
// A file looks like:
//
//	locale = "de"
//
//	[page]
//	style = "default"
//	cover_style = "parallax"
//	cover_height = 320
//	corner_radius = 16
//	quick_back_button = "L1"
//
//	[theme]
//	highlight = "#FFFFFF"
//	font_path = "/mnt/SDCARD/.system/res/font.ttf"
//
// Missing keys keep their defaults. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/cover"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config is the decoded contents of a navkit settings file.
type Config struct {
	Locale string `toml:"locale"`
	Page   Page   `toml:"page"`
	Theme  Theme  `toml:"theme"`
}

// Page holds the defaults applied to every page.
type Page struct {
	Style           string  `toml:"style"`
	CoverStyle      string  `toml:"cover_style"`
	CoverHeight     float64 `toml:"cover_height"`
	CornerRadius    float64 `toml:"corner_radius"`
	SafeAreaTop     float64 `toml:"safe_area_top"`
	QuickBackButton string  `toml:"quick_back_button"`
}

// Theme holds colors as "#RRGGBB" strings and the UI font path.
// Empty colors leave the active theme's color in place.
type Theme struct {
	Highlight       string `toml:"highlight"`
	Accent          string `toml:"accent"`
	ButtonLabel     string `toml:"button_label"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	Hint            string `toml:"hint"`
	Background      string `toml:"background"`
	FontPath        string `toml:"font_path"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Locale: "en",
		Page: Page{
			Style:           backnav.StyleNative.String(),
			CoverStyle:      cover.StyleStatic.String(),
			CoverHeight:     cover.DefaultHeight,
			QuickBackButton: constants.VirtualButtonL1.GetName(),
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid value in the config.
func (c Config) Validate() error {
	var errs []error

	if _, err := backnav.ParsePageStyle(c.Page.Style); err != nil {
		errs = append(errs, fmt.Errorf("page.style: %w", err))
	}
	if _, err := cover.ParseStyle(c.Page.CoverStyle); err != nil {
		errs = append(errs, fmt.Errorf("page.cover_style: %w", err))
	}
	if c.Page.CoverHeight < 0 {
		errs = append(errs, fmt.Errorf("page.cover_height: must not be negative, got %v", c.Page.CoverHeight))
	}
	if c.Page.CornerRadius < 0 {
		errs = append(errs, fmt.Errorf("page.corner_radius: must not be negative, got %v", c.Page.CornerRadius))
	}
	if c.Page.SafeAreaTop < 0 {
		errs = append(errs, fmt.Errorf("page.safe_area_top: must not be negative, got %v", c.Page.SafeAreaTop))
	}
	if _, err := ParseButton(c.Page.QuickBackButton); err != nil {
		errs = append(errs, fmt.Errorf("page.quick_back_button: %w", err))
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			errs = append(errs, fmt.Errorf("locale: %w", err))
		}
	}

	colors := []struct {
		key   string
		value string
	}{
		{"theme.highlight", c.Theme.Highlight},
		{"theme.accent", c.Theme.Accent},
		{"theme.button_label", c.Theme.ButtonLabel},
		{"theme.text", c.Theme.Text},
		{"theme.highlighted_text", c.Theme.HighlightedText},
		{"theme.hint", c.Theme.Hint},
		{"theme.background", c.Theme.Background},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, err := ParseHex(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.key, err))
		}
	}

	return errors.Join(errs...)
}

// PageStyle returns the parsed page style. Invalid values fall back to native.
func (p Page) PageStyle() backnav.PageStyle {
	s, err := backnav.ParsePageStyle(p.Style)
	if err != nil {
		return backnav.StyleNative
	}
	return s
}

// Cover returns the parsed cover style. Invalid values fall back to static.
func (p Page) Cover() cover.Style {
	s, err := cover.ParseStyle(p.CoverStyle)
	if err != nil {
		return cover.StyleStatic
	}
	return s
}

// QuickBack returns the quick-back button. Invalid values fall back to L1.
func (p Page) QuickBack() constants.VirtualButton {
	b, err := ParseButton(p.QuickBackButton)
	if err != nil {
		return constants.VirtualButtonL1
	}
	return b
}

// Language returns the configured locale tag, or language.Und when unset.
func (c Config) Language() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into 0xRRGGBB.
func ParseHex(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

// ParseButton maps a button name such as "L1" or "select" to its virtual button.
func ParseButton(name string) (constants.VirtualButton, error) {
	if vb, ok := constants.LookupButton(name); ok {
		return vb, nil
	}
	return constants.VirtualButtonUnassigned, fmt.Errorf("unknown button %q", name)
}
