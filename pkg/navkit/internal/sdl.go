// Package internal contains the SDL infrastructure behind navkit pages.
// This includes window setup, input translation, fonts, and drawing helpers.
// Types and functions in this package are not part of the public API.
package internal

import (
	"fmt"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window and the theme fonts.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image formats unavailable", "error", err)
	}

	openControllers()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, ScaledFontSizes(window.GetHeight())); err != nil {
		return err
	}

	return nil
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
