// Package navkit provides navigation chrome for SDL applications on embedded
// Linux handhelds: plain, list and cover pages with a back control that can
// ask for confirmation, a quick-back shoulder gesture, and localized labels.
//
// Pages are blocking functions. Each one runs its own event loop until the
// user leaves it, then returns a PageResult. Pair them with the router
// package to move between screens:
//
//	r.Register(ScreenSettings, func(nav *router.Navigator, input any) (any, error) {
//	    opts := navkit.DefaultPageOptions()
//	    opts.Navigation = nav
//	    opts.Confirmation = backnav.Discard()
//	    return navkit.Page("Settings", opts)
//	})
package navkit

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/navkit/pkg/navkit/config"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/locale"
	"github.com/BrandonKowalski/navkit/pkg/navkit/platform/cannoli"
)

// Options configures navkit initialization.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	WindowOptions  internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	Config         *config.Config         // Page defaults, theme overrides and locale
	ConfigPath     string                 // TOML file loaded when Config is nil
	FontPath       string                 // Overrides the theme font
	AccentColorHex uint32                 // Custom accent color
	IsCannoli      bool                   // Start from the Cannoli theme
	Languages      []string               // Preferred languages, overrides the config locale
	LogPath        string                 // Full path for log file including filename (creates parent directories)
}

var (
	defaultsMu   sync.RWMutex
	pageDefaults = config.Default().Page
)

// Init loads configuration, applies the theme and locale, and brings up SDL.
// Must be called before any page is shown. SDL failures are returned as
// *InfrastructureError, configuration failures as they come.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	cfg, err := resolveConfig(options)
	if err != nil {
		return err
	}
	SetPageDefaults(cfg.Page)

	theme := internal.DefaultTheme()
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme("")
	}
	theme = internal.ApplyThemeConfig(theme, cfg.Theme)
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	langs := options.Languages
	if len(langs) == 0 && cfg.Locale != "" {
		langs = []string{cfg.Locale}
	}
	locale.SetLanguage(langs...)

	internal.GetInternalLogger().Debug("Initializing navkit",
		"language", locale.Default().Language().String(),
		"page_style", cfg.Page.Style,
		"cover_style", cfg.Page.CoverStyle)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

func resolveConfig(options Options) (config.Config, error) {
	if options.Config != nil {
		if err := options.Config.Validate(); err != nil {
			return config.Config{}, err
		}
		return *options.Config, nil
	}
	if options.ConfigPath != "" {
		return config.Load(options.ConfigPath)
	}
	return config.Default(), nil
}

// SetPageDefaults replaces the defaults the Default*Options constructors read.
func SetPageDefaults(p config.Page) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	pageDefaults = p
}

// PageDefaults returns the active page defaults.
func PageDefaults() config.Page {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return pageDefaults
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
