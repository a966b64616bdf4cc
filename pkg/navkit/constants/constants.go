// Package constants holds the virtual button set, environment switches and
// timing shared by navkit packages.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that switches on windowed mode.
const Development = "DEV"

const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // Window width in development mode
	WindowHeightEnvVar = "WINDOW_HEIGHT" // Window height in development mode
	DebugEnvVar        = "NAVKIT_DEBUG"  // Any non-empty value enables internal debug logging
)

// IsDevMode reports whether ENVIRONMENT=DEV.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	DefaultInputDelay      = 20 * time.Millisecond // Debounce between accepted presses
	DefaultQuickBackButton = VirtualButtonL1       // Shoulder button bound to quick-back
)
