// Package term provides ANSI color state and terminal detection.
//
// Styles are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] enables or disables
// rendering once during startup; when colors are disabled every style
// renders plain text.
package term

import (
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/backmassage/channelsurf/internal/config"
)

// Styles used for log levels and the banner.
var (
	Red     = color.Style{color.FgLightRed, color.OpBold}
	Green   = color.Style{color.FgLightGreen, color.OpBold}
	Yellow  = color.Style{color.FgLightYellow, color.OpBold}
	Blue    = color.Style{color.FgLightBlue, color.OpBold}
	Cyan    = color.Style{color.FgLightCyan, color.OpBold}
	Magenta = color.Style{color.FgLightMagenta, color.OpBold}
)

// Configure resolves the color mode and switches style rendering on or off.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enable := resolve(mode)
	if enable && mode == config.ColorAlways {
		color.ForceOpenColor()
	}
	color.Enable = enable
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return color.Enable }

// Paint renders text in style s, or returns it unchanged when colors are off.
func Paint(s color.Style, text string) string {
	if !color.Enable {
		return text
	}
	return s.Sprint(text)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(f)
}

// isCharDevice is the portable fallback: a character device is usually a
// TTY, though /dev/null also qualifies.
func isCharDevice(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
