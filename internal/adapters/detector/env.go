// Package detector selects how inspection output is rendered.
package detector

import (
	"os"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive browser.
	ModeTUI
	// ModeLinear forces plain text output.
	ModeLinear
)

// String returns the flag value for the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect picks linear output when stdout is not a terminal or CI is set.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) (OutputMode, error) {
	switch userFlag {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return autoDetected, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, "unknown output mode"), "output", userFlag)
	}
}
