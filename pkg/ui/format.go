package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorMode controls ANSI color usage.
type ColorMode int

const (
	// ColorAuto enables color when stdout is a capable terminal and
	// NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways forces color on.
	ColorAlways
	// ColorNever forces color off.
	ColorNever
)

// String returns the string representation of the color mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// ColorsEnabled resolves whether the mode yields colored output on the
// given stream.
func ColorsEnabled(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// ConfigureColors applies the resolved color decision to the lipgloss and
// pterm renderers, which otherwise each guess on their own.
func ConfigureColors(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
		pterm.EnableColor()
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}
}

// IsTerminal reports whether the stream is an interactive terminal;
// streaming and the progress TUI are pointless on pipes.
func IsTerminal(output *os.File) bool {
	return isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd())
}
