// Package term decides how output should be formatted for the attached
// terminal, if any.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format
	FormatAuto Format = iota
	// FormatColor renders ANSI-decorated output
	FormatColor
	// FormatPlain renders without color
	FormatPlain
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatColor:
		return "color"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// DetectFormat determines whether output should carry color based on the
// environment and terminal capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatPlain
	}

	// Piped or redirected output gets no escape sequences.
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatPlain
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatPlain
	}

	return FormatColor
}
