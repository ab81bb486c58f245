package render

import (
	"fmt"
	"strings"
)

// Verbosity controls when captured subprocess output is replayed to the
// terminal. It is consumed by the execute package, not by the engine itself.
type Verbosity int

const (
	// VerbosityNever suppresses captured output entirely.
	VerbosityNever Verbosity = iota

	// VerbosityOnFailure replays captured output only when the command failed.
	VerbosityOnFailure

	// VerbosityAlways replays captured output after every command.
	VerbosityAlways
)

// String returns the string representation of the verbosity level.
func (v Verbosity) String() string {
	switch v {
	case VerbosityNever:
		return "never"
	case VerbosityOnFailure:
		return "on-failure"
	case VerbosityAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParseVerbosity parses a string into a Verbosity value.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "never", "":
		return VerbosityNever, nil
	case "on-failure", "on_failure", "onfailure":
		return VerbosityOnFailure, nil
	case "always":
		return VerbosityAlways, nil
	default:
		return VerbosityNever, fmt.Errorf("unknown verbosity: %s", s)
	}
}

// Config holds the construction-time settings of an Engine.
// It is not consulted again after New derives the template set from it.
type Config struct {
	// Margin is the terminal column width used for rule sizing and
	// right-justification arithmetic.
	Margin int

	// MarginOverrides regenerates the rule templates to exactly Margin
	// columns. When false the stock 80-column rules are kept as-is.
	MarginOverrides bool

	// StdoutVerbosity and StderrVerbosity control captured-stream replay
	// in the execute package.
	StdoutVerbosity Verbosity
	StderrVerbosity Verbosity

	// Default color names for the three output streams. Each must be a
	// name from the color table or the stream is rendered uncolored.
	PromptColor string
	StdoutColor string
	StderrColor string
}

// DefaultConfig returns the stock configuration: 80-column margin with
// margin-sized rules, on-failure capture replay, and the default stream
// colors.
func DefaultConfig() Config {
	return Config{
		Margin:          80,
		MarginOverrides: true,
		StdoutVerbosity: VerbosityOnFailure,
		StderrVerbosity: VerbosityOnFailure,
		PromptColor:     "cyan",
		StdoutColor:     "gray_lt",
		StderrColor:     "red",
	}
}
