// Package execute runs shell commands on behalf of a render engine. It
// captures or passes through the child's output and reports completion as
// a right-justified status badge, replaying captured streams according to
// the engine's verbosity configuration.
package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"inkline/internal/logger"
	"inkline/internal/render"
)

// Result holds the outcome of a captured command run.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the command exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Runner executes commands and reports their outcomes through one engine.
type Runner struct {
	engine *render.Engine
	shell  string
	logger *log.Logger
}

// NewRunner creates a Runner reporting through the given engine.
func NewRunner(engine *render.Engine) *Runner {
	return &Runner{
		engine: engine,
		shell:  "bash",
		logger: logger.NewStyledLogger("Execute"),
	}
}

// Run executes command via the shell with captured stdout and stderr.
// A non-zero exit status is part of the Result, not an error; the error
// return covers spawn failures only. Cancelling the context kills the
// child.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	runID := uuid.New().String()
	r.logger.Debug("Executing command", "run_id", runID, "command", command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := Result{Command: command}
	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("Command failed", "run_id", runID, "exit_code", result.ExitCode)
			return result, nil
		}
		return result, fmt.Errorf("failed to run %q: %w", command, err)
	}

	r.logger.Debug("Command succeeded", "run_id", runID)
	return result, nil
}

// System executes command with the parent's stdin, stdout and stderr
// attached, returning the exit code.
func (r *Runner) System(ctx context.Context, command string) (int, error) {
	r.logger.Debug("Spawning command with passthrough stdio", "command", command)

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to run %q: %w", command, err)
	}
	return 0, nil
}

// Report renders label with a right-justified success or failure badge on
// the same line, then replays the captured streams when the configured
// verbosity calls for it.
func (r *Runner) Report(label string, result Result) {
	r.engine.Render(label, render.NoNewline())
	if result.Failed() {
		r.engine.Failure()
	} else {
		r.engine.Success()
	}

	cfg := r.engine.Config()
	if shouldReplay(cfg.StdoutVerbosity, result.Failed()) {
		r.replay(result.Stdout, cfg.StdoutColor)
	}
	if shouldReplay(cfg.StderrVerbosity, result.Failed()) {
		r.replay(result.Stderr, cfg.StderrColor)
	}
}

func shouldReplay(v render.Verbosity, failed bool) bool {
	switch v {
	case render.VerbosityAlways:
		return true
	case render.VerbosityOnFailure:
		return failed
	default:
		return false
	}
}

// replay renders a captured stream as a colored blockquote. Foreign ANSI
// sequences are stripped and markup metacharacters escaped first, so the
// child's output cannot corrupt the quoted block.
func (r *Runner) replay(captured, color string) {
	captured = strings.TrimRight(ansi.Strip(captured), "\n")
	if captured == "" {
		return
	}
	escaped := render.EscapeText(captured)
	r.engine.Render("@BLOCKQUOTE(" + render.ColorSpan(color, escaped) + ")")
}
