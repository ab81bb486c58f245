// Package prompt provides line and boolean prompting on top of a render
// engine. It formats the question through the engine, reads the response
// from its input reader, and leaves all rendering decisions to the engine.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"inkline/internal/render"
)

// maxConfirmAttempts bounds the re-prompt loop for invalid yes/no input.
const maxConfirmAttempts = 5

// Prompter asks questions on one render engine and reads answers from one
// reader. Like the engine it wraps, it is not safe for concurrent use.
type Prompter struct {
	engine *render.Engine
	in     *bufio.Reader
}

// New creates a Prompter reading from os.Stdin.
func New(engine *render.Engine) *Prompter {
	return NewWithReader(engine, os.Stdin)
}

// NewWithReader creates a Prompter reading from the given reader. Tests
// and non-interactive callers inject their input here.
func NewWithReader(engine *render.Engine, in io.Reader) *Prompter {
	return &Prompter{
		engine: engine,
		in:     bufio.NewReader(in),
	}
}

// Ask renders the question in the prompt color without a trailing newline
// and returns the responder's line with its line ending trimmed.
func (p *Prompter) Ask(question string) (string, error) {
	p.render(question + " ")
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question, re-prompting on unrecognized input up
// to maxConfirmAttempts times before giving up.
func (p *Prompter) Confirm(question string) (bool, error) {
	for attempt := 0; attempt < maxConfirmAttempts; attempt++ {
		answer, err := p.Ask(question + " [y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.engine.Render("please answer yes or no")
	}
	return false, fmt.Errorf("no valid response after %d attempts", maxConfirmAttempts)
}

func (p *Prompter) render(text string) {
	colored := render.ColorSpan(p.engine.Config().PromptColor, text)
	p.engine.Render(colored, render.NoNewline(), render.NoIndent())
}
