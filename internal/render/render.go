// Package render implements a line-oriented terminal markup language.
//
// Each call to Engine.Render consumes one line of markup and writes its
// ANSI-decorated expansion to the engine's writer. Directives (@H1, @H2,
// @DIV, @BLOCKQUOTE, status badges, @ENTRY/@EXIT) occupy the whole line;
// inline @colorname(...) spans may appear in any payload. The engine keeps
// just enough state across calls to place rules and blank lines: the
// previous raw input, the width of the line under construction, and a
// pending-entry flag.
//
// Engines are not safe for concurrent use; give each logical output
// stream its own instance.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Engine renders markup lines to a writer. The zero value is not usable;
// construct instances with New.
type Engine struct {
	cfg    Config
	tpl    Templates
	writer io.Writer
	theme  *Theme
	plain  bool

	// Render state, owned by this instance and mutated only by Render.
	lastRaw      string
	lineBuf      string
	entryPending bool
}

// New creates an Engine with the given options. By default it writes to
// os.Stdout with the stock configuration.
func New(options ...Option) *Engine {
	e := &Engine{
		cfg:    DefaultConfig(),
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(e)
	}
	e.tpl = newTemplates(e.cfg)
	if e.theme != nil {
		e.theme.apply(&e.cfg, &e.tpl)
	}
	return e
}

// Config returns the engine's construction-time configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Templates returns the engine's derived template set.
func (e *Engine) Templates() Templates {
	return e.tpl
}

// Render processes one markup line and writes its expansion. The line is
// classified against the directive table, expanded with the template set
// and render state, run through color substitution and unescaping, then
// composed with justification padding and the trailing-newline policy.
func (e *Engine) Render(text string, options ...LineOption) {
	lo := lineOptions{newline: true, indent: true}
	for _, opt := range options {
		opt(&lo)
	}

	kind, payload := classify(text)

	// An entry renders nothing; it only arms the flag. An exit that
	// finds the flag still armed cancels it just as silently. Neither
	// touches the caches.
	if kind == KindEntry {
		e.entryPending = true
		return
	}
	if kind == KindExit && e.entryPending {
		e.entryPending = false
		return
	}

	expanded := e.expand(kind, payload, lo)
	e.entryPending = false

	formatted, stripped := substituteColors(expanded)
	formatted = unescape(formatted)
	stripped = unescape(stripped)
	if e.plain {
		formatted = stripped
	}

	e.compose(text, formatted, stripped, lo)
}

// expand produces the directive's intermediate text from the template
// set and render state. Color spans are still markup at this stage.
func (e *Engine) expand(kind Kind, payload string, lo lineOptions) string {
	t := e.tpl
	ind := ""
	if lo.indent {
		ind = t.Indent
	}

	switch kind {
	case KindH1:
		s := t.H1Rule + "\n" + ind + ColorSpan(t.HeadingColor, indentBody(payload, ind)) + "\n" + t.H1Rule
		if e.entryPending {
			s = t.Pad + s
		}
		return s

	case KindH2:
		s := ind + ColorSpan(t.HeadingColor, indentBody(payload, ind)) + "\n" + t.H2Rule
		// Consecutive headings stack without a redundant opening rule.
		if !isHeading(e.lastRaw) {
			s = t.H2Rule + "\n" + s
		}
		if e.entryPending {
			s = t.Pad + s
		}
		return s

	case KindDivider:
		s := t.Divider
		if payload != "" {
			s += "\n" + ind + indentBody(payload, ind)
		}
		return s

	case KindBlockquote:
		return ind + t.Blockquote + strings.ReplaceAll(payload, "\n", "\n"+ind+t.Blockquote)

	case KindSuccess:
		return t.SuccessBadge + " "
	case KindFailure:
		return t.FailureBadge + " "
	case KindSkip:
		return t.SkipBadge + " "

	case KindExit:
		if isHeading(e.lastRaw) {
			// The pad already follows a heading rule; drop its leading
			// blank so exactly one blank line appears.
			return strings.TrimPrefix(t.Pad, "\n")
		}
		if payload != "" {
			return ind + indentBody(payload, ind) + "\n" + t.ClosingRule + t.Pad
		}
		return t.ClosingRule + t.Pad

	default: // KindPlain
		// Literalize escaped sigils so a deliberately-escaped @ never
		// reads as a directive downstream.
		body := strings.ReplaceAll(payload, `\@`, "@")
		s := ind + indentBody(body, ind)
		if e.entryPending {
			s = t.Pad + t.Divider + "\n" + s
		}
		return s
	}
}

// indentBody re-indents a multi-line payload: every embedded newline is
// followed by the indent token before the next line's content.
func indentBody(body, indent string) string {
	if indent == "" || !strings.Contains(body, "\n") {
		return body
	}
	return strings.ReplaceAll(body, "\n", "\n"+indent)
}

// compose applies justification padding and the trailing-newline policy,
// emits the result, and updates the render-state caches.
func (e *Engine) compose(raw, formatted, stripped string, lo lineOptions) {
	if lo.justify {
		pad := e.cfg.Margin - utf8.RuneCountInString(e.lineBuf) - utf8.RuneCountInString(stripped)
		// Content already at or past the margin gets no padding and no
		// truncation.
		if pad > 0 {
			formatted = strings.Repeat(" ", pad) + formatted
		}
	}
	if t := e.tpl.LinePrefix; t != "" {
		formatted = t + formatted
	}
	if lo.newline {
		formatted += "\n"
	}

	_, _ = fmt.Fprint(e.writer, formatted) // write errors are not reportable here

	e.lastRaw = raw
	if lo.newline {
		e.lineBuf = ""
	} else {
		e.lineBuf += stripped
	}
}
