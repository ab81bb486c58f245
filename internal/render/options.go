package render

import "io"

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithWriter directs rendered output to the given writer. Default is
// os.Stdout if not specified.
func WithWriter(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.writer = w
		}
	}
}

// WithConfig replaces the whole configuration. Apply it before the other
// options so they can refine it.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithMargin sets the column width used for rule sizing and
// right-justification arithmetic.
func WithMargin(margin int) Option {
	return func(e *Engine) {
		if margin > 0 {
			e.cfg.Margin = margin
		}
	}
}

// WithTheme applies a YAML theme's template and color overrides at
// construction time.
func WithTheme(theme *Theme) Option {
	return func(e *Engine) {
		e.theme = theme
	}
}

// PlainText disables escape-sequence emission: color spans still resolve
// to their bodies, but the formatted output equals the stripped text.
// Useful when output is piped or NO_COLOR is set.
func PlainText() Option {
	return func(e *Engine) {
		e.plain = true
	}
}

// StockRules keeps the built-in 80-column rule strings instead of
// regenerating them to the margin width.
func StockRules() Option {
	return func(e *Engine) {
		e.cfg.MarginOverrides = false
	}
}

// lineOptions holds the per-call rendering switches. The defaults match
// an ordinary call: trailing newline on, auto-indent on, no justification.
type lineOptions struct {
	newline bool
	indent  bool
	justify bool
}

// LineOption is a per-call option for Engine.Render.
type LineOption func(*lineOptions)

// NoNewline suppresses the trailing newline so the next call continues
// the same visual line.
func NoNewline() LineOption {
	return func(lo *lineOptions) {
		lo.newline = false
	}
}

// NoIndent suppresses the indent token for this call.
func NoIndent() LineOption {
	return func(lo *lineOptions) {
		lo.indent = false
	}
}

// RightJustified pads the formatted text so its stripped width ends at
// the margin, accounting for anything already on the current line.
func RightJustified() LineOption {
	return func(lo *lineOptions) {
		lo.justify = true
	}
}
