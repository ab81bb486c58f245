package render

import "strings"

// Templates is the rendering template set derived once from a Config.
// The rule strings are fixed for the lifetime of the engine instance.
type Templates struct {
	// Pad is the blank-line separator emitted between blocks.
	Pad string

	// LinePrefix is prepended to every emitted write.
	LinePrefix string

	// Indent is the token inserted after every embedded newline (and
	// before the first line where a directive calls for indentation)
	// when auto-indent is on.
	Indent string

	// H1Rule, H2Rule, Divider and ClosingRule are full lines of fill
	// characters sized to the margin. Divider always equals H2Rule.
	H1Rule      string
	H2Rule      string
	Divider     string
	ClosingRule string

	// Blockquote is the per-line prefix for quoted blocks.
	Blockquote string

	// Badge strings carry their own color markup so the substitution
	// engine colors them like any other span.
	SuccessBadge string
	FailureBadge string
	SkipBadge    string

	// HeadingColor is the color name applied to heading payloads.
	HeadingColor string
}

const stockRuleWidth = 80

func newTemplates(cfg Config) Templates {
	t := Templates{
		Pad:          "\n",
		LinePrefix:   "",
		Indent:       " ",
		H1Rule:       strings.Repeat("=", stockRuleWidth),
		H2Rule:       strings.Repeat("-", stockRuleWidth),
		Blockquote:   "| ",
		SuccessBadge: "@green([  OK  ])",
		FailureBadge: "@red([ FAIL ])",
		SkipBadge:    "@blue([ SKIP ])",
		HeadingColor: "white",
	}
	if cfg.MarginOverrides && cfg.Margin > 0 {
		t.H1Rule = strings.Repeat("=", cfg.Margin)
		t.H2Rule = strings.Repeat("-", cfg.Margin)
	}
	t.Divider = t.H2Rule
	t.ClosingRule = t.H2Rule
	return t
}
