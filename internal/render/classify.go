package render

import (
	"regexp"
	"strings"
)

// Kind identifies which directive a line represents.
type Kind int

const (
	// KindPlain is the fallthrough for lines matching no directive.
	KindPlain Kind = iota
	// KindH1 is a full-width heading.
	KindH1
	// KindH2 is a subheading that collapses against a preceding heading.
	KindH2
	// KindDivider is a bare rule, optionally followed by raw text.
	KindDivider
	// KindBlockquote is a parenthesized quoted block.
	KindBlockquote
	// KindSuccess, KindFailure and KindSkip are fixed status badges.
	KindSuccess
	KindFailure
	KindSkip
	// KindEntry defers the next emission's leading spacing.
	KindEntry
	// KindExit closes an entry or heading block.
	KindExit
)

// String returns the directive keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindH1:
		return "h1"
	case KindH2:
		return "h2"
	case KindDivider:
		return "div"
	case KindBlockquote:
		return "blockquote"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindSkip:
		return "skip"
	case KindEntry:
		return "entry"
	case KindExit:
		return "exit"
	default:
		return "plain"
	}
}

// directivePattern pairs a compiled pattern with the kind it recognizes.
// Patterns are evaluated strictly in declaration order; the first match
// wins and the remainder of the list is never consulted.
type directivePattern struct {
	kind Kind
	re   *regexp.Regexp
}

// Directive keywords are case-insensitive, prefix-anchored against the
// whole line, and carry the rest of the line (including embedded newlines)
// as an optional payload. A backslash-escaped sigil never reaches these
// patterns because they anchor on a literal leading @.
var directivePatterns = []directivePattern{
	{KindH1, regexp.MustCompile(`(?is)^@h1(?:[ \t]+(.*))?$`)},
	{KindH2, regexp.MustCompile(`(?is)^@h2(?:[ \t]+(.*))?$`)},
	{KindDivider, regexp.MustCompile(`(?is)^@div(?:[ \t]+(.*))?$`)},
	{KindBlockquote, regexp.MustCompile(`(?is)^@blockquote\((.*)\)[ \t]*$`)},
	{KindSuccess, regexp.MustCompile(`(?is)^@success\b.*$`)},
	{KindFailure, regexp.MustCompile(`(?is)^@failure\b.*$`)},
	{KindSkip, regexp.MustCompile(`(?is)^@skip\b.*$`)},
	{KindEntry, regexp.MustCompile(`(?is)^@entry\b.*$`)},
	{KindExit, regexp.MustCompile(`(?is)^@exit(?:[ \t]+(.*))?$`)},
}

// classify matches text against the ordered directive list. The returned
// payload is the captured free text after the keyword, empty for badge,
// entry and unpayloaded directives. Lines matching nothing are plain.
func classify(text string) (Kind, string) {
	for _, dp := range directivePatterns {
		m := dp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		payload := ""
		if len(m) > 1 {
			payload = m[1]
		}
		if dp.kind == KindBlockquote && strings.HasSuffix(payload, `\`) {
			// The closing paren is backslash-escaped, so the quote is
			// unterminated. No later pattern can match the line.
			return KindPlain, text
		}
		switch dp.kind {
		case KindSuccess, KindFailure, KindSkip, KindEntry:
			// Trailing free text on these directives is discarded.
			payload = ""
		}
		return dp.kind, payload
	}
	return KindPlain, text
}

// isHeading reports whether a raw input line was itself a heading. Used
// to collapse consecutive heading rules and to pick the exit branch.
func isHeading(text string) bool {
	k, _ := classify(text)
	return k == KindH1 || k == KindH2
}
