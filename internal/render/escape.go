package render

import "strings"

var (
	escapeReplacer  = strings.NewReplacer(`\@`, "@", `\(`, "(", `\)`, ")")
	literalReplacer = strings.NewReplacer("@", `\@`, "(", `\(`, ")", `\)`)
)

// EscapeText backslash-escapes the markup metacharacters so arbitrary
// text renders literally when embedded in a directive payload.
func EscapeText(text string) string {
	return literalReplacer.Replace(text)
}

// unescape removes the backslash from escaped sigils and parens. It runs
// after color substitution so an escaped paren inside a span body was not
// taken for the span terminator, and after plain-text sigil literalization
// so parens escaped purely for grouping are cleaned up too.
func unescape(text string) string {
	return escapeReplacer.Replace(text)
}
