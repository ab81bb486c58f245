package render

import "strings"

// colorTable maps span color names to their SGR codes. Each recognized
// span renders as ESC[<code>m body ESC[0m; names absent from this table
// are left in the text untouched.
var colorTable = map[string]string{
	"none":      "0",
	"black":     "0;30",
	"white":     "1;37",
	"blue":      "0;34",
	"blue_lt":   "1;34",
	"green":     "0;32",
	"green_lt":  "1;32",
	"cyan":      "0;36",
	"cyan_lt":   "1;36",
	"red":       "0;31",
	"red_lt":    "1;31",
	"purple":    "0;35",
	"purple_lt": "1;35",
	"yellow":    "0;33",
	"yellow_lt": "1;33",
	"gray":      "1;30",
	"gray_lt":   "0;37",
}

// ColorSpan wraps text in span markup for the named color, or returns it
// unchanged when the name is empty or unknown. Collaborators use it to
// synthesize markup instead of pasting sigils by hand.
func ColorSpan(name, text string) string {
	if _, ok := colorTable[name]; !ok {
		return text
	}
	return "@" + name + "(" + text + ")"
}

// substituteColors resolves @name(body) spans in a single left-to-right
// pass, producing the formatted string (escape sequences in place of
// spans) and its stripped counterpart (bare span bodies). A span ends at
// the first close-paren not preceded by a backslash; spans whose name is
// not in the color table are copied through literally.
func substituteColors(text string) (formatted, stripped string) {
	var f, s strings.Builder
	i := 0
	for i < len(text) {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			f.WriteString(text[i:])
			s.WriteString(text[i:])
			break
		}
		at += i
		// An escaped sigil is ordinary text; the escape engine removes
		// the backslash later.
		if at > 0 && text[at-1] == '\\' {
			f.WriteString(text[i : at+1])
			s.WriteString(text[i : at+1])
			i = at + 1
			continue
		}
		name, body, end, ok := parseSpan(text, at)
		if !ok {
			f.WriteString(text[i : at+1])
			s.WriteString(text[i : at+1])
			i = at + 1
			continue
		}
		f.WriteString(text[i:at])
		s.WriteString(text[i:at])
		f.WriteString("\x1b[" + colorTable[name] + "m" + body + "\x1b[0m")
		s.WriteString(body)
		i = end
	}
	return f.String(), s.String()
}

// parseSpan attempts to read a color span starting at the @ at position
// start. It returns the color name, the raw body, and the index just past
// the closing paren.
func parseSpan(text string, start int) (name, body string, end int, ok bool) {
	j := start + 1
	for j < len(text) && (isSpanNameChar(text[j])) {
		j++
	}
	if j == start+1 || j >= len(text) || text[j] != '(' {
		return "", "", 0, false
	}
	name = strings.ToLower(text[start+1 : j])
	if _, known := colorTable[name]; !known {
		return "", "", 0, false
	}
	// Scan for the first unescaped close-paren.
	k := j + 1
	for k < len(text) {
		if text[k] == ')' && text[k-1] != '\\' {
			return name, text[j+1 : k], k + 1, true
		}
		k++
	}
	return "", "", 0, false
}

func isSpanNameChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
