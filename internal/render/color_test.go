package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteColors(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		formatted string
		stripped  string
	}{
		{
			name:      "single span",
			input:     "@green(ok)",
			formatted: "\x1b[0;32mok\x1b[0m",
			stripped:  "ok",
		},
		{
			name:      "span inside text",
			input:     "status: @red(bad) today",
			formatted: "status: \x1b[0;31mbad\x1b[0m today",
			stripped:  "status: bad today",
		},
		{
			name:      "two spans left to right",
			input:     "@green(a)@blue(b)",
			formatted: "\x1b[0;32ma\x1b[0m\x1b[0;34mb\x1b[0m",
			stripped:  "ab",
		},
		{
			name:      "none is a reset wrap",
			input:     "@none(x)",
			formatted: "\x1b[0mx\x1b[0m",
			stripped:  "x",
		},
		{
			name:      "unknown name left literal",
			input:     "@magenta(x)",
			formatted: "@magenta(x)",
			stripped:  "@magenta(x)",
		},
		{
			name:      "escaped sigil left alone",
			input:     `\@green(x)`,
			formatted: `\@green(x)`,
			stripped:  `\@green(x)`,
		},
		{
			name:      "escaped close paren stays in body",
			input:     `@cyan(a\)b)`,
			formatted: "\x1b[0;36ma\\)b\x1b[0m",
			stripped:  `a\)b`,
		},
		{
			name:      "unterminated span left literal",
			input:     "@green(never closed",
			formatted: "@green(never closed",
			stripped:  "@green(never closed",
		},
		{
			name:      "sigil without span left literal",
			input:     "user@host",
			formatted: "user@host",
			stripped:  "user@host",
		},
		{
			name:      "no spans at all",
			input:     "plain text",
			formatted: "plain text",
			stripped:  "plain text",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatted, stripped := substituteColors(tc.input)
			assert.Equal(t, tc.formatted, formatted)
			assert.Equal(t, tc.stripped, stripped)
		})
	}
}

func TestColorTableCodes(t *testing.T) {
	expected := map[string]string{
		"none": "0", "black": "0;30", "white": "1;37",
		"blue": "0;34", "blue_lt": "1;34",
		"green": "0;32", "green_lt": "1;32",
		"cyan": "0;36", "cyan_lt": "1;36",
		"red": "0;31", "red_lt": "1;31",
		"purple": "0;35", "purple_lt": "1;35",
		"yellow": "0;33", "yellow_lt": "1;33",
		"gray": "1;30", "gray_lt": "0;37",
	}
	assert.Equal(t, expected, colorTable)
}

func TestColorSpanHelper(t *testing.T) {
	assert.Equal(t, "@green(x)", ColorSpan("green", "x"))
	assert.Equal(t, "x", ColorSpan("", "x"))
	assert.Equal(t, "x", ColorSpan("nope", "x"))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "@(x)", unescape(`\@\(x\)`))
	assert.Equal(t, "untouched", unescape("untouched"))
}

func TestEscapeTextRoundTrips(t *testing.T) {
	original := "mail@host (exit 2)"
	assert.Equal(t, `mail\@host \(exit 2\)`, EscapeText(original))
	assert.Equal(t, original, unescape(EscapeText(original)))
}
