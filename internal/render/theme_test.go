package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeOverrides(t *testing.T) {
	path := writeThemeFile(t, `
blockquote: "> "
fills:
  h1: "#"
  h2: "~"
badges:
  success: "@green_lt([ PASS ])"
colors:
  heading: yellow
  prompt: purple
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	buf := NewCaptureBuffer()
	engine := New(WithWriter(buf), WithMargin(10), WithTheme(theme))

	tpl := engine.Templates()
	assert.Equal(t, strings.Repeat("#", 10), tpl.H1Rule)
	assert.Equal(t, strings.Repeat("~", 10), tpl.H2Rule)
	assert.Equal(t, tpl.H2Rule, tpl.Divider)
	assert.Equal(t, "> ", tpl.Blockquote)
	assert.Equal(t, "@green_lt([ PASS ])", tpl.SuccessBadge)
	assert.Equal(t, "yellow", tpl.HeadingColor)
	assert.Equal(t, "purple", engine.Config().PromptColor)

	engine.Render("@H1 Build")
	assert.Equal(t, "##########\n \x1b[0;33mBuild\x1b[0m\n##########\n", buf.String())
}

func TestLoadThemePartialKeepsStockValues(t *testing.T) {
	path := writeThemeFile(t, `
fills:
  h2: "*"
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	engine := New(WithWriter(NewCaptureBuffer()), WithMargin(8), WithTheme(theme))
	tpl := engine.Templates()
	assert.Equal(t, strings.Repeat("=", 8), tpl.H1Rule)
	assert.Equal(t, strings.Repeat("*", 8), tpl.H2Rule)
	assert.Equal(t, "| ", tpl.Blockquote)
	assert.Equal(t, " ", tpl.Indent)
}

func TestLoadThemeRejectsUnknownColor(t *testing.T) {
	path := writeThemeFile(t, `
colors:
  heading: chartreuse
`)

	_, err := LoadTheme(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestLoadThemeRejectsMultiCharFill(t *testing.T) {
	path := writeThemeFile(t, `
fills:
  h1: "=="
`)

	_, err := LoadTheme(path)
	assert.Error(t, err)
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseVerbosity(t *testing.T) {
	testCases := []struct {
		input    string
		expected Verbosity
		wantErr  bool
	}{
		{"never", VerbosityNever, false},
		{"", VerbosityNever, false},
		{"on-failure", VerbosityOnFailure, false},
		{"on_failure", VerbosityOnFailure, false},
		{"ALWAYS", VerbosityAlways, false},
		{"sometimes", VerbosityNever, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseVerbosity(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
			assert.NotEmpty(t, v.String())
		})
	}
}
