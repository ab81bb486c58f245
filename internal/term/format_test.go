package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "color", FormatColor.String())
	assert.Equal(t, "plain", FormatPlain.String())
	assert.Equal(t, "unknown", Format(99).String())
}

func TestDetectFormatHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatPlain, DetectFormat(os.Stdout))
}

func TestDetectFormatPlainForRegularFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	// A regular file is not a terminal.
	assert.Equal(t, FormatPlain, DetectFormat(file))
}
