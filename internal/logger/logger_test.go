package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"DEBUG", log.DebugLevel},
		{"nonsense", log.WarnLevel},
		{"", log.WarnLevel},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, parseLogLevel(tc.input), "level %q", tc.input)
	}
}

func TestNewStyledLoggerInheritsGlobalLevel(t *testing.T) {
	orig := Logger
	defer func() { Logger = orig }()

	require.NoError(t, Configure("debug", "", false))

	component := NewStyledLogger("Execute")
	require.NotNil(t, component)
	assert.Equal(t, log.DebugLevel, component.GetLevel())
}

func TestNewStyledLoggerPrefix(t *testing.T) {
	component := NewStyledLogger("Render")
	assert.Equal(t, "Render ", component.GetPrefix())
}
