package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := NewTestLogger()
	logger.SetLevel(WARN)

	logger.Debug("debug %s", "message")
	logger.Info("info message")
	assert.Empty(t, buf.String(), "messages below WARN must be suppressed")

	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "WARN: warn message")
	assert.Contains(t, out, "ERROR: error message")
}

func TestLogger_Formatting(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Info("synthesized %d resources for %s", 3, "aws_vpc")
	assert.Contains(t, buf.String(), "INFO: synthesized 3 resources for aws_vpc")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"error", ERROR},
		{"unknown", INFO},
		{"", INFO},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseLevel(test.input))
		})
	}
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("should not appear anywhere visible")
}
