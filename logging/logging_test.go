package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		format      string
		level       string
		expectDebug bool
		expectJSON  bool
	}{
		{description: "json debug", format: "json", level: "debug", expectDebug: true, expectJSON: true},
		{description: "text info", format: "text", level: "info"},
		{description: "defaults", format: "", level: "bogus"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			logger := New(buffer, tc.format, tc.level)
			logger.Debug("debug message")
			logger.Info("info message", "rule", "AEM-12")
			output := buffer.String()
			assert.EqualValues(t, tc.expectDebug, strings.Contains(output, "debug message"))
			assert.True(t, strings.Contains(output, "info message"))
			assert.EqualValues(t, tc.expectJSON, strings.HasPrefix(output, "{"))
		})
	}
}

func TestLevel(t *testing.T) {
	assert.EqualValues(t, slog.LevelWarn, Level("WARN"))
	assert.EqualValues(t, slog.LevelError, Level(" error "))
	assert.EqualValues(t, slog.LevelInfo, Level(""))
}
