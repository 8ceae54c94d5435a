package runtime

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withColor(t *testing.T, enabled bool) {
	old := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = old })
}

func TestLoggerFiltersByLevel(t *testing.T) {
	withColor(t, false)
	buffer, cleanup := CaptureLog(t, LogLevelInfo)
	defer cleanup()

	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Warn("careful")
	Error("broken: %s", "x")

	assert.Equal(t, []string{
		"[INFO] shown 2",
		"[WARN] careful",
		"[ERROR] broken: x",
	}, strings.Split(strings.TrimSpace(buffer.String()), "\n"))
}

func TestLoggerOffDropsEverything(t *testing.T) {
	buffer, cleanup := CaptureLog(t, LogLevelOff)
	defer cleanup()
	Error("nothing")
	NewLogger(buffer, LogLevelDebug).Logf(LogLevelOff, "never a level of its own")
	assert.Empty(t, buffer.String())
}

func TestQuietTest(t *testing.T) {
	buffer, cleanup := CaptureLog(t, LogLevelDebug)
	defer cleanup()

	restore := QuietTest(t)
	Error("muted")
	restore()
	assert.Empty(t, buffer.String())
	assert.Equal(t, LogLevelDebug, GetLogLevel())
}

func TestCaptureLogRestoresOutput(t *testing.T) {
	before := globalLogger.Output()
	_, cleanup := CaptureLog(t, LogLevelDebug)
	assert.NotEqual(t, before, globalLogger.Output())
	cleanup()
	assert.Equal(t, before, globalLogger.Output())
}

func TestLevelTagColors(t *testing.T) {
	withColor(t, true)
	assert.Equal(t, "\x1b[33m[WARN]\x1b[0m", LogLevelWarn.tag())
	assert.Equal(t, "\x1b[31;1m[ERROR]\x1b[0;22m", LogLevelError.tag())
	assert.Equal(t, "[OFF]", LogLevelOff.tag())

	withColor(t, false)
	assert.Equal(t, "[WARN]", LogLevelWarn.tag())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		hasError bool
	}{
		{"DEBUG", LogLevelDebug, false},
		{"debug", LogLevelDebug, false},
		{"  info\n", LogLevelInfo, false},
		{"Warn", LogLevelWarn, false},
		{"WARNING", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"OFF", LogLevelOff, false},
		{"none", LogLevelOff, false},
		{"", LogLevelInfo, true},
		{"loud", LogLevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.hasError {
				assert.ErrorContains(t, err, "unknown log level")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestApplyLogLevelFromEnv(t *testing.T) {
	old := GetLogLevel()
	defer SetLogLevel(old)

	SetLogLevel(LogLevelError)
	t.Setenv(LogLevelEnvVar, " debug ")
	assert.True(t, ApplyLogLevelFromEnv())
	assert.Equal(t, LogLevelDebug, GetLogLevel())

	t.Setenv(LogLevelEnvVar, "chatty")
	assert.False(t, ApplyLogLevelFromEnv())
	assert.Equal(t, LogLevelDebug, GetLogLevel())

	t.Setenv(LogLevelEnvVar, "")
	assert.False(t, ApplyLogLevelFromEnv())
}
