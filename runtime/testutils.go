package runtime

import (
	"bytes"
	"testing"
)

// QuietTest turns logging off for the duration of a test.
func QuietTest(t *testing.T) func() {
	oldLevel := GetLogLevel()
	SetLogLevel(LogLevelOff)
	return func() {
		SetLogLevel(oldLevel)
	}
}

// CaptureLog sends log output to a buffer at the given level until the
// returned function is called.
func CaptureLog(t *testing.T, level LogLevel) (*bytes.Buffer, func()) {
	oldOutput, oldLevel := globalLogger.Output(), GetLogLevel()
	buffer := &bytes.Buffer{}
	SetLogOutput(buffer)
	SetLogLevel(level)
	return buffer, func() {
		SetLogOutput(oldOutput)
		SetLogLevel(oldLevel)
	}
}

// NewTestInterpreter returns an interpreter writing to a buffer with
// color disabled.
func NewTestInterpreter(t *testing.T) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	interp := NewInterpreter(out)
	interp.Reporter.DisableColor()
	return interp, out
}
