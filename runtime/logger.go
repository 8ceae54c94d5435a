package runtime

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel is the severity of a log line.  Lines below the logger's level
// are dropped.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

// LogLevelEnvVar names the environment variable read at startup.
const LogLevelEnvVar = "FOREST_LOG_LEVEL"

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "OFF"}

// extra spellings accepted by ParseLogLevel
var levelAliases = map[string]LogLevel{
	"WARNING": LogLevelWarn,
	"NONE":    LogLevelOff,
}

var levelColors = map[LogLevel]*color.Color{
	LogLevelDebug: color.New(color.FgHiBlack),
	LogLevelInfo:  color.New(color.FgCyan),
	LogLevelWarn:  color.New(color.FgYellow),
	LogLevelError: color.New(color.FgRed, color.Bold),
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// tag is the bracketed level name, colored unless color output is off.
func (l LogLevel) tag() string {
	tag := "[" + l.String() + "]"
	if c, ok := levelColors[l]; ok {
		return c.Sprint(tag)
	}
	return tag
}

// ParseLogLevel accepts a level name in any case, ignoring surrounding
// whitespace.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	if level, ok := levelAliases[name]; ok {
		return level, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
}

// DefaultLogger writes leveled lines to a single writer.  It is safe for
// concurrent use.
type DefaultLogger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *log.Logger
}

// NewLogger creates a logger writing lines without timestamps.
func NewLogger(output io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level, logger: log.New(output, "", 0)}
}

func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

func (l *DefaultLogger) Output() io.Writer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger.Writer()
}

func (l *DefaultLogger) Logf(level LogLevel, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if level < l.level || level >= LogLevelOff {
		return
	}
	l.logger.Printf("%s %s", level.tag(), fmt.Sprintf(format, args...))
}

var globalLogger = NewLogger(os.Stderr, LogLevelWarn)

func SetLogLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func GetLogLevel() LogLevel {
	return globalLogger.GetLevel()
}

// SetLogOutput redirects the global logger, keeping its level.
func SetLogOutput(w io.Writer) {
	globalLogger.SetOutput(w)
}

func Debug(format string, args ...any) { globalLogger.Logf(LogLevelDebug, format, args...) }
func Info(format string, args ...any)  { globalLogger.Logf(LogLevelInfo, format, args...) }
func Warn(format string, args ...any)  { globalLogger.Logf(LogLevelWarn, format, args...) }
func Error(format string, args ...any) { globalLogger.Logf(LogLevelError, format, args...) }

// ApplyLogLevelFromEnv sets the global level from FOREST_LOG_LEVEL.  An
// unset or unparsable value leaves the level alone.
func ApplyLogLevelFromEnv() bool {
	level, err := ParseLogLevel(os.Getenv(LogLevelEnvVar))
	if err != nil {
		return false
	}
	SetLogLevel(level)
	return true
}

func init() {
	ApplyLogLevelFromEnv()

	// test binaries only show errors
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLogLevel(LogLevelError)
	}
}
