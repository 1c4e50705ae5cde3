package easyio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatSymbols LogFormat = iota // ● ◆ ✓ ▲ ✗
	LogFormatTagged                   // [DEBUG] [INFO] [SUCCESS] [WARN] [ERROR]
	LogFormatPlain                    // No prefix
)

// Logger writes levelled messages through an IOManager.
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
}

// NewLogger creates a new logger bound to the given IOManager. Debug
// messages are suppressed until WithLevel(LevelDebug) is called.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatSymbols,
		prefixes:     symbolPrefixes(),
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
		theme:        DefaultTheme(io),
	}
}

func symbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	}
}

func taggedPrefixes() map[LogLevel]string {
	p := make(map[LogLevel]string, 5)
	for _, l := range []LogLevel{LevelDebug, LevelInfo, LevelSuccess, LevelWarning, LevelError} {
		p[l] = "[" + l.String() + "]"
	}
	return p
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatSymbols:
		l.prefixes = symbolPrefixes()
	case LogFormatTagged:
		l.prefixes = taggedPrefixes()
	case LogFormatPlain:
		l.prefixes = map[LogLevel]string{}
	}
	return l
}

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// SetPrefix sets a custom prefix for a specific log level
func (l *Logger) SetPrefix(level LogLevel, prefix string) *Logger {
	l.prefixes[level] = prefix
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithTheme sets a custom theme for semantic colors
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level >= l.minLevel
}

// Log outputs a log message at the specified level. A nil logger discards
// everything.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.writer(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}
	parts := make([]string, 0, 3)
	if p := l.prefixes[level]; p != "" {
		parts = append(parts, p)
	}
	if l.withTime {
		parts = append(parts, "["+time.Now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	if !l.io.SupportsColor() {
		return text
	}
	var c ColorSpec
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelSuccess:
		c = l.theme.Success
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs a success message
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
