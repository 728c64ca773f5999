// Package logger provides the levelled stderr logger used by dir-tree
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// Logger writes "[hh:mm:ss.mmm LEVEL] message" lines at or above its level
type Logger struct {
	out    io.Writer
	level  LogLevel
	colors map[LogLevel]*color.Color
	now    func() time.Time
}

// New creates a Logger writing messages at level and above to out.
// useColors paints level names whatever the global color setting says,
// since that setting follows stdout rather than out.
func New(out io.Writer, level LogLevel, useColors bool) *Logger {
	colors := map[LogLevel]*color.Color{
		LevelDebug: color.New(color.FgCyan),
		LevelInfo:  color.New(color.FgBlue),
		LevelWarn:  color.New(color.FgYellow),
		LevelError: color.New(color.FgRed),
	}
	for _, c := range colors {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Logger{
		out:    out,
		level:  level,
		colors: colors,
		now:    time.Now,
	}
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	return level != LevelNone && l.level <= level
}

// ParseLevel converts a level name to a LogLevel; unknown names are an error
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none", "off":
		return LevelNone, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn, error or none)", level)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

func (l *Logger) write(level LogLevel, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), l.colors[level].Sprint(level.String()), fmt.Sprintf(format, args...))
}
