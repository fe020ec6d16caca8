// Package logger provides the console logging used by organizer commands.
//
// Messages are prefixed with [HH:MM:SS] timestamps, filtered by level, and
// colorized when the destination is a terminal. Loggers are safe for
// concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

var levelNames = map[string]int{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

// ConsoleLogger logs progress to a writer with timestamps and thread safety.
// If the writer is nil, messages are silently discarded.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool

	warnColor  *color.Color
	errorColor *color.Color
	debugColor *color.Color
}

// NewConsoleLogger creates a ConsoleLogger writing to the provided io.Writer.
// logLevel determines the minimum level for messages to be output; empty or
// invalid levels default to "info". Color is enabled automatically when the
// writer is a TTY and NO_COLOR is not set.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       normalizeLevel(logLevel),
		colorOutput: isTerminal(writer),
		warnColor:   color.New(color.FgYellow),
		errorColor:  color.New(color.FgRed),
		debugColor:  color.New(color.Faint),
	}
}

// isTerminal reports whether the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLevel converts a level string to its numeric value, defaulting to
// info for empty or unknown levels.
func normalizeLevel(level string) int {
	if lv, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return lv
	}
	return levelInfo
}

func (l *ConsoleLogger) log(level int, colorize *color.Color, format string, args ...interface{}) {
	if l.writer == nil || level < l.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	if l.colorOutput && colorize != nil {
		message = colorize.Sprint(message)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s\n", time.Now().Format("15:04:05"), message)
}

// Tracef logs a message at trace level.
func (l *ConsoleLogger) Tracef(format string, args ...interface{}) {
	l.log(levelTrace, l.debugColor, format, args...)
}

// Debugf logs a message at debug level.
func (l *ConsoleLogger) Debugf(format string, args ...interface{}) {
	l.log(levelDebug, l.debugColor, format, args...)
}

// Infof logs a message at info level.
func (l *ConsoleLogger) Infof(format string, args ...interface{}) {
	l.log(levelInfo, nil, format, args...)
}

// Warnf logs a message at warn level.
func (l *ConsoleLogger) Warnf(format string, args ...interface{}) {
	l.log(levelWarn, l.warnColor, format, args...)
}

// Errorf logs a message at error level.
func (l *ConsoleLogger) Errorf(format string, args ...interface{}) {
	l.log(levelError, l.errorColor, format, args...)
}
