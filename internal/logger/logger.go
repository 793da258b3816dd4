// Package logger provides leveled logging for the siteup CLI tool.
//
// The logger package outputs debug information to stderr, separate from
// the user-facing output that goes to stdout. This allows for verbose
// debugging without interfering with the command echo and notices that
// operators read.
//
// # Log Levels
//
// Four log levels are supported, in order of severity:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Warning conditions that don't prevent operation
//   - Error: Error conditions that affect operation
//
// # Initialization
//
// Initialize the logger based on the --verbose flag:
//
//	logger.Init(verbose)  // verbose=true enables Debug level
//
// By default (verbose=false), only Warn and Error messages are shown.
//
// # Log File
//
// When a log file is configured, every entry that passes the level filter is
// also appended to that file. The file is rotated by size:
//
//	closer := logger.SetFile("/var/log/siteup.log", 5, 3)
//	defer closer.Close()
//
// Log messages are formatted as:
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message
//	[DEBUG] 2026-02-03 10:30:45 command finished command="sudo a2ensite blog.conf" ok=true
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger handles leveled logging with thread-safe output.
type Logger struct {
	level  Level
	output io.Writer
	file   io.Writer
	mu     sync.Mutex
}

var std = &Logger{
	level:  LevelWarn,
	output: os.Stderr,
}

// Init initializes the global logger with the specified verbosity.
func Init(verbose bool) {
	std.mu.Lock()
	defer std.mu.Unlock()

	if verbose {
		std.level = LevelDebug
	} else {
		std.level = LevelWarn
	}
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput sets the output destination for the global logger.
// A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
}

// SetFile mirrors log entries into a size-rotated file.
// maxSizeMB and maxBackups fall back to lumberjack defaults when zero.
// The returned closer detaches and closes the file.
func SetFile(path string, maxSizeMB, maxBackups int) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   false,
	}

	std.mu.Lock()
	std.file = lj
	std.mu.Unlock()

	return closerFunc(func() error {
		std.mu.Lock()
		std.file = nil
		std.mu.Unlock()
		return lj.Close()
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

func (l *Logger) write(level Level, line string) {
	entry := fmt.Sprintf("[%s] %s %s\n", level.String(), time.Now().Format("2006-01-02 15:04:05"), line)
	_, _ = io.WriteString(l.output, entry)
	if l.file != nil {
		_, _ = io.WriteString(l.file, entry)
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	l.write(level, fmt.Sprintf(format, args...))
}

func (l *Logger) logFields(level Level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatValue(fields[k])))
	}

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}
	l.write(level, msg)
}

// formatValue quotes string values containing spaces so key=value pairs
// stay splittable.
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if str, ok := v.(string); ok && (str == "" || strings.ContainsAny(str, " \t\n")) {
		return fmt.Sprintf("%q", str)
	}
	return s
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	std.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	std.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	std.log(LevelWarn, format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	std.log(LevelError, format, args...)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelDebug, msg, fields)
}

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelInfo, msg, fields)
}

// LogError logs an error with additional context message.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.log(LevelError, "%s: %v", msg, err)
}
