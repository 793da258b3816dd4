// Package output prints human-readable notices, tables and JSON.
//
// Package-level functions write to stdout. Code that needs its output
// captured (the site operations, tests) holds a *Printer instead.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Printer writes formatted output to a writer
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

var std = New(os.Stdout)

// Default returns the stdout printer
func Default() *Printer {
	return std
}

// JSON outputs data as indented JSON
func (p *Printer) JSON(data interface{}) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table outputs data as a formatted table
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := make([]string, len(headers))
	for i, h := range headers {
		headerLine[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	_, _ = fmt.Fprintln(p.w, strings.TrimRight(strings.Join(headerLine, "  "), " "))

	sepLine := make([]string, len(headers))
	for i, w := range widths {
		sepLine[i] = strings.Repeat("-", w)
	}
	_, _ = fmt.Fprintln(p.w, strings.Join(sepLine, "  "))

	for _, row := range rows {
		rowLine := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowLine[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(p.w, strings.TrimRight(strings.Join(rowLine, "  "), " "))
	}
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(p.w, "✓ "+format+"\n", args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(p.w, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func (p *Printer) Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(p.w, "! "+format+"\n", args...)
}

// Info prints an info message
func (p *Printer) Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(p.w, "→ "+format+"\n", args...)
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Prompt prints a message without a trailing newline
func (p *Printer) Prompt(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// JSON outputs data as JSON on stdout
func JSON(data interface{}) error {
	return std.JSON(data)
}

// Table outputs data as a formatted table on stdout
func Table(headers []string, rows [][]string) {
	std.Table(headers, rows)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	std.Success(format, args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	std.Error(format, args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	std.Warn(format, args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	std.Info(format, args...)
}

// Print prints a plain message
func Print(format string, args ...interface{}) {
	std.Print(format, args...)
}
