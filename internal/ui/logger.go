package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger prints status lines to the console
type Logger struct {
	out     io.Writer
	verbose bool

	info    *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
	debug   *color.Color
}

// NewLogger creates a Logger writing to stderr
func NewLogger(verbose bool) *Logger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo creates a Logger writing to w
func NewLoggerTo(w io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     w,
		verbose: verbose,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		debug:   color.New(color.FgHiBlack),
	}
}

// SetVerbose toggles debug output
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

func (l *Logger) Info(format string, a ...any) {
	l.info.Fprintf(l.out, format+"\n", a...)
}

func (l *Logger) Success(format string, a ...any) {
	l.success.Fprintf(l.out, "✓ "+format+"\n", a...)
}

func (l *Logger) Warn(format string, a ...any) {
	l.warn.Fprintf(l.out, format+"\n", a...)
}

func (l *Logger) Error(format string, a ...any) {
	l.err.Fprintf(l.out, "✗ "+format+"\n", a...)
}

// Debug prints only in verbose mode
func (l *Logger) Debug(format string, a ...any) {
	if !l.verbose {
		return
	}
	l.debug.Fprintf(l.out, "» "+format+"\n", a...)
}
