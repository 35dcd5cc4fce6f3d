// Package logging provides a leveled logger with optional file sink.
// Colors come from github.com/fatih/color, which handles NO_COLOR and
// non-TTY output detection on its own.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/variantforge/variantmix/internal/config"
)

// Logger writes leveled messages to stdout/stderr and optionally to a log
// file. All write operations are serialized under a mutex for safe
// concurrent use.
type Logger struct {
	mu   sync.Mutex
	file *os.File

	blue    *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	magenta *color.Color
	orange  *color.Color
	cyan    *color.Color
}

// NewLogger configures color output per colorMode and opens logFile if
// set. The caller must call [Logger.Close] when finished.
func NewLogger(colorMode config.ColorMode, logFile string) (*Logger, error) {
	color.NoColor = !resolveColor(colorMode)

	l := &Logger{
		blue:    color.New(color.FgBlue),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		orange:  color.New(color.FgYellow, color.Bold),
		cyan:    color.New(color.FgCyan),
	}

	if logFile != "" {
		dir := filepath.Dir(logFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// resolveColor applies the caller's explicit mode on top of fatih/color's
// own TTY detection; ColorAuto just defers to it.
func resolveColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Close flushes and closes the log file, if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// line writes a single timestamped log entry. ERROR goes to stderr; all
// others go to stdout. When a log file is open, the plain (uncolored) text
// is appended there as well.
func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	plain := ts + " [" + level + "] " + text + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}

	_, _ = io.WriteString(out, ts+" ")
	_, _ = c.Fprintf(out, "[%s]", level)
	_, _ = io.WriteString(out, " "+text+"\n")

	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs an informational message (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", l.blue, fmt.Sprintf(format, args...))
}

// Success logs a success message (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", l.green, fmt.Sprintf(format, args...))
}

// Warn logs a warning (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", l.yellow, fmt.Sprintf(format, args...))
}

// Error logs an error (red) to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", l.red, fmt.Sprintf(format, args...))
}

// Plan logs a variant-plan message (magenta) — one line per emitted plan.
func (l *Logger) Plan(format string, args ...interface{}) {
	l.line("PLAN", l.magenta, fmt.Sprintf(format, args...))
}

// Retry logs an encode-retry message (orange).
func (l *Logger) Retry(format string, args ...interface{}) {
	l.line("RETRY", l.orange, fmt.Sprintf(format, args...))
}

// Debug logs a debug message (cyan) only when verbose is true.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", l.cyan, fmt.Sprintf(format, args...))
}
