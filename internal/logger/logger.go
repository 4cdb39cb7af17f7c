// Package logger provides verbose logging for the Larder CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show how each ingredient line moves through
// the parser stages. Errors are printed regardless of verbose mode.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// emit holds the write lock so concurrent messages never interleave.
func emit(always bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if always || verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(false, "[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	emit(false, "\n=== ", "%s ===", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	emit(false, "[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(false, "[WARN] ", format, args...)
}

// Error prints an error message whether or not verbose mode is enabled.
func Error(format string, args ...any) {
	emit(true, "[ERROR] ", format, args...)
}

// Timed logs how long an operation took when the returned func is called.
//
//	defer logger.Timed("batch")()
func Timed(name string) func() {
	start := time.Now()
	return func() {
		Debug("%s took %s", name, time.Since(start).Round(time.Microsecond))
	}
}
