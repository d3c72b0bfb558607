package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DebugEnv switches debug output on when set to any non-empty value.
const DebugEnv = "TASKS_DEBUG"

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "tasks",
	})
}

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetVerbose toggles debug-level output
func SetVerbose(verbose bool) {
	if verbose || DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}

// Debug logs a structured debug message
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a structured warning
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}
