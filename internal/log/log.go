// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package log provides the shared logger for the CLI, backed by
// charmbracelet/log.
package log

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Subcommands log through the package
// functions below.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.InfoLevel,
})

// SetVerbose lowers the level to debug.
func SetVerbose() {
	Logger.SetLevel(log.DebugLevel)
}

// Debug logs a debug message with key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
