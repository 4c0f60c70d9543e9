// Package logger holds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// Log is the shared logger. It stays a no-op until Init runs, so library
// packages can log unconditionally.
var Log = zap.NewNop()

// Init replaces Log with a development console logger. Call it once at
// startup, before any package logs.
func Init() {
	if log, err := zap.NewDevelopment(); err == nil {
		Log = log
	}
}
