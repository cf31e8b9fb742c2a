// File: doc.go
// Title: Package Documentation for Structured Logging
// Description: Package-level documentation for the dynstr logging package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

// Package log provides structured logging for the dynstr library and its
// command-line tools.
//
// Entries carry the originating module and operation, matching the context
// attached to structured errors, so a failed buffer operation and its log
// line can be correlated. Three output formats are supported: JSON for
// machine consumption, plain text, and colored console output for
// development.
//
// Loggers are immutable: the With* methods return configured copies, so a
// logger bound to a module can be shared freely between goroutines.
//
//	logger := log.New().WithModule("buffer").WithLevel(log.LevelDebug)
//	logger.Debug("growing storage", log.Int("capacity", 128))
//
// LogError understands the structured errors from core/error and picks the
// log level from the error's severity.
package log
