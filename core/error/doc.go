// Package error provides comprehensive error handling capabilities for the dynstr library.
//
// Package: error
// Title: dynstr Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with logging.
//              It carries the buffer engine's closed error taxonomy: every fallible
//              buffer operation returns one of the codes defined here instead of an
//              ad-hoc error string.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - A closed set of structured error codes matching the buffer failure modes
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - Integration with the core/log package
//
// Usage:
//   import dserror "github.com/msto63/dynstr/core/error"
//
//   // Create a new error with context
//   err := dserror.New("growth would exceed maximum buffer size").
//     WithCode(dserror.CodeOverflow).
//     WithDetail("requested", 64<<20).
//     WithSeverity(dserror.SeverityHigh)
//
//   // Check error type and code
//   if dserror.HasCode(err, dserror.CodeOverflow) {
//     // Handle overflow specifically
//   }
//
// Success is represented by a nil error; there is no CodeOk. "Not found" and
// "empty" conditions are ordinary, low-severity results that callers are
// expected to branch on.
package error
