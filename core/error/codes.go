// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the dynstr library. These codes form a closed taxonomy that
//              mirrors the buffer engine's failure modes and enables structured
//              error handling and monitoring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with buffer error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the dynstr library. Success is represented by a nil
// error, not by a code.
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument validation
	CodeNullArgument    Code = "NULL_ARGUMENT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Memory and capacity
	CodeOutOfMemory      Code = "OUT_OF_MEMORY"
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeCopyFailed       Code = "COPY_FAILED"
	CodeMaxSizeExceeded  Code = "MAX_SIZE_EXCEEDED"
	CodeOverflow         Code = "OVERFLOW"

	// Buffer state and policy
	CodeEmpty           Code = "EMPTY"
	CodeReadOnly        Code = "READ_ONLY"
	CodeNotFound        Code = "NOT_FOUND"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Concurrency
	CodeLockFailed Code = "LOCK_FAILED"

	// Stream I/O
	CodeStreamError Code = "STREAM_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeNullArgument, CodeInvalidArgument,
		CodeOutOfMemory, CodeAllocationFailed, CodeCopyFailed, CodeMaxSizeExceeded, CodeOverflow,
		CodeEmpty, CodeReadOnly, CodeNotFound, CodeOperationFailed,
		CodeLockFailed,
		CodeStreamError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullArgument, CodeInvalidArgument:
		return "argument"
	case CodeOutOfMemory, CodeAllocationFailed, CodeCopyFailed, CodeMaxSizeExceeded, CodeOverflow:
		return "capacity"
	case CodeEmpty, CodeReadOnly, CodeNotFound, CodeOperationFailed:
		return "state"
	case CodeLockFailed:
		return "concurrency"
	case CodeStreamError:
		return "stream"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsRecoverable returns true if the caller is expected to branch on the code
// as an ordinary result rather than treat it as a hard failure
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeNotFound, CodeEmpty, CodeOperationFailed:
		return true
	default:
		return false
	}
}
