// File: standards.go
// Title: Error Standards for dynstr Modules
// Description: Provides standardized error constructors and codes for all
//              dynstr modules to ensure consistency. Every fallible buffer
//              operation reports failures through these constructors so that
//              module and operation context travel with the error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	dserror "github.com/msto63/dynstr/core/error"
)

// Module identifiers for error categorization
const (
	ModuleBuffer = "buffer"
	ModuleConfig = "config"
	ModuleStream = "stream"
)

// NilArgument creates an error for a nil handle or required nil argument.
// Checked before any lock is acquired, so no partial state change is possible.
func NilArgument(module, operation string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: nil argument", module, operation)).
		WithCode(dserror.CodeNullArgument).
		WithOperation(operation).
		WithDetail("module", module)
}

// InvalidArgument creates an error for an argument that fails validation
func InvalidArgument(module, operation string, input interface{}, expected string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: invalid argument", module, operation)).
		WithCode(dserror.CodeInvalidArgument).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":   module,
			"input":    input,
			"expected": expected,
		})
}

// Overflow creates an error for a request past the global maximum buffer size
func Overflow(module, operation string, requested, limit int) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: requested size exceeds maximum", module, operation)).
		WithCode(dserror.CodeOverflow).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"requested": requested,
			"limit":     limit,
		})
}

// MaxSizeExceeded creates an error for growth denied by the fixed-capacity policy
func MaxSizeExceeded(module, operation string, needed, capacity int) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: fixed-capacity buffer cannot grow", module, operation)).
		WithCode(dserror.CodeMaxSizeExceeded).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":   module,
			"needed":   needed,
			"capacity": capacity,
		})
}

// OutOfMemory creates an error for a failed growth allocation. The original
// buffer is guaranteed untouched when this error is returned.
func OutOfMemory(module, operation string, requested int) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: allocation failed", module, operation)).
		WithCode(dserror.CodeOutOfMemory).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"requested": requested,
		})
}

// AllocationFailed creates an error for a failed construction-time allocation
func AllocationFailed(module, operation string, size int) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: buffer allocation failed", module, operation)).
		WithCode(dserror.CodeAllocationFailed).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module": module,
			"size":   size,
		})
}

// NotFound creates an error for a needle that does not occur in the buffer.
// This is an ordinary, low-severity result callers branch on.
func NotFound(module, operation, needle string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: needle not found", module, operation)).
		WithCode(dserror.CodeNotFound).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module": module,
			"needle": needle,
		})
}

// ReadOnly creates an error for a mutation attempted on a read-only buffer
func ReadOnly(module, operation string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: buffer is read-only", module, operation)).
		WithCode(dserror.CodeReadOnly).
		WithOperation(operation).
		WithDetail("module", module)
}

// LockFailed creates an error for a lock acquisition that cannot succeed.
// This happens when an operation reaches an instance whose lock domain has
// already been torn down by Destroy. Acquisition failure is unrecoverable for
// that call; retry is the caller's responsibility.
func LockFailed(module, operation string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: lock acquisition failed, instance destroyed", module, operation)).
		WithCode(dserror.CodeLockFailed).
		WithOperation(operation).
		WithDetail("module", module)
}

// Empty creates an error for end-of-stream with nothing read
func Empty(module, operation string) *dserror.Error {
	return dserror.New(fmt.Sprintf("%s.%s: no data", module, operation)).
		WithCode(dserror.CodeEmpty).
		WithOperation(operation).
		WithDetail("module", module)
}

// Stream creates an error for a read failure other than end-of-stream
func Stream(module, operation string, cause error) *dserror.Error {
	return dserror.Wrap(cause, fmt.Sprintf("%s.%s: stream read failed", module, operation)).
		WithCode(dserror.CodeStreamError).
		WithOperation(operation).
		WithDetail("module", module)
}

// Operation creates a generic operation failure error
func Operation(module, operation string, cause error, details map[string]interface{}) *dserror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module

	if cause != nil {
		return dserror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(dserror.CodeOperationFailed).
			WithOperation(operation).
			WithDetails(details)
	}

	return dserror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(dserror.CodeOperationFailed).
		WithOperation(operation).
		WithDetails(details)
}

// Config creates a configuration error
func Config(operation, message string, cause error) *dserror.Error {
	if cause != nil {
		return dserror.Wrap(cause, message).
			WithCode(dserror.CodeConfigError).
			WithOperation(operation).
			WithDetail("module", ModuleConfig)
	}
	return dserror.New(message).
		WithCode(dserror.CodeConfigError).
		WithOperation(operation).
		WithDetail("module", ModuleConfig)
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if dsErr, ok := err.(*dserror.Error); ok {
		if details := dsErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if dsErr, ok := err.(*dserror.Error); ok {
		if details := dsErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if dsErr, ok := err.(*dserror.Error); ok {
		return dsErr.Operation()
	}
	return ""
}
