// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels help callers decide
//              whether a failed buffer operation is an expected branch or a
//              condition that needs attention.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: needle not found, empty input, argument validation failures
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: fixed-capacity rejection, read-only rejection, truncated reads
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: growth ceiling exceeded, stream failures mid-read
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the instance unusable
	// Examples: allocation failure, lock domain entered after destruction
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical failures
	case CodeOutOfMemory, CodeAllocationFailed, CodeLockFailed:
		return SeverityCritical

	// High severity errors
	case CodeOverflow, CodeMaxSizeExceeded, CodeStreamError, CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeReadOnly, CodeCopyFailed, CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return SeverityMedium

	// Low severity errors - ordinary branching results
	case CodeNullArgument, CodeInvalidArgument, CodeEmpty, CodeNotFound, CodeOperationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
