// File: standards_test.go
// Title: Error Standards Tests
// Description: Tests for the standardized error constructors, verifying code
//              assignment, module/operation details, and helper extraction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package errors

import (
	"errors"
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
)

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *dserror.Error
		code dserror.Code
	}{
		{"nil argument", NilArgument(ModuleBuffer, "set"), dserror.CodeNullArgument},
		{"invalid argument", InvalidArgument(ModuleBuffer, "insert", 42, "pos <= length"), dserror.CodeInvalidArgument},
		{"overflow", Overflow(ModuleBuffer, "append", 64 << 20, 32 << 20), dserror.CodeOverflow},
		{"max size", MaxSizeExceeded(ModuleBuffer, "append", 11, 10), dserror.CodeMaxSizeExceeded},
		{"out of memory", OutOfMemory(ModuleBuffer, "grow", 1024), dserror.CodeOutOfMemory},
		{"allocation failed", AllocationFailed(ModuleBuffer, "alloc", 16), dserror.CodeAllocationFailed},
		{"not found", NotFound(ModuleBuffer, "remove_first", "needle"), dserror.CodeNotFound},
		{"read only", ReadOnly(ModuleBuffer, "set"), dserror.CodeReadOnly},
		{"lock failed", LockFailed(ModuleBuffer, "append"), dserror.CodeLockFailed},
		{"empty", Empty(ModuleStream, "read_line"), dserror.CodeEmpty},
		{"stream", Stream(ModuleStream, "read_word", errors.New("io")), dserror.CodeStreamError},
		{"operation", Operation(ModuleBuffer, "move_from", nil, nil), dserror.CodeOperationFailed},
		{"config", Config("load", "bad config", nil), dserror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
		})
	}
}

func TestModuleDetails(t *testing.T) {
	err := NotFound(ModuleBuffer, "replace_first", "old")

	if !IsModuleError(err, ModuleBuffer) {
		t.Error("IsModuleError should match buffer module")
	}
	if IsModuleError(err, ModuleConfig) {
		t.Error("IsModuleError should not match a different module")
	}
	if IsModuleError(errors.New("plain"), ModuleBuffer) {
		t.Error("IsModuleError should be false for plain errors")
	}

	if got := GetErrorModule(err); got != ModuleBuffer {
		t.Errorf("GetErrorModule() = %q, want %q", got, ModuleBuffer)
	}
	if got := GetErrorOperation(err); got != "replace_first" {
		t.Errorf("GetErrorOperation() = %q, want %q", got, "replace_first")
	}

	if got := GetErrorModule(errors.New("plain")); got != "" {
		t.Errorf("GetErrorModule(plain) = %q, want empty", got)
	}
}

func TestStreamWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Stream(ModuleStream, "read_line", cause)

	if !errors.Is(err, cause) {
		t.Error("Stream() should wrap the cause for errors.Is")
	}
}

func TestNotFoundCarriesNeedle(t *testing.T) {
	err := NotFound(ModuleBuffer, "remove_first", "World")
	if err.Details()["needle"] != "World" {
		t.Errorf("needle detail = %v, want World", err.Details()["needle"])
	}
}
