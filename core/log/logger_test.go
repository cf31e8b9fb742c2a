// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger construction, level filtering, contextual
//              cloning, and structured error logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
)

func jsonLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
}

func decodeLine(t *testing.T, line string) map[string]interface{} {
	t.Helper()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return data
}

func TestLoggerBasicOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)

	logger.Info("hello", Int("count", 3))

	data := decodeLine(t, buf.String())
	if data["message"] != "hello" {
		t.Errorf("message = %v, want hello", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v, want info", data["level"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v, want test", data["logger"])
	}
	if data["count"] != float64(3) {
		t.Errorf("count = %v, want 3", data["count"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelWarn)

	logger.Debug("invisible")
	logger.Info("invisible too")
	if buf.Len() != 0 {
		t.Fatalf("filtered levels produced output: %q", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Fatal("warn should be logged at warn level")
	}
}

func TestLoggerWithModuleAndOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo).WithModule("buffer").WithOperation("append")

	logger.Info("appended")

	data := decodeLine(t, buf.String())
	if data["module"] != "buffer" {
		t.Errorf("module = %v, want buffer", data["module"])
	}
	if data["operation"] != "append" {
		t.Errorf("operation = %v, want append", data["operation"])
	}
}

func TestLoggerCloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := jsonLogger(&buf, LevelInfo)
	derived := base.WithField("k", "v").WithLevel(LevelDebug)

	// The derived logger sees the field and the new level.
	if !derived.IsLevelEnabled(LevelDebug) {
		t.Error("derived logger should accept debug")
	}

	// The base logger is unchanged.
	if base.IsLevelEnabled(LevelDebug) {
		t.Error("base logger should still filter debug")
	}
	base.Info("plain")
	if strings.Contains(buf.String(), `"k"`) {
		t.Errorf("base logger leaked derived field: %q", buf.String())
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		code      dserror.Code
		wantLevel string
	}{
		{"low severity logs info", dserror.CodeNotFound, "info"},
		{"medium severity logs warn", dserror.CodeReadOnly, "warn"},
		{"critical severity logs error", dserror.CodeOutOfMemory, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := jsonLogger(&buf, LevelTrace)

			err := dserror.New("operation failed").WithCode(tt.code).WithOperation("append")
			logger.LogError(err)

			data := decodeLine(t, buf.String())
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["error_code"] != string(tt.code) {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.code)
			}
			if data["error_operation"] != "append" {
				t.Errorf("error_operation = %v, want append", data["error_operation"])
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelTrace)

	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}

func TestLogErrorPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelTrace)

	logger.ErrorWithErr("failed", errPlain{})

	data := decodeLine(t, buf.String())
	if data["error"] != "plain failure" {
		t.Errorf("error = %v, want plain failure", data["error"])
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain failure" }

func TestTextFormatterDeterministicFields(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "msg").WithFields(Fields{"b": 2, "a": 1, "c": 3})
	first, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := formatter.Format(entry)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("field order not deterministic: %q vs %q", again, first)
		}
	}
	if want := "[a=1 b=2 c=3]"; !strings.Contains(string(first), want) {
		t.Errorf("output %q should contain sorted fields %q", first, want)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
