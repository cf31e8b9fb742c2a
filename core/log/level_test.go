// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level parsing, string conversion, and
//              level-based filtering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level     Level
		want      string
		wantShort string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.level.ShortString(); got != tt.wantShort {
				t.Errorf("ShortString() = %q, want %q", got, tt.wantShort)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"  info  ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"nonsense", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should be filtered at info level")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should pass at info level")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("a level should pass its own minimum")
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 6 {
		t.Fatalf("AllLevels() returned %d levels, want 6", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("levels not strictly increasing at index %d", i)
		}
	}
}
