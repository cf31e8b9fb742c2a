// File: transform_test.go
// Title: In-Place Transformation Tests
// Description: Tests for case conversion, reversal, whitespace trimming,
//              and padding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package buffer

import (
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
)

func TestToUpper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed", "Hello World", "HELLO WORLD"},
		{"already upper", "SHOUT", "SHOUT"},
		{"digits and punctuation", "a1-b2!", "A1-B2!"},
		{"non-ascii untouched", "caf\xc3\xa9", "CAF\xc3\xa9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.input)
			defer b.Destroy()

			if err := b.ToUpper(); err != nil {
				t.Fatalf("ToUpper failed: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkInvariants(t, b)
		})
	}
}

func TestToLower(t *testing.T) {
	b := newWith(t, "Hello WORLD 42!")
	defer b.Destroy()

	if err := b.ToLower(); err != nil {
		t.Fatalf("ToLower failed: %v", err)
	}
	if got := b.String(); got != "hello world 42!" {
		t.Errorf("String() = %q, want %q", got, "hello world 42!")
	}
	checkInvariants(t, b)
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple words", "hello world", "Hello World"},
		{"screaming input", "HELLO WORLD", "Hello World"},
		{"punctuation starts words", "it's a test-case", "It'S A Test-Case"},
		{"leading whitespace", "  two  words", "  Two  Words"},
		{"digit starts a word", "abc1def", "Abc1Def"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.input)
			defer b.Destroy()

			if err := b.ToTitleCase(); err != nil {
				t.Fatalf("ToTitleCase failed: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkInvariants(t, b)
		})
	}
}

func TestToSentenceCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		want     string
		wantCode dserror.Code
	}{
		{"periods", "first. second. THIRD.", ". ", "First. Second. THIRD.", ""},
		{"single sentence", "hello world", ". ", "Hello world", ""},
		{"empty separator", "abc", "", "abc", dserror.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.input)
			defer b.Destroy()

			err := b.ToSentenceCase(tt.sep)
			if tt.wantCode != "" {
				wantCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("ToSentenceCase failed: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkInvariants(t, b)
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"odd length", "abcde", "edcba"},
		{"even length", "abcd", "dcba"},
		{"single byte", "x", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.input)
			defer b.Destroy()

			if err := b.Reverse(); err != nil {
				t.Fatalf("Reverse failed: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkInvariants(t, b)
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLeft  string
		wantRight string
		wantBoth  string
	}{
		{"both sides", "  hi  ", "hi  ", "  hi", "hi"},
		{"tabs and newlines", "\t\nhi\r\n", "hi\r\n", "\t\nhi", "hi"},
		{"no whitespace", "hi", "hi", "hi", "hi"},
		{"all whitespace", "   ", "", "", ""},
		{"empty", "", "", "", ""},
		{"inner whitespace kept", " a b ", "a b ", " a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := newWith(t, tt.input)
			defer left.Destroy()
			if err := left.TrimLeft(); err != nil {
				t.Fatalf("TrimLeft failed: %v", err)
			}
			if got := left.String(); got != tt.wantLeft {
				t.Errorf("TrimLeft = %q, want %q", got, tt.wantLeft)
			}
			checkInvariants(t, left)

			right := newWith(t, tt.input)
			defer right.Destroy()
			if err := right.TrimRight(); err != nil {
				t.Fatalf("TrimRight failed: %v", err)
			}
			if got := right.String(); got != tt.wantRight {
				t.Errorf("TrimRight = %q, want %q", got, tt.wantRight)
			}
			checkInvariants(t, right)

			both := newWith(t, tt.input)
			defer both.Destroy()
			if err := both.Trim(); err != nil {
				t.Fatalf("Trim failed: %v", err)
			}
			if got := both.String(); got != tt.wantBoth {
				t.Errorf("Trim = %q, want %q", got, tt.wantBoth)
			}
			checkInvariants(t, both)
		})
	}
}

func TestTrimModifiedFlag(t *testing.T) {
	trims := map[string]func(*Buffer) error{
		"TrimLeft":  (*Buffer).TrimLeft,
		"TrimRight": (*Buffer).TrimRight,
		"Trim":      (*Buffer).Trim,
	}

	for name, trim := range trims {
		t.Run(name, func(t *testing.T) {
			// No whitespace to remove: the flag stays clear.
			b := newWith(t, "content")
			defer b.Destroy()
			b.ResetModified()
			if err := trim(b); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
			if b.IsModified() {
				t.Errorf("%s without content change set the modified flag", name)
			}

			// Removal marks the buffer modified.
			c := newWith(t, "  content  ")
			defer c.Destroy()
			c.ResetModified()
			if err := trim(c); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
			if !c.IsModified() {
				t.Errorf("%s shortened the content but did not set the modified flag", name)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	b := newWith(t, "Test")
	defer b.Destroy()

	if err := b.PadLeft(8, '*'); err != nil {
		t.Fatalf("PadLeft failed: %v", err)
	}
	if got := b.String(); got != "****Test" {
		t.Errorf("String() = %q, want %q", got, "****Test")
	}
	if b.Len() != 8 {
		t.Errorf("Len() = %d, want 8", b.Len())
	}
	checkInvariants(t, b)

	// Already at target length: successful no-op.
	if err := b.PadLeft(8, '-'); err != nil {
		t.Fatalf("no-op PadLeft failed: %v", err)
	}
	if got := b.String(); got != "****Test" {
		t.Errorf("String() = %q after no-op pad, want %q", got, "****Test")
	}

	// A shorter target is also a no-op, never a truncation.
	if err := b.PadLeft(3, '-'); err != nil {
		t.Fatalf("short-target PadLeft failed: %v", err)
	}
	if got := b.String(); got != "****Test" {
		t.Errorf("String() = %q, want %q", got, "****Test")
	}
}

func TestPadRight(t *testing.T) {
	b := newWith(t, "Test")
	defer b.Destroy()

	if err := b.PadRight(8, '.'); err != nil {
		t.Fatalf("PadRight failed: %v", err)
	}
	if got := b.String(); got != "Test...." {
		t.Errorf("String() = %q, want %q", got, "Test....")
	}
	checkInvariants(t, b)
}

func TestPadFixedCapacity(t *testing.T) {
	b, err := NewWithCapacity(10)
	if err != nil {
		t.Fatalf("NewWithCapacity failed: %v", err)
	}
	defer b.Destroy()

	if err := b.SetFixedCapacity(true); err != nil {
		t.Fatalf("SetFixedCapacity failed: %v", err)
	}
	if err := b.Set("ab"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// 9 bytes of padded content plus the terminator still fit in 10.
	if err := b.PadLeft(9, '0'); err != nil {
		t.Fatalf("PadLeft within fixed capacity failed: %v", err)
	}
	if got := b.String(); got != "0000000ab" {
		t.Errorf("String() = %q, want %q", got, "0000000ab")
	}
	if b.Cap() != 10 {
		t.Errorf("Cap() = %d after fixed-capacity pad, want 10", b.Cap())
	}

	// One byte more would displace the terminator.
	wantCode(t, b.PadRight(10, '0'), dserror.CodeMaxSizeExceeded)
	if got := b.String(); got != "0000000ab" {
		t.Errorf("content changed on rejected pad: %q", got)
	}
	checkInvariants(t, b)
}
