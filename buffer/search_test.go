// File: search_test.go
// Title: Search and Predicate Tests
// Description: Tests for substring search with a start offset and the
//              prefix/suffix/containment predicates.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package buffer

import "testing"

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		content string
		substr  string
		start   int
		want    int
	}{
		{"found at offset", "Hello World", "World", 0, 6},
		{"start before match", "Hello World", "World", 3, 6},
		{"start at match", "Hello World", "World", 6, 6},
		{"start past match", "Hello World", "World", 7, NPos},
		{"second occurrence", "abcabc", "abc", 1, 3},
		{"absent", "Hello", "xyz", 0, NPos},
		{"empty substr at start", "Hello", "", 2, 2},
		{"empty substr at end", "Hello", "", 5, 5},
		{"empty substr past end", "Hello", "", 6, NPos},
		{"negative start", "Hello", "H", -1, NPos},
		{"start at length", "Hello", "o", 5, NPos},
		{"substr longer than tail", "Hello", "llo!", 2, NPos},
		{"empty buffer", "", "x", 0, NPos},
		{"empty substr empty buffer", "", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.content)
			defer b.Destroy()

			if got := b.Find(tt.substr, tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.substr, tt.start, got, tt.want)
			}
		})
	}
}

func TestFindNilBuffer(t *testing.T) {
	var b *Buffer
	if got := b.Find("x", 0); got != NPos {
		t.Errorf("Find on nil buffer = %d, want NPos", got)
	}
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name    string
		content string
		prefix  string
		want    bool
	}{
		{"match", "Hello World", "Hello", true},
		{"exact content", "Hello", "Hello", true},
		{"empty prefix", "Hello", "", true},
		{"mismatch", "Hello", "World", false},
		{"prefix longer than content", "Hi", "Hello", false},
		{"empty content empty prefix", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.content)
			defer b.Destroy()

			if got := b.StartsWith(tt.prefix); got != tt.want {
				t.Errorf("StartsWith(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name    string
		content string
		suffix  string
		want    bool
	}{
		{"match", "Hello World", "World", true},
		{"exact content", "Hello", "Hello", true},
		{"empty suffix", "Hello", "", true},
		{"mismatch", "Hello", "Hell", false},
		{"suffix longer than content", "Hi", "Hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newWith(t, tt.content)
			defer b.Destroy()

			if got := b.EndsWith(tt.suffix); got != tt.want {
				t.Errorf("EndsWith(%q) = %v, want %v", tt.suffix, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	b := newWith(t, "Hello World")
	defer b.Destroy()

	if !b.Contains("lo Wo") {
		t.Error("Contains should find an inner substring")
	}
	if b.Contains("xyz") {
		t.Error("Contains should not find an absent substring")
	}
	if !b.Contains("") {
		t.Error("Contains should treat an empty substring as present")
	}
}

func TestPredicatesNilBuffer(t *testing.T) {
	var b *Buffer
	if b.StartsWith("") || b.EndsWith("") || b.Contains("") {
		t.Error("predicates on a nil buffer should answer false")
	}
}
