// File: search.go
// Title: Search Operations and Predicates
// Description: Implements the read-only search operations: first-occurrence
//              substring search from a start offset, and prefix/suffix
//              predicates. All reads acquire the instance lock; the library
//              follows the always-lock-reads discipline throughout.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with search and predicates

package buffer

import (
	"bytes"
)

// Find returns the byte offset of the first occurrence of substr at or after
// start, or NPos if there is none. An empty substr matches immediately at
// start, including at start == length, which represents an end-of-string
// match. A negative start or a start past the content yields NPos.
func (b *Buffer) Find(substr string, start int) int {
	if b == nil || start < 0 {
		return NPos
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(substr) == 0 {
		if start <= b.length {
			return start
		}
		return NPos
	}

	if start >= b.length {
		return NPos
	}
	if len(substr) > b.length-start {
		return NPos
	}

	idx := bytes.Index(b.data[start:b.length], []byte(substr))
	if idx < 0 {
		return NPos
	}
	return start + idx
}

// StartsWith reports whether the buffer content begins with prefix.
// An empty prefix always matches; a nil buffer never does. This predicate
// never fails, it only answers false.
func (b *Buffer) StartsWith(prefix string) bool {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(prefix) > b.length {
		return false
	}
	return string(b.data[:len(prefix)]) == prefix
}

// EndsWith reports whether the buffer content ends with suffix.
// An empty suffix always matches; a nil buffer never does.
func (b *Buffer) EndsWith(suffix string) bool {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(suffix) > b.length {
		return false
	}
	return string(b.data[b.length-len(suffix):b.length]) == suffix
}

// Contains reports whether substr occurs anywhere in the buffer content
func (b *Buffer) Contains(substr string) bool {
	return b.Find(substr, 0) != NPos
}
