// File: bytex.go
// Title: ASCII Byte Classification and Case Mapping
// Description: Implements locale-free, single-byte classification predicates
//              and case mapping used by the buffer transforms. The buffer is a
//              byte sequence, not a rune sequence, so every predicate here
//              operates on exactly one byte under ASCII rules.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with ASCII predicates

package bytex

// caseDelta is the distance between an ASCII uppercase letter and its
// lowercase counterpart ('a' - 'A').
const caseDelta = 'a' - 'A'

// IsSpace returns true if b is an ASCII whitespace byte.
// Matches space, tab, newline, vertical tab, form feed, and carriage return.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsUpper returns true if b is an ASCII uppercase letter
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower returns true if b is an ASCII lowercase letter
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsAlpha returns true if b is an ASCII letter
func IsAlpha(b byte) bool {
	return IsUpper(b) || IsLower(b)
}

// IsDigit returns true if b is an ASCII decimal digit
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlnum returns true if b is an ASCII letter or decimal digit
func IsAlnum(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsPunct returns true if b is a printable ASCII byte that is neither
// alphanumeric nor a space
func IsPunct(b byte) bool {
	return b > ' ' && b < 0x7f && !IsAlnum(b)
}

// IsPrint returns true if b is a printable ASCII byte, including space
func IsPrint(b byte) bool {
	return b >= ' ' && b < 0x7f
}

// ToUpper maps an ASCII lowercase letter to uppercase.
// All other bytes pass through unchanged.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - caseDelta
	}
	return b
}

// ToLower maps an ASCII uppercase letter to lowercase.
// All other bytes pass through unchanged.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + caseDelta
	}
	return b
}
