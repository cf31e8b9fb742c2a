// Package bytex provides ASCII byte classification helpers for the dynstr library.
//
// Package: bytex
// Title: ASCII Byte Predicates for dynstr
// Description: This package provides single-byte classification and case
//              mapping under ASCII rules. It deliberately mirrors C-locale
//              ctype behavior: bytes
//              outside the ASCII range are never letters, never whitespace,
//              and pass through case mapping unchanged.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// The buffer type stores bytes, not runes; Unicode-aware classification is an
// explicit non-goal. Callers needing UTF-8 semantics should use the standard
// library unicode package on decoded strings instead.
package bytex
