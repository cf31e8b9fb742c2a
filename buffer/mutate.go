// File: mutate.go
// Title: Content Mutation Operations
// Description: Implements the content mutators: set, bounded assign, append,
//              insert, first-occurrence removal and replacement, pop-back,
//              ownership transfer, and cross-instance copy. All shifting is
//              overlap-safe and every capacity check happens before any byte
//              of content changes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with in-place mutators

package buffer

import (
	"bytes"

	dserrors "github.com/msto63/dynstr/core/errors"
)

// setLocked replaces the entire content with at most n bytes of s.
// Lock must be held; policy flags must already be checked.
func (b *Buffer) setLocked(op, s string, n int) error {
	if n > len(s) {
		n = len(s)
	}
	if n == 0 {
		// Fast path: clear without any length checks.
		b.clearLocked()
		b.flags |= flagModified
		return nil
	}

	if n+1 > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, op, n+1, MaxStringSize)
	}

	if err := b.growLocked(op, n+1); err != nil {
		return err
	}

	copy(b.data, s[:n])
	b.length = n
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}

// Set replaces the entire buffer content with s. An empty s clears the
// buffer via a fast path that performs no length checks.
func (b *Buffer) Set(s string) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "set")
	}

	if err := b.lockLive("set"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "set")
	}

	return b.setLocked("set", s, len(s))
}

// AssignN replaces the buffer content with at most n bytes of s.
// n == 0 clears the buffer; negative n is invalid.
func (b *Buffer) AssignN(s string, n int) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "assign_n")
	}
	if n < 0 {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "assign_n", n, "n >= 0")
	}

	if err := b.lockLive("assign_n"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "assign_n")
	}

	return b.setLocked("assign_n", s, n)
}

// appendLocked appends s to the current content. Lock must be held and
// policy flags already checked.
func (b *Buffer) appendLocked(op, s string) error {
	if len(s) == 0 {
		return nil
	}

	newLength := b.length + len(s)
	if newLength+1 > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, op, newLength+1, MaxStringSize)
	}

	if newLength >= b.capLocked() {
		if err := b.growLocked(op, newLength+1); err != nil {
			return err
		}
	}

	copy(b.data[b.length:], s)
	b.length = newLength
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}

// Append appends s to the end of the buffer, growing it as needed
func (b *Buffer) Append(s string) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "append")
	}

	if err := b.lockLive("append"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "append")
	}

	return b.appendLocked("append", s)
}

// Insert inserts s at byte offset pos, shifting the tail (terminator
// included) right by len(s). pos may equal the current length, which is
// equivalent to Append.
func (b *Buffer) Insert(pos int, s string) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "insert")
	}
	if pos < 0 {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "insert", pos, "pos >= 0")
	}

	if err := b.lockLive("insert"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "insert")
	}
	if pos > b.length {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "insert", pos, "pos <= length")
	}
	if len(s) == 0 {
		return nil
	}

	newLength := b.length + len(s)
	if newLength+1 > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, "insert", newLength+1, MaxStringSize)
	}

	if newLength >= b.capLocked() {
		if err := b.growLocked("insert", newLength+1); err != nil {
			return err
		}
	}

	// Shift the tail right, terminator included. copy handles the overlap.
	copy(b.data[pos+len(s):newLength+1], b.data[pos:b.length+1])
	copy(b.data[pos:], s)
	b.length = newLength
	b.flags |= flagModified
	return nil
}

// RemoveFirst removes the first occurrence of needle, shifting everything
// after the match left. An empty or absent needle is reported as not found;
// note the deliberate asymmetry with Find, where an empty needle matches.
func (b *Buffer) RemoveFirst(needle string) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "remove_first")
	}
	if len(needle) == 0 {
		return dserrors.NotFound(dserrors.ModuleBuffer, "remove_first", needle)
	}

	if err := b.lockLive("remove_first"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "remove_first")
	}

	idx := bytes.Index(b.data[:b.length], []byte(needle))
	if idx < 0 {
		return dserrors.NotFound(dserrors.ModuleBuffer, "remove_first", needle)
	}

	// Shift the tail left over the match, terminator included.
	copy(b.data[idx:], b.data[idx+len(needle):b.length+1])
	b.length -= len(needle)
	b.flags |= flagModified
	return nil
}

// ReplaceFirst replaces the first occurrence of old with new, shifting the
// tail to fit. The overflow and fixed-capacity checks are computed against
// the final expected length before any byte moves.
func (b *Buffer) ReplaceFirst(old, new string) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "replace_first")
	}

	if err := b.lockLive("replace_first"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "replace_first")
	}

	idx := bytes.Index(b.data[:b.length], []byte(old))
	if idx < 0 {
		return dserrors.NotFound(dserrors.ModuleBuffer, "replace_first", old)
	}

	finalLength := b.length - len(old) + len(new)
	if len(new) > len(old) {
		if finalLength+1 > MaxStringSize {
			return dserrors.Overflow(dserrors.ModuleBuffer, "replace_first", finalLength+1, MaxStringSize)
		}
		if finalLength >= b.capLocked() {
			if err := b.growLocked("replace_first", finalLength+1); err != nil {
				return err
			}
		}
	}

	// Shift the tail to its final position, terminator included; copy is
	// overlap-safe in both directions.
	copy(b.data[idx+len(new):finalLength+1], b.data[idx+len(old):b.length+1])
	copy(b.data[idx:], new)
	b.length = finalLength
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}

// PopBack truncates the buffer at the last occurrence of sep, removing the
// separator and everything after it. An empty buffer reports Empty; a
// missing separator reports NotFound.
func (b *Buffer) PopBack(sep byte) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "pop_back")
	}

	if err := b.lockLive("pop_back"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "pop_back")
	}
	if b.length == 0 {
		return dserrors.Empty(dserrors.ModuleBuffer, "pop_back")
	}

	idx := bytes.LastIndexByte(b.data[:b.length], sep)
	if idx < 0 {
		return dserrors.NotFound(dserrors.ModuleBuffer, "pop_back", string(sep))
	}

	b.length = idx
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}

// MoveFrom transfers ownership of src's storage, length, and capacity into
// b, releasing b's prior storage. src is destroyed by the call and must not
// be used afterwards. Both instance locks are acquired in creation order so
// that concurrent reversed moves cannot deadlock.
func (b *Buffer) MoveFrom(src *Buffer) error {
	if b == nil || src == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "move_from")
	}
	if b == src {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "move_from", "src", "distinct instances")
	}

	// Deterministic global order: lower creation id first.
	first, second := b, src
	if src.id < b.id {
		first, second = src, b
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if b.flags&flagDestroyed != 0 || src.flags&flagDestroyed != 0 {
		return dserrors.LockFailed(dserrors.ModuleBuffer, "move_from")
	}
	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "move_from")
	}
	if b.flags&flagFixedCapacity != 0 && len(src.data) > b.capLocked() {
		return dserrors.MaxSizeExceeded(dserrors.ModuleBuffer, "move_from", len(src.data), b.capLocked())
	}

	b.data = src.data
	b.length = src.length
	b.flags |= flagModified

	src.data = nil
	src.length = 0
	src.flags |= flagDestroyed
	return nil
}

// CopyFrom copies up to maxLen bytes from src into b, growing b as needed.
// src is not modified. Only b's lock is acquired; if src is mutated
// concurrently by another goroutine the copied snapshot is unspecified, which
// is the caller's responsibility to prevent.
func (b *Buffer) CopyFrom(src *Buffer, maxLen int) error {
	if b == nil || src == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "copy_from")
	}
	if maxLen < 0 {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "copy_from", maxLen, "maxLen >= 0")
	}

	if err := b.lockLive("copy_from"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "copy_from")
	}

	copyLen := src.length
	if copyLen > maxLen {
		copyLen = maxLen
	}

	if b.capLocked() <= copyLen {
		if err := b.growLocked("copy_from", copyLen+1); err != nil {
			return err
		}
	}

	copy(b.data, src.data[:copyLen])
	b.length = copyLen
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}
