// File: transform.go
// Title: In-Place Layout and Case Transforms
// Description: Implements the O(length) in-place transforms: ASCII case
//              conversion, title and sentence casing, reversal, whitespace
//              trimming, and padding. Case and whitespace classification is
//              byte-wise through the bytex package; no Unicode semantics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with transforms

package buffer

import (
	dserrors "github.com/msto63/dynstr/core/errors"
	"github.com/msto63/dynstr/utils/bytex"
)

// beginTransform factors the shared entry sequence of the in-place
// transforms: nil check, lock, destroyed check, read-only check.
// The returned function releases the lock.
func (b *Buffer) beginTransform(op string) (func(), error) {
	if b == nil {
		return nil, dserrors.NilArgument(dserrors.ModuleBuffer, op)
	}
	if err := b.lockLive(op); err != nil {
		return nil, err
	}
	if b.flags&flagReadOnly != 0 {
		b.mu.Unlock()
		return nil, dserrors.ReadOnly(dserrors.ModuleBuffer, op)
	}
	return b.mu.Unlock, nil
}

// ToUpper converts every ASCII lowercase letter in the buffer to uppercase
func (b *Buffer) ToUpper() error {
	unlock, err := b.beginTransform("to_upper")
	if err != nil {
		return err
	}
	defer unlock()

	for i := 0; i < b.length; i++ {
		b.data[i] = bytex.ToUpper(b.data[i])
	}
	b.flags |= flagModified
	return nil
}

// ToLower converts every ASCII uppercase letter in the buffer to lowercase
func (b *Buffer) ToLower() error {
	unlock, err := b.beginTransform("to_lower")
	if err != nil {
		return err
	}
	defer unlock()

	for i := 0; i < b.length; i++ {
		b.data[i] = bytex.ToLower(b.data[i])
	}
	b.flags |= flagModified
	return nil
}

// ToTitleCase uppercases the first alphabetic byte following any
// non-alphabetic byte and lowercases every other alphabetic byte. A run of
// digits or symbols counts as a word boundary, so the letter after it is
// capitalized.
func (b *Buffer) ToTitleCase() error {
	unlock, err := b.beginTransform("to_title_case")
	if err != nil {
		return err
	}
	defer unlock()

	newWord := true
	for i := 0; i < b.length; i++ {
		c := b.data[i]
		if !bytex.IsAlpha(c) {
			newWord = true
		} else if newWord {
			b.data[i] = bytex.ToUpper(c)
			newWord = false
		} else {
			b.data[i] = bytex.ToLower(c)
		}
	}
	b.flags |= flagModified
	return nil
}

// ToSentenceCase uppercases the first byte of the buffer and the first
// alphabetic byte following each occurrence of sep. Other bytes are left
// untouched. sep must be non-empty.
func (b *Buffer) ToSentenceCase(sep string) error {
	if len(sep) == 0 {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "to_sentence_case", sep, "non-empty separator")
	}

	unlock, err := b.beginTransform("to_sentence_case")
	if err != nil {
		return err
	}
	defer unlock()

	if b.length > 0 {
		b.data[0] = bytex.ToUpper(b.data[0])
	}

	for i := 0; i+len(sep) <= b.length; i++ {
		if string(b.data[i:i+len(sep)]) != sep {
			continue
		}
		// Capitalize the first letter after the separator.
		for j := i + len(sep); j < b.length; j++ {
			if bytex.IsAlpha(b.data[j]) {
				b.data[j] = bytex.ToUpper(b.data[j])
				break
			}
			if !bytex.IsSpace(b.data[j]) {
				break
			}
		}
		i += len(sep) - 1
	}
	b.flags |= flagModified
	return nil
}

// Reverse reverses the buffer content in place with a two-pointer swap
func (b *Buffer) Reverse() error {
	unlock, err := b.beginTransform("reverse")
	if err != nil {
		return err
	}
	defer unlock()

	for i, j := 0, b.length-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
	b.flags |= flagModified
	return nil
}

// trimLeftLocked removes leading whitespace and reports whether the content
// shortened. Lock must be held.
func (b *Buffer) trimLeftLocked() bool {
	i := 0
	for i < b.length && bytex.IsSpace(b.data[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	// Shift content and terminator left over the whitespace run.
	copy(b.data, b.data[i:b.length+1])
	b.length -= i
	return true
}

// trimRightLocked removes trailing whitespace and reports whether the content
// shortened. Lock must be held.
func (b *Buffer) trimRightLocked() bool {
	trimmed := false
	for b.length > 0 && bytex.IsSpace(b.data[b.length-1]) {
		b.length--
		b.data[b.length] = 0
		trimmed = true
	}
	return trimmed
}

// TrimLeft removes leading whitespace bytes.
// Trimming an all-whitespace or empty buffer yields an empty, still
// terminated buffer.
func (b *Buffer) TrimLeft() error {
	unlock, err := b.beginTransform("trim_left")
	if err != nil {
		return err
	}
	defer unlock()

	if b.trimLeftLocked() {
		b.flags |= flagModified
	}
	return nil
}

// TrimRight removes trailing whitespace bytes
func (b *Buffer) TrimRight() error {
	unlock, err := b.beginTransform("trim_right")
	if err != nil {
		return err
	}
	defer unlock()

	if b.trimRightLocked() {
		b.flags |= flagModified
	}
	return nil
}

// Trim removes leading and trailing whitespace bytes. The lock is acquired
// once; the left and right passes run as internal locked helpers.
func (b *Buffer) Trim() error {
	unlock, err := b.beginTransform("trim")
	if err != nil {
		return err
	}
	defer unlock()

	left := b.trimLeftLocked()
	right := b.trimRightLocked()
	if left || right {
		b.flags |= flagModified
	}
	return nil
}

// padLocked builds a fresh padded buffer and swaps it in. Lock must be held
// and policy flags checked. left selects left-padding; otherwise the padding
// goes on the right.
func (b *Buffer) padLocked(op string, totalLength int, pad byte, left bool) error {
	if totalLength <= b.length {
		return nil
	}
	if totalLength+1 > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, op, totalLength+1, MaxStringSize)
	}
	// Padding always allocates; a fixed-capacity buffer only accepts it when
	// the padded content still fits the capacity it already has, and keeps
	// that capacity rather than shrinking to fit.
	newCapacity := totalLength + 1
	if b.flags&flagFixedCapacity != 0 {
		if newCapacity > b.capLocked() {
			return dserrors.MaxSizeExceeded(dserrors.ModuleBuffer, op, newCapacity, b.capLocked())
		}
		newCapacity = b.capLocked()
	}

	newData := alloc(newCapacity)
	if newData == nil {
		return dserrors.OutOfMemory(dserrors.ModuleBuffer, op, newCapacity)
	}

	padLength := totalLength - b.length
	if left {
		for i := 0; i < padLength; i++ {
			newData[i] = pad
		}
		copy(newData[padLength:], b.data[:b.length])
	} else {
		copy(newData, b.data[:b.length])
		for i := b.length; i < totalLength; i++ {
			newData[i] = pad
		}
	}
	newData[totalLength] = 0

	b.data = newData
	b.length = totalLength
	b.flags |= flagModified
	return nil
}

// PadLeft extends the buffer on the left with pad bytes until its length is
// totalLength. If the content is already at least that long the call is a
// successful no-op.
func (b *Buffer) PadLeft(totalLength int, pad byte) error {
	unlock, err := b.beginTransform("pad_left")
	if err != nil {
		return err
	}
	defer unlock()

	return b.padLocked("pad_left", totalLength, pad, true)
}

// PadRight extends the buffer on the right with pad bytes until its length
// is totalLength. If the content is already at least that long the call is a
// successful no-op.
func (b *Buffer) PadRight(totalLength int, pad byte) error {
	unlock, err := b.beginTransform("pad_right")
	if err != nil {
		return err
	}
	defer unlock()

	return b.padLocked("pad_right", totalLength, pad, false)
}
