// File: grow.go
// Title: Buffer Growth Primitive
// Description: Implements the capacity growth primitive all mutating
//              operations funnel through, plus the explicit Resize operation.
//              Growth uses a try-new-copy-swap strategy so that a failed
//              allocation never deallocates or corrupts the existing block.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with doubling growth policy

package buffer

import (
	dserrors "github.com/msto63/dynstr/core/errors"
)

// growLocked ensures the capacity is at least minCapacity. It is an internal
// primitive: the caller must already hold the instance lock.
//
// Growth doubles the current capacity (starting from MinCapacity when the
// buffer holds no storage) until it reaches minCapacity, capping at
// MaxStringSize. On allocation failure the existing data, length, and
// capacity are left completely untouched.
func (b *Buffer) growLocked(op string, minCapacity int) error {
	if minCapacity <= b.capLocked() {
		return nil
	}

	if b.flags&flagFixedCapacity != 0 {
		return dserrors.MaxSizeExceeded(dserrors.ModuleBuffer, op, minCapacity, b.capLocked())
	}

	if minCapacity > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, op, minCapacity, MaxStringSize)
	}

	newCapacity := b.capLocked()
	if newCapacity == 0 {
		newCapacity = MinCapacity
	}
	for newCapacity < minCapacity {
		newCapacity *= 2
		if newCapacity >= MaxStringSize {
			newCapacity = MaxStringSize
			break
		}
	}

	newData := alloc(newCapacity)
	if newData == nil {
		return dserrors.OutOfMemory(dserrors.ModuleBuffer, op, newCapacity)
	}

	copy(newData, b.data[:b.length])
	b.data = newData
	b.terminateLocked()
	return nil
}

// Resize changes the capacity to exactly newSize. Shrinking below the current
// length truncates the content to newSize-1 bytes and re-terminates. A fixed-
// capacity buffer may shrink but not grow. newSize must be positive; use
// Destroy to release storage entirely.
func (b *Buffer) Resize(newSize int) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "resize")
	}
	if newSize <= 0 {
		return dserrors.InvalidArgument(dserrors.ModuleBuffer, "resize", newSize, "newSize > 0")
	}
	if newSize > MaxStringSize {
		return dserrors.Overflow(dserrors.ModuleBuffer, "resize", newSize, MaxStringSize)
	}

	if err := b.lockLive("resize"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "resize")
	}
	if b.flags&flagFixedCapacity != 0 && newSize > b.capLocked() {
		return dserrors.MaxSizeExceeded(dserrors.ModuleBuffer, "resize", newSize, b.capLocked())
	}

	newData := alloc(newSize)
	if newData == nil {
		return dserrors.OutOfMemory(dserrors.ModuleBuffer, "resize", newSize)
	}

	if b.length >= newSize {
		b.length = newSize - 1
	}
	copy(newData, b.data[:b.length])
	b.data = newData
	b.terminateLocked()
	b.flags |= flagModified
	return nil
}
