// File: buffer.go
// Title: Thread-Safe Dynamic String Buffer
// Description: Implements the Buffer type, its lifecycle (construction and
//              destruction), its mode flags, and the locked snapshot getters.
//              Every public operation acquires the per-instance mutex; internal
//              helpers with the Locked suffix assume the lock is already held.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with lifecycle and getters

package buffer

import (
	"sync"
	"sync/atomic"

	dserrors "github.com/msto63/dynstr/core/errors"
)

// Library-wide size constants
const (
	// MaxStringSize is the process-wide ceiling on buffer capacity (32 MiB).
	// Every growth path enforces it.
	MaxStringSize = 32 << 20

	// MinCapacity is the minimum initial capacity of a freshly created buffer
	MinCapacity = 16

	// ChunkSize bounds a single line- or word-oriented stream read
	ChunkSize = 4096

	// NPos is the not-found sentinel returned by Find
	NPos = -1
)

// Mode flags. The flag set is plain state protected by the instance mutex;
// no atomic bit operations.
const (
	flagFixedCapacity uint8 = 1 << 0 // capacity may never grow past its current value
	flagReadOnly      uint8 = 1 << 1 // content-mutating operations fail
	flagModified      uint8 = 1 << 2 // content changed since creation or ResetModified
	flagDestroyed     uint8 = 1 << 3 // Destroy was called; the lock domain is gone
)

// instanceID issues creation-ordered identities used to acquire two instance
// locks in a deterministic global order.
var instanceID atomic.Uint64

// Buffer is a thread-safe, growable byte-string container.
//
// Invariants maintained by every public operation:
//   - length <= capacity, and data[length] == 0 whenever capacity > 0
//   - capacity == 0 exactly when no storage is held
//   - capacity never exceeds MaxStringSize
//   - a fixed-capacity buffer never grows (shrinking is permitted)
//   - a read-only buffer's content and length never change
type Buffer struct {
	mu     sync.Mutex
	id     uint64
	data   []byte // len(data) is the capacity; data[length] is the terminator
	length int
	flags  uint8
}

// alloc is the storage allocator used by construction and growth. It returns
// nil on failure, like realloc, so a failed growth leaves the original block
// intact. Tests substitute it to simulate allocation failure.
var alloc = func(size int) []byte {
	return make([]byte, size)
}

// New creates an empty buffer with the minimum initial capacity.
// It returns nil only if storage allocation fails.
func New() *Buffer {
	data := alloc(MinCapacity)
	if data == nil {
		return nil
	}
	return &Buffer{
		id:   instanceID.Add(1),
		data: data,
	}
}

// NewWithCapacity creates an empty buffer with a caller-chosen initial
// capacity. The size must be positive and no larger than MaxStringSize.
func NewWithCapacity(size int) (*Buffer, error) {
	if size <= 0 || size > MaxStringSize {
		return nil, dserrors.InvalidArgument(dserrors.ModuleBuffer, "alloc", size, "0 < size <= MaxStringSize")
	}

	data := alloc(size)
	if data == nil {
		return nil, dserrors.AllocationFailed(dserrors.ModuleBuffer, "alloc", size)
	}

	return &Buffer{
		id:   instanceID.Add(1),
		data: data,
	}, nil
}

// Destroy releases the buffer storage and tears down the instance's lock
// domain. Calling Destroy on a nil or already-destroyed buffer is a no-op.
// Any operation attempted after Destroy fails with a lock error.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}

	b.mu.Lock()
	b.data = nil
	b.length = 0
	b.flags |= flagDestroyed
	b.mu.Unlock()
}

// lockLive acquires the instance lock and verifies the lock domain still
// exists. On failure the lock is released before returning.
func (b *Buffer) lockLive(op string) error {
	b.mu.Lock()
	if b.flags&flagDestroyed != 0 {
		b.mu.Unlock()
		return dserrors.LockFailed(dserrors.ModuleBuffer, op)
	}
	return nil
}

// capLocked returns the current capacity. Lock must be held.
func (b *Buffer) capLocked() int {
	return len(b.data)
}

// terminateLocked re-asserts the terminator byte after the content.
// Lock must be held and capacity must exceed length.
func (b *Buffer) terminateLocked() {
	if len(b.data) > b.length {
		b.data[b.length] = 0
	}
}

// clearLocked zeroes the used region and resets the length. Lock must be held.
func (b *Buffer) clearLocked() {
	for i := 0; i < b.length; i++ {
		b.data[i] = 0
	}
	b.length = 0
	b.terminateLocked()
}

// Clear zeroes the used region of the buffer and sets its length to zero.
// It always succeeds; on a nil, destroyed, or read-only buffer it is a no-op.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flags&(flagDestroyed|flagReadOnly) != 0 {
		return
	}
	b.clearLocked()
	b.flags |= flagModified
}

// String returns a snapshot of the buffer content.
// A nil or destroyed buffer yields the empty string.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data[:b.length])
}

// Len returns the number of content bytes, excluding the terminator
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.length
}

// Cap returns the total reserved storage, including the terminator slot
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no content bytes
func (b *Buffer) IsEmpty() bool {
	if b == nil {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.length == 0
}

// SetReadOnly sets or clears the read-only policy flag. While the flag is
// set, every content-mutating operation fails without touching state.
func (b *Buffer) SetReadOnly(on bool) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "set_read_only")
	}
	if err := b.lockLive("set_read_only"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if on {
		b.flags |= flagReadOnly
	} else {
		b.flags &^= flagReadOnly
	}
	return nil
}

// IsReadOnly reports whether the read-only policy flag is set
func (b *Buffer) IsReadOnly() bool {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags&flagReadOnly != 0
}

// SetFixedCapacity sets or clears the fixed-capacity policy flag. While the
// flag is set, the capacity never increases past its value at flag-set time;
// shrinking remains permitted.
func (b *Buffer) SetFixedCapacity(on bool) error {
	if b == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "set_fixed_capacity")
	}
	if err := b.lockLive("set_fixed_capacity"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if on {
		b.flags |= flagFixedCapacity
	} else {
		b.flags &^= flagFixedCapacity
	}
	return nil
}

// IsFixedCapacity reports whether the fixed-capacity policy flag is set
func (b *Buffer) IsFixedCapacity() bool {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags&flagFixedCapacity != 0
}

// IsModified reports whether the content changed since creation or the last
// ResetModified call
func (b *Buffer) IsModified() bool {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags&flagModified != 0
}

// ResetModified clears the modified bookkeeping flag
func (b *Buffer) ResetModified() {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.flags &^= flagModified
}
