// Package buffer provides a thread-safe, growable byte-string container for the dynstr library.
//
// Package: buffer
// Title: Thread-Safe Dynamic String Buffer
// Description: This package implements the Buffer type, a mutex-guarded
//              dynamic byte string with in-place mutation operations: append,
//              set, insert, find, replace, case conversion, trimming, padding,
//              and line/word-oriented reads from a stream. All operations
//              funnel through a common growth primitive that enforces the
//              process-wide size ceiling and the per-instance capacity policy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Representation
//
// A Buffer owns contiguous storage of len(data) bytes (its capacity), of
// which length bytes are content. Whenever the capacity is non-zero,
// data[length] holds a zero terminator byte so the content can always be
// handed to null-terminated-string consumers. The capacity therefore always
// exceeds the length by at least one while storage is held. Content is a
// byte sequence: case conversion and whitespace classification are
// single-byte ASCII operations (see utils/bytex); Unicode is out of scope.
//
// Locking discipline
//
// Every public operation, including reads, acquires the per-instance mutex
// for its full duration. Internal helpers carrying the Locked suffix assume
// the lock is already held and are never exported, so no operation ever
// locks twice on the same instance. Two-instance transfer (MoveFrom)
// acquires both locks in creation order to rule out deadlock between
// concurrent reversed moves. CopyFrom locks only the destination; guarding
// the source against concurrent mutation during the copy is the caller's
// responsibility.
//
// Each operation is atomic with respect to other operations on the same
// instance, but sequences are not: reading Len and then calling Append is
// not an atomic pair.
//
// Destruction
//
// Destroy releases storage and retires the instance's lock domain. It is
// idempotent and nil-safe. Operations attempted after Destroy fail with a
// LOCK_FAILED error, mirroring lock acquisition on a destroyed lock.
//
// Failure semantics
//
// Fallible operations return errors from the closed taxonomy in core/error.
// Argument validation happens before the lock is taken; capacity and
// overflow checks happen under the lock but before any byte of content
// changes, so a failing operation never leaves the buffer partially
// modified. Growth allocates new storage, copies, and swaps, so an
// allocation failure leaves the original content, length, and capacity
// byte-identical. NOT_FOUND and EMPTY are ordinary results callers branch
// on, not exceptional conditions.
package buffer
