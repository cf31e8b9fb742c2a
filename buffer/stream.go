// File: stream.go
// Title: Stream I/O Operations
// Description: Implements the line- and word-oriented stream reads that load
//              buffer content from any byte-oriented reader, plus the
//              free-standing growable dynamic read. Single reads are bounded
//              by ChunkSize; longer lines are truncated, which is a known
//              limitation of the bounded read contract.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with stream reads

package buffer

import (
	"bufio"
	"io"

	dserrors "github.com/msto63/dynstr/core/errors"
	"github.com/msto63/dynstr/utils/bytex"
)

// byteScanner adapts any reader to single-byte reads with unread support.
// Callers performing repeated reads should pass a *bufio.Reader themselves
// so that bytes buffered between calls are not lost.
func byteScanner(r io.Reader) io.ByteScanner {
	if bs, ok := r.(io.ByteScanner); ok {
		return bs
	}
	return bufio.NewReader(r)
}

// readLineBounded reads up to max content bytes from br, stopping at (and
// consuming, without returning) a newline. It reports end-of-stream through
// eof; a line longer than max is truncated, leaving the rest in the stream.
func readLineBounded(br io.ByteScanner, max int) (line []byte, eof bool, err error) {
	for len(line) < max {
		c, readErr := br.ReadByte()
		if readErr == io.EOF {
			return line, true, nil
		}
		if readErr != nil {
			return line, false, readErr
		}
		if c == '\n' {
			return line, false, nil
		}
		line = append(line, c)
	}
	return line, false, nil
}

// checkWritable verifies the buffer accepts mutation before any stream bytes
// are consumed, so a rejected read does not silently discard input. The
// mutating call re-checks under its own lock.
func (b *Buffer) checkWritable(op string) error {
	if err := b.lockLive(op); err != nil {
		return err
	}
	defer b.mu.Unlock()
	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, op)
	}
	return nil
}

// ReadLine reads up to one line from r and replaces the buffer content with
// it, stripping the trailing newline. A single read is bounded by ChunkSize;
// lines longer than ChunkSize-1 bytes are truncated to ChunkSize-1 bytes and
// the remainder stays in the stream. End-of-stream with nothing read reports
// Empty; any other read failure reports a stream error and leaves the buffer
// unchanged.
func (b *Buffer) ReadLine(r io.Reader) error {
	if b == nil || r == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "read_line")
	}
	if err := b.checkWritable("read_line"); err != nil {
		return err
	}

	line, eof, readErr := readLineBounded(byteScanner(r), ChunkSize-1)
	if readErr != nil {
		return dserrors.Stream(dserrors.ModuleBuffer, "read_line", readErr)
	}
	if eof && len(line) == 0 {
		return dserrors.Empty(dserrors.ModuleBuffer, "read_line")
	}

	return b.Set(string(line))
}

// AppendLine reads up to one line from r, strips the trailing newline, and
// appends it verbatim to the existing content. Bounds and error behavior
// match ReadLine.
func (b *Buffer) AppendLine(r io.Reader) error {
	if b == nil || r == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "append_line")
	}
	if err := b.checkWritable("append_line"); err != nil {
		return err
	}

	line, eof, readErr := readLineBounded(byteScanner(r), ChunkSize-1)
	if readErr != nil {
		return dserrors.Stream(dserrors.ModuleBuffer, "append_line", readErr)
	}
	if eof && len(line) == 0 {
		return dserrors.Empty(dserrors.ModuleBuffer, "append_line")
	}

	return b.Append(string(line))
}

// ReadWord reads one whitespace-delimited token from r and appends it to the
// existing content, inserting a single separating space when the buffer is
// not empty. A token is bounded by ChunkSize-1 bytes. End-of-stream with no
// token reports Empty; other failures report a stream error.
func (b *Buffer) ReadWord(r io.Reader) error {
	if b == nil || r == nil {
		return dserrors.NilArgument(dserrors.ModuleBuffer, "read_word")
	}
	if err := b.checkWritable("read_word"); err != nil {
		return err
	}

	br := byteScanner(r)

	// Skip leading whitespace.
	var c byte
	for {
		var readErr error
		c, readErr = br.ReadByte()
		if readErr == io.EOF {
			return dserrors.Empty(dserrors.ModuleBuffer, "read_word")
		}
		if readErr != nil {
			return dserrors.Stream(dserrors.ModuleBuffer, "read_word", readErr)
		}
		if !bytex.IsSpace(c) {
			break
		}
	}

	word := []byte{c}
	for len(word) < ChunkSize-1 {
		c, readErr := br.ReadByte()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return dserrors.Stream(dserrors.ModuleBuffer, "read_word", readErr)
		}
		if bytex.IsSpace(c) {
			break
		}
		word = append(word, c)
	}

	if err := b.lockLive("read_word"); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.flags&flagReadOnly != 0 {
		return dserrors.ReadOnly(dserrors.ModuleBuffer, "read_word")
	}

	// Separator and token go through one append so the capacity check covers
	// the combined length; a rejected append leaves the buffer untouched.
	payload := string(word)
	if b.length > 0 {
		payload = " " + payload
	}
	return b.appendLocked("read_word", payload)
}

// ReadDynamic reads from r in growable chunks until a newline is consumed or
// maxSize bytes have been read, and returns the bytes as an owned string.
// The newline is not included; when the content stops exactly at maxSize, a
// newline sitting on the boundary is consumed and discarded as well, so the
// next read starts on the following line. End-of-stream with nothing read
// reports Empty. The result is a plain owned value, not a Buffer.
func ReadDynamic(r io.Reader, maxSize int) (string, error) {
	if r == nil {
		return "", dserrors.NilArgument(dserrors.ModuleStream, "read_dynamic")
	}
	if maxSize <= 0 || maxSize > MaxStringSize {
		return "", dserrors.InvalidArgument(dserrors.ModuleStream, "read_dynamic", maxSize, "0 < maxSize <= MaxStringSize")
	}

	br := byteScanner(r)
	var out []byte

	for len(out) < maxSize {
		c, readErr := br.ReadByte()
		if readErr == io.EOF {
			if len(out) == 0 {
				return "", dserrors.Empty(dserrors.ModuleStream, "read_dynamic")
			}
			return string(out), nil
		}
		if readErr != nil {
			return "", dserrors.Stream(dserrors.ModuleStream, "read_dynamic", readErr)
		}
		if c == '\n' {
			return string(out), nil
		}
		out = append(out, c)
	}

	// Truncated exactly at maxSize: a newline on the boundary is discarded
	// so the stream position ends up at the start of the next line.
	c, readErr := br.ReadByte()
	if readErr == nil && c != '\n' {
		// Not a newline; leave it for the next read.
		_ = br.UnreadByte()
	}
	return string(out), nil
}
