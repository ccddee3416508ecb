// Package dstr provides a growable byte string tuned for the short operator
// sequences that make up PDF content streams. Small payloads live in an
// inline array; the first overflow moves the contents to a heap buffer that
// grows in 4 KiB steps.
package dstr

import "fmt"

const (
	inlineSize = 128
	growChunk  = 4096
)

// Buffer is a dynamic byte string. The zero value is ready to use.
type Buffer struct {
	inline [inlineSize]byte
	heap   []byte
	used   int
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int { return b.used }

// Data returns the current contents. The slice stays valid until the next
// append or Reset.
func (b *Buffer) Data() []byte {
	if b.heap != nil {
		return b.heap[:b.used]
	}
	return b.inline[:b.used]
}

// String returns the contents as a string.
func (b *Buffer) String() string { return string(b.Data()) }

func (b *Buffer) ensure(n int) {
	need := b.used + n
	if b.heap == nil {
		if need <= inlineSize {
			return
		}
		heap := make([]byte, need+growChunk)
		copy(heap, b.inline[:b.used])
		b.heap = heap
		return
	}
	if need <= len(b.heap) {
		return
	}
	heap := make([]byte, need+growChunk)
	copy(heap, b.heap[:b.used])
	b.heap = heap
}

// Append adds raw bytes to the buffer.
func (b *Buffer) Append(p []byte) {
	b.ensure(len(p))
	if b.heap != nil {
		copy(b.heap[b.used:], p)
	} else {
		copy(b.inline[b.used:], p)
	}
	b.used += len(p)
}

// AppendString adds a string to the buffer.
func (b *Buffer) AppendString(s string) {
	b.ensure(len(s))
	if b.heap != nil {
		copy(b.heap[b.used:], s)
	} else {
		copy(b.inline[b.used:], s)
	}
	b.used += len(s)
}

// AppendByte adds a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) {
	b.ensure(1)
	if b.heap != nil {
		b.heap[b.used] = c
	} else {
		b.inline[b.used] = c
	}
	b.used++
}

// Printf formats per fmt.Sprintf and appends the result.
func (b *Buffer) Printf(format string, args ...any) {
	b.AppendString(fmt.Sprintf(format, args...))
}

// TrimLineEndings drops any trailing CR and LF bytes. Content streams must
// not carry trailing newlines because the stream dictionary's /Length is
// computed from the trimmed body.
func (b *Buffer) TrimLineEndings() {
	d := b.Data()
	for b.used > 0 {
		c := d[b.used-1]
		if c != '\r' && c != '\n' {
			break
		}
		b.used--
	}
}

// Reset discards the contents but keeps any heap storage for reuse.
func (b *Buffer) Reset() { b.used = 0 }
