package scratch

import (
	"strconv"
	"unsafe"
)

// Buffer is a reusable byte buffer for text built every frame.
// Reset it once per frame; strings taken from it with the View methods
// are only valid until the next Reset.
type Buffer struct {
	buf   []byte
	marks []int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.marks = b.marks[:0]
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// ----- chainable appends -----

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F appends a float with the shortest representation that round-trips.
// Example: F(12) -> "12", F(12.5) -> "12.5"
func (b *Buffer) F(v float32) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, float64(v), 'f', -1, 32)
	return b
}

// Line terminates the current line.
func (b *Buffer) Line() *Buffer {
	b.marks = append(b.marks, len(b.buf))
	return b
}

// LineView returns line i without copying.
func (b *Buffer) LineView(i int) string {
	start := 0
	if i > 0 {
		start = b.marks[i-1]
	}
	return view(b.buf[start:b.marks[i]])
}

func (b *Buffer) LineCount() int { return len(b.marks) }

// String returns a copy of the whole buffer.
func (b *Buffer) String() string { return string(b.buf) }

func view(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	return unsafe.String(&p[0], len(p))
}
