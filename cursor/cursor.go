// Package cursor provides a fixed-capacity serialization cursor over a
// caller-supplied byte window.
//
// A Cursor is a lightweight view (position + end) over a pre-allocated byte
// region. It never owns, grows, or frees its backing storage; the caller sizes
// the window up front, typically from a tag type's known maximum serialized
// size, and the cursor packs or unpacks primitives with zero allocation.
//
// # Encoding
//
// Multi-byte integers are encoded little-endian, least-significant byte first.
// Doubles are encoded as their canonical IEEE 754 bit pattern through the same
// little-endian integer path, so the layout is byte-identical on every
// platform. The encoded stream is a flat concatenation with no length
// prefixes, no type tags and no versioning: producer and consumer must agree
// on the exact read/write call sequence out of band.
//
// # Failure Model
//
// Bounds violations are programming errors, not runtime conditions: the window
// size is a static property of the calling code. Every violation panics rather
// than returning an error, which keeps the per-byte hot path free of error
// plumbing. Layers above the cursor (the tag store) convert misuse into
// returned errors where validation is appropriate.
//
// # Thread Safety
//
// A Cursor is not safe for concurrent use. Each encode or decode pass
// constructs its own cursor over the region it needs.
package cursor

import "math"

// Cursor is a mutable window over a byte region. The zero value is an empty
// window; any read or write on it panics.
//
// Cursor is a small value type. Copying one yields an independent snapshot of
// the position state over the same shared backing bytes, which is what
// CopyFrom relies on.
type Cursor struct {
	buf []byte
	pos int // offset of the next byte to read or write
	end int // one past the last valid byte; only TrimAtEnd moves it, inward
}

// New returns a cursor over the whole of buf.
//
// The cursor is valid only as long as buf is; the caller retains ownership of
// the backing storage.
func New(buf []byte) Cursor {
	return Cursor{buf: buf, end: len(buf)}
}

// Remaining returns the number of bytes still available between the cursor
// position and the end of the window.
func (c *Cursor) Remaining() int {
	return c.end - c.pos
}

// WriteU8 writes a single byte and advances the cursor by one.
// Panics if the window is exhausted.
func (c *Cursor) WriteU8(v uint8) {
	if c.pos+1 > c.end {
		panic("cursor: write past end of window")
	}
	c.buf[c.pos] = v
	c.pos++
}

// WriteU16 writes v little-endian, least-significant byte first.
func (c *Cursor) WriteU16(v uint16) {
	c.WriteU8(uint8(v))
	c.WriteU8(uint8(v >> 8))
}

// WriteU32 writes v little-endian, least-significant byte first.
func (c *Cursor) WriteU32(v uint32) {
	c.WriteU8(uint8(v))
	c.WriteU8(uint8(v >> 8))
	c.WriteU8(uint8(v >> 16))
	c.WriteU8(uint8(v >> 24))
}

// WriteU64 writes v little-endian, least-significant byte first.
func (c *Cursor) WriteU64(v uint64) {
	c.WriteU8(uint8(v))
	c.WriteU8(uint8(v >> 8))
	c.WriteU8(uint8(v >> 16))
	c.WriteU8(uint8(v >> 24))
	c.WriteU8(uint8(v >> 32))
	c.WriteU8(uint8(v >> 40))
	c.WriteU8(uint8(v >> 48))
	c.WriteU8(uint8(v >> 56))
}

// WriteDouble writes v as its IEEE 754 bit pattern in little-endian byte
// order. The round-trip through ReadDouble is bit-exact, NaN payloads
// included.
func (c *Cursor) WriteDouble(v float64) {
	c.WriteU64(math.Float64bits(v))
}

// Write writes all of b verbatim and advances the cursor by len(b).
// Panics if b does not fit in the remaining window.
func (c *Cursor) Write(b []byte) {
	if c.pos+len(b) > c.end {
		panic("cursor: write past end of window")
	}
	copy(c.buf[c.pos:c.end], b)
	c.pos += len(b)
}

// ReadU8 reads a single byte and advances the cursor by one.
// Panics if the window is exhausted.
func (c *Cursor) ReadU8() uint8 {
	if c.pos+1 > c.end {
		panic("cursor: read past end of window")
	}
	v := c.buf[c.pos]
	c.pos++

	return v
}

// ReadU16 reads a little-endian uint16; the byte read first becomes the
// low-order byte of the result.
func (c *Cursor) ReadU16() uint16 {
	b0 := uint16(c.ReadU8())
	b1 := uint16(c.ReadU8())

	return b1<<8 | b0
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() uint32 {
	b0 := uint32(c.ReadU8())
	b1 := uint32(c.ReadU8())
	b2 := uint32(c.ReadU8())
	b3 := uint32(c.ReadU8())

	return b3<<24 | b2<<16 | b1<<8 | b0
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() uint64 {
	var v uint64
	for shift := 0; shift < 64; shift += 8 {
		v |= uint64(c.ReadU8()) << shift
	}

	return v
}

// ReadDouble reads 8 bytes written by WriteDouble and reconstructs the
// float64 bit-exactly.
func (c *Cursor) ReadDouble() float64 {
	return math.Float64frombits(c.ReadU64())
}

// Read fills all of b from the cursor position in a single copy and advances
// the cursor by len(b). Panics if fewer than len(b) bytes remain.
func (c *Cursor) Read(b []byte) {
	if c.pos+len(b) > c.end {
		panic("cursor: read past end of window")
	}
	copy(b, c.buf[c.pos:c.end])
	c.pos += len(b)
}

// TrimAtEnd shrinks the window by moving its end backward by trim bytes.
// Used to fit a tag's window to its actual serialized length rather than its
// maximum allocated length. Panics if the trim would cut into bytes already
// consumed or produced at the current position.
func (c *Cursor) TrimAtEnd(trim int) {
	if trim < 0 || c.pos > c.end-trim {
		panic("cursor: trim past current position")
	}
	c.end -= trim
}

// CopyFrom bulk-copies the entire remaining span of src — everything between
// src's position and its end — into this cursor at its current position, and
// advances this cursor by the copied length.
//
// src is a value snapshot: the caller's source cursor is not mutated. Panics
// if the source span exceeds this cursor's remaining capacity.
func (c *Cursor) CopyFrom(src Cursor) {
	size := src.end - src.pos
	if size > c.end-c.pos {
		panic("cursor: copy exceeds remaining capacity")
	}
	copy(c.buf[c.pos:c.end], src.buf[src.pos:src.end])
	c.pos += size
}
