// Package store provides the per-packet tag container.
//
// A Store keeps every tag attached to a packet in one flat, pool-backed byte
// buffer. Each entry is framed as [kind:u8][size:u8][payload:size], where the
// payload is the tag's cursor-serialized form fitted to its actual used
// length. Keeping the container serialized at all times makes packet copies a
// single bulk memory copy and keeps the per-packet footprint at two bytes of
// overhead per tag.
//
// Unlike the cursor, which panics on misuse, the store is a validation
// boundary: it returns errors for conditions that depend on runtime data
// (duplicate kinds, oversized payloads, corrupted input), reserving panics for
// the pre-verified capacity arithmetic underneath.
//
// A Store is not safe for concurrent use; each packet owns its store.
package store

import (
	"fmt"

	"github.com/netmeta/tagbuf/cursor"
	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/internal/pool"
	"github.com/netmeta/tagbuf/tag"
)

// MaxEntryPayload is the largest serialized tag payload a store entry can
// frame, bounded by the one-byte size field.
const MaxEntryPayload = 255

// entryHeaderSize is the per-entry framing overhead: kind byte + size byte.
const entryHeaderSize = 2

// Store is a flat container of serialized tags attached to one packet.
type Store struct {
	buf   *pool.ByteBuffer
	count int
}

// New creates an empty store backed by a pooled buffer.
//
// Call Release when the packet is done to return the buffer to the pool.
func New() *Store {
	return &Store{buf: pool.GetStoreBuffer()}
}

// Release returns the store's buffer to the pool. The store must not be used
// afterwards.
func (s *Store) Release() {
	pool.PutStoreBuffer(s.buf)
	s.buf = nil
	s.count = 0
}

// Len returns the number of tags in the store.
func (s *Store) Len() int {
	return s.count
}

// Size returns the serialized size of the store in bytes, framing included.
func (s *Store) Size() int {
	return s.buf.Len()
}

// Bytes returns the store's serialized region. The returned slice is valid
// until the next mutating call and must not be modified by the caller.
func (s *Store) Bytes() []byte {
	return s.buf.Bytes()
}

// Reset empties the store, retaining the buffer for reuse.
func (s *Store) Reset() {
	s.buf.Reset()
	s.count = 0
}

// Add serializes t and appends it as a new entry.
//
// The entry's window is reserved at the tag's declared worst-case size; after
// the serialize pass the window is trimmed to the bytes actually produced and
// the entry is framed at that length.
//
// Returns ErrTagTooLarge if the tag's declared size exceeds MaxEntryPayload,
// or ErrTagAlreadyPresent if an entry of the same kind exists.
func (s *Store) Add(t tag.Tag) error {
	maxSize := t.SerializedSize()
	if maxSize > MaxEntryPayload {
		return fmt.Errorf("%w: %q declares %d bytes, max %d", errs.ErrTagTooLarge, tag.NameOf(t.Kind()), maxSize, MaxEntryPayload)
	}
	if s.Has(t.Kind()) {
		return fmt.Errorf("%w: %q", errs.ErrTagAlreadyPresent, tag.NameOf(t.Kind()))
	}

	// Reserve the worst case, serialize through a cursor over the reserved
	// span, then fit the entry to the bytes the tag actually produced.
	start := s.buf.Len()
	s.buf.ExtendOrGrow(entryHeaderSize + maxSize)
	span := s.buf.Slice(start+entryHeaderSize, start+entryHeaderSize+maxSize)

	c := cursor.New(span)
	t.Serialize(&c)

	unused := c.Remaining()
	if unused > 0 {
		c.TrimAtEnd(unused)
	}
	used := maxSize - unused

	b := s.buf.Bytes()
	b[start] = uint8(t.Kind())
	b[start+1] = uint8(used)
	s.buf.SetLength(start + entryHeaderSize + used)

	s.count++

	return nil
}

// Peek finds the entry for t's kind and deserializes it into t.
//
// Returns false if no entry of that kind exists.
func (s *Store) Peek(t tag.Tag) bool {
	payload, ok := s.find(t.Kind())
	if !ok {
		return false
	}

	c := cursor.New(payload)
	t.Deserialize(&c)

	return true
}

// Has reports whether an entry of the given kind exists.
func (s *Store) Has(kind tag.Kind) bool {
	_, ok := s.find(kind)
	return ok
}

// Remove deletes the entry of the given kind, if present, by shifting the
// following entries down. Returns whether an entry was removed.
func (s *Store) Remove(kind tag.Kind) bool {
	b := s.buf.Bytes()
	offset := 0
	for offset < len(b) {
		size := int(b[offset+1])
		next := offset + entryHeaderSize + size
		if tag.Kind(b[offset]) == kind {
			copy(b[offset:], b[next:])
			s.buf.SetLength(len(b) - (next - offset))
			s.count--

			return true
		}
		offset = next
	}

	return false
}

// Replace removes any existing entry of t's kind and appends t's current
// serialized form. Adds the tag if absent.
func (s *Store) Replace(t tag.Tag) error {
	s.Remove(t.Kind())
	return s.Add(t)
}

// Kinds returns the kinds stored, in entry order.
func (s *Store) Kinds() []tag.Kind {
	kinds := make([]tag.Kind, 0, s.count)

	b := s.buf.Bytes()
	offset := 0
	for offset < len(b) {
		kinds = append(kinds, tag.Kind(b[offset]))
		offset += entryHeaderSize + int(b[offset+1])
	}

	return kinds
}

// CopyTo bulk-copies this store's entire serialized region into dst as a
// single cursor copy. Entries already in dst are kept; the caller is
// responsible for kind uniqueness across the two stores.
func (s *Store) CopyTo(dst *Store) {
	size := s.buf.Len()
	if size == 0 {
		return
	}

	start := dst.buf.Len()
	dst.buf.ExtendOrGrow(size)

	c := cursor.New(dst.buf.Slice(start, start+size))
	c.CopyFrom(cursor.New(s.buf.Bytes()))

	dst.count += s.count
}

// Clone returns an independent copy of the store backed by its own pooled
// buffer.
func (s *Store) Clone() *Store {
	dst := New()
	s.CopyTo(dst)

	return dst
}

// FromBytes replaces the store's contents with a serialized region produced
// by Bytes. The input framing is validated entry by entry before it is
// copied in.
//
// Returns ErrCorruptedStore if the entry sizes do not add up to len(data).
func (s *Store) FromBytes(data []byte) error {
	count := 0
	offset := 0
	for offset < len(data) {
		if offset+entryHeaderSize > len(data) {
			return fmt.Errorf("%w: truncated entry header at offset %d", errs.ErrCorruptedStore, offset)
		}

		size := int(data[offset+1])
		offset += entryHeaderSize + size
		count++
	}
	if offset != len(data) {
		return fmt.Errorf("%w: entry framing overruns region by %d bytes", errs.ErrCorruptedStore, offset-len(data))
	}

	s.buf.Reset()
	s.buf.MustWrite(data)
	s.count = count

	return nil
}

// find returns the payload span of the entry with the given kind.
func (s *Store) find(kind tag.Kind) ([]byte, bool) {
	b := s.buf.Bytes()
	offset := 0
	for offset < len(b) {
		size := int(b[offset+1])
		if tag.Kind(b[offset]) == kind {
			return b[offset+entryHeaderSize : offset+entryHeaderSize+size], true
		}
		offset += entryHeaderSize + size
	}

	return nil, false
}
