package section

import (
	"github.com/netmeta/tagbuf/endian"
	"github.com/netmeta/tagbuf/errs"
)

// FlowIndexEntry records where one flow's records live in the trace payload.
// It is a fixed size of 16 bytes.
//
// A flow's records are stored contiguously, so a single (offset, count) pair
// locates all of them; record lengths are self-framing within the payload.
type FlowIndexEntry struct {
	// FlowID is the xxHash64 hash of the flow name string.
	//
	// Offset: 0, Size: 8 bytes
	FlowID uint64

	// Offset is the absolute byte offset of the flow's first record within
	// the uncompressed payload section.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Count is the number of records stored for this flow.
	//
	// Offset: 12, Size: 4 bytes
	Count uint32
}

// NewFlowIndexEntry creates an index entry for the given flow ID. Offset and
// count are filled in by the encoder.
func NewFlowIndexEntry(flowID uint64) FlowIndexEntry {
	return FlowIndexEntry{FlowID: flowID}
}

// Bytes returns the index entry as a 16-byte slice using the specified
// endian engine.
func (e *FlowIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [FlowIndexEntrySize]byte // stack allocation
	engine.PutUint64(b[0:8], e.FlowID)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint32(b[12:16], e.Count)

	return b[:]
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the next
// write position. This is the most efficient method when writing many entries
// sequentially.
func (e *FlowIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.FlowID)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Count)

	return offset + FlowIndexEntrySize
}

// ParseFlowIndexEntry parses a FlowIndexEntry from a byte slice.
//
// Returns ErrInvalidIndexEntrySize if data is shorter than
// FlowIndexEntrySize.
func ParseFlowIndexEntry(data []byte, engine endian.EndianEngine) (FlowIndexEntry, error) {
	if len(data) < FlowIndexEntrySize {
		return FlowIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return FlowIndexEntry{
		FlowID: engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Count:  engine.Uint32(data[12:16]),
	}, nil
}
