package trace

import (
	"fmt"
	"iter"
	"time"

	"github.com/netmeta/tagbuf/compress"
	"github.com/netmeta/tagbuf/endian"
	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/section"
	"github.com/netmeta/tagbuf/store"
)

// Record is one packet's tag snapshot within a flow.
type Record struct {
	// TimeNanos is the packet time in nanoseconds since the start of the run.
	TimeNanos uint64

	// Data is the packet's serialized tag store region. It aliases the
	// decoder's payload buffer and is valid as long as the decoder is.
	Data []byte
}

// Store reconstructs the record's tag store into a fresh pool-backed store.
// Call Release on the result when done.
func (r Record) Store() (*store.Store, error) {
	s := store.New()
	if err := s.FromBytes(r.Data); err != nil {
		s.Release()
		return nil, err
	}

	return s, nil
}

// Decoder parses a trace blob and iterates its records by flow.
type Decoder struct {
	header  section.TraceHeader
	engine  endian.EndianEngine
	index   map[uint64]section.FlowIndexEntry
	order   []uint64
	payload []byte // decompressed record payload
}

// NewDecoder parses the blob's header and flow index and decompresses the
// record payload.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseTraceHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()

	indexEnd := int(header.PayloadOffset)
	payloadEnd := indexEnd + int(header.PayloadLength)
	if indexEnd < section.HeaderSize || payloadEnd > len(data) {
		return nil, fmt.Errorf("%w: blob is %d bytes, header declares %d", errs.ErrInvalidBlobSize, len(data), payloadEnd)
	}
	if indexEnd-section.HeaderSize != int(header.FlowCount)*section.FlowIndexEntrySize {
		return nil, fmt.Errorf("%w: index section does not match flow count %d", errs.ErrInvalidBlobSize, header.FlowCount)
	}

	d := &Decoder{
		header: header,
		engine: engine,
		index:  make(map[uint64]section.FlowIndexEntry, header.FlowCount),
		order:  make([]uint64, 0, header.FlowCount),
	}

	for offset := section.HeaderSize; offset < indexEnd; offset += section.FlowIndexEntrySize {
		entry, err := section.ParseFlowIndexEntry(data[offset:offset+section.FlowIndexEntrySize], engine)
		if err != nil {
			return nil, err
		}
		d.index[entry.FlowID] = entry
		d.order = append(d.order, entry.FlowID)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[indexEnd:payloadEnd])
	if err != nil {
		return nil, fmt.Errorf("decompress trace payload: %w", err)
	}
	d.payload = payload

	return d, nil
}

// StartTime returns the start time recorded in the blob header.
func (d *Decoder) StartTime() time.Time {
	return d.header.StartTimeAsTime()
}

// FlowCount returns the number of flows indexed in the blob.
func (d *Decoder) FlowCount() int {
	return len(d.order)
}

// RecordCount returns the total number of records across all flows.
func (d *Decoder) RecordCount() int {
	return int(d.header.RecordCount)
}

// FlowIDs returns the flow IDs in the order they were recorded.
func (d *Decoder) FlowIDs() []uint64 {
	ids := make([]uint64, len(d.order))
	copy(ids, d.order)

	return ids
}

// HasFlow reports whether the blob indexes the given flow ID.
func (d *Decoder) HasFlow(flowID uint64) bool {
	_, ok := d.index[flowID]
	return ok
}

// All returns an iterator over the records of the given flow, in recording
// order. The iterator yields nothing if the flow is unknown or its records
// are malformed.
func (d *Decoder) All(flowID uint64) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		entry, ok := d.index[flowID]
		if !ok {
			return
		}

		offset := int(entry.Offset)
		for range entry.Count {
			rec, next, ok := d.recordAt(offset)
			if !ok {
				return
			}
			if !yield(rec) {
				return
			}
			offset = next
		}
	}
}

// Records collects all records of the given flow into a slice.
//
// Returns ErrFlowNotFound for an unknown flow ID, or ErrInvalidBlobSize if a
// record overruns the payload.
func (d *Decoder) Records(flowID uint64) ([]Record, error) {
	entry, ok := d.index[flowID]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%016x", errs.ErrFlowNotFound, flowID)
	}

	records := make([]Record, 0, entry.Count)
	offset := int(entry.Offset)
	for range entry.Count {
		rec, next, ok := d.recordAt(offset)
		if !ok {
			return nil, fmt.Errorf("%w: record at payload offset %d overruns payload", errs.ErrInvalidBlobSize, offset)
		}
		records = append(records, rec)
		offset = next
	}

	return records, nil
}

// recordAt parses the record at the given payload offset and returns it with
// the offset of the next record.
func (d *Decoder) recordAt(offset int) (Record, int, bool) {
	if offset+section.RecordHeaderSize > len(d.payload) {
		return Record{}, 0, false
	}

	timeNanos := d.engine.Uint64(d.payload[offset : offset+8])
	size := int(d.engine.Uint16(d.payload[offset+8 : offset+10]))

	start := offset + section.RecordHeaderSize
	if start+size > len(d.payload) {
		return Record{}, 0, false
	}

	return Record{
		TimeNanos: timeNanos,
		Data:      d.payload[start : start+size],
	}, start + size, true
}
