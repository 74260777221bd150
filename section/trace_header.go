package section

import (
	"time"
	"unsafe"

	"github.com/netmeta/tagbuf/errs"
)

// TraceHeader is the fixed-size header at the start of a tag trace blob.
type TraceHeader struct {
	// StartTime is the start time of the trace, unix timestamp in microseconds.
	StartTime int64 // byte offset 4-11
	// FlowCount is the number of flows indexed in the blob.
	FlowCount uint32 // byte offset 12-15
	// RecordCount is the total number of records across all flows.
	RecordCount uint32 // byte offset 16-19
	// IndexOffset is the byte offset to the start of the flow index section.
	IndexOffset uint32 // byte offset 20-23
	// PayloadOffset is the byte offset to the start of the record payload
	// section, after the flow index.
	PayloadOffset uint32 // byte offset 24-27
	// PayloadLength is the byte length of the (possibly compressed) record
	// payload section.
	PayloadLength uint32 // byte offset 28-31

	// Flag is the packed field for format options and compression.
	Flag TraceFlag // byte offset 0-3
}

// NewTraceHeader creates a TraceHeader with the given start time. Counts,
// offsets and lengths are filled in when the encoder finishes.
func NewTraceHeader(startTime time.Time) *TraceHeader {
	return &TraceHeader{
		StartTime:   startTime.UnixMicro(),
		Flag:        NewTraceFlag(),
		IndexOffset: IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize if data is not exactly HeaderSize bytes, or a
// flag validation error.
func (h *TraceHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag bytes are always little-endian; they decide the endianness of
	// everything after them.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.Reserved = data[3]

	engine := h.Flag.GetEndianEngine()

	startTimeUint := engine.Uint64(data[4:12])
	h.StartTime = *(*int64)(unsafe.Pointer(&startTimeUint))

	h.FlowCount = engine.Uint32(data[12:16])
	h.RecordCount = engine.Uint32(data[16:20])
	h.IndexOffset = engine.Uint32(data[20:24])
	h.PayloadOffset = engine.Uint32(data[24:28])
	h.PayloadLength = engine.Uint32(data[28:32])

	return h.Flag.Validate()
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h *TraceHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = uint8(h.Flag.Options)
	b[1] = uint8(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.Reserved
	// Timestamps are stored bit-for-bit; the bitwise conversion avoids an
	// overflow warning on negative values.
	engine.PutUint64(b[4:12], *(*uint64)(unsafe.Pointer(&h.StartTime)))
	engine.PutUint32(b[12:16], h.FlowCount)
	engine.PutUint32(b[16:20], h.RecordCount)
	engine.PutUint32(b[20:24], h.IndexOffset)
	engine.PutUint32(b[24:28], h.PayloadOffset)
	engine.PutUint32(b[28:32], h.PayloadLength)

	return b
}

// StartTimeAsTime returns the start time as a time.Time value.
func (h *TraceHeader) StartTimeAsTime() time.Time {
	return time.UnixMicro(h.StartTime)
}

// ParseTraceHeader parses a TraceHeader from the front of a byte slice.
func ParseTraceHeader(data []byte) (TraceHeader, error) {
	if len(data) < HeaderSize {
		return TraceHeader{}, errs.ErrInvalidHeaderSize
	}

	h := TraceHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return TraceHeader{}, err
	}

	return h, nil
}
