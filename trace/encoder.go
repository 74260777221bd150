package trace

import (
	"fmt"
	"math"
	"time"

	"github.com/netmeta/tagbuf/compress"
	"github.com/netmeta/tagbuf/endian"
	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/format"
	"github.com/netmeta/tagbuf/internal/hash"
	"github.com/netmeta/tagbuf/internal/options"
	"github.com/netmeta/tagbuf/internal/pool"
	"github.com/netmeta/tagbuf/section"
	"github.com/netmeta/tagbuf/store"
)

// MaxFlowCount is the maximum number of flows a single trace blob can index.
const MaxFlowCount = 65535

// Encoder accumulates per-packet tag records grouped by flow and finalizes
// them into a trace blob.
//
// Records of one flow must be written contiguously: call StartFlow, then
// Record for each packet of that flow, then StartFlow for the next flow.
// Returning to an earlier flow is an error.
type Encoder struct {
	header  *section.TraceHeader
	engine  endian.EndianEngine
	payload *pool.ByteBuffer

	flows   []section.FlowIndexEntry
	started map[uint64]struct{}

	recordCount int
	finished    bool
}

// Option is a functional option for configuring an Encoder.
type Option = options.Option[*Encoder]

// WithCompression sets the payload compression type.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c)
		}
		e.header.Flag.SetCompression(c)

		return nil
	})
}

// WithLittleEndian sets little-endian section encoding (the default).
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian section encoding.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}

// NewEncoder creates a trace encoder. startTime is the start of the traced
// run and is recorded in the blob header.
func NewEncoder(startTime time.Time, opts ...Option) (*Encoder, error) {
	e := &Encoder{
		header:  section.NewTraceHeader(startTime),
		payload: pool.GetTraceBuffer(),
		started: make(map[uint64]struct{}),
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutTraceBuffer(e.payload)
		return nil, err
	}

	e.engine = e.header.Flag.GetEndianEngine()

	return e, nil
}

// StartFlow opens a new flow named name. Subsequent Record calls append to
// this flow until the next StartFlow.
//
// Returns ErrFlowAlreadyStarted if the flow was recorded earlier in this
// trace, or ErrFlowCountExceeded past MaxFlowCount flows.
func (e *Encoder) StartFlow(name string) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	flowID := hash.ID(name)
	if _, ok := e.started[flowID]; ok {
		return fmt.Errorf("%w: %q", errs.ErrFlowAlreadyStarted, name)
	}
	if len(e.flows) >= MaxFlowCount {
		return fmt.Errorf("%w: max %d", errs.ErrFlowCountExceeded, MaxFlowCount)
	}

	e.started[flowID] = struct{}{}
	entry := section.NewFlowIndexEntry(flowID)
	entry.Offset = uint32(e.payload.Len()) //nolint: gosec
	e.flows = append(e.flows, entry)

	return nil
}

// Record appends one packet's tag store to the current flow, stamped with
// the packet's time in nanoseconds since the start of the run.
//
// The store's serialized region is copied; the caller may reuse or release
// the store immediately.
func (e *Encoder) Record(timeNanos uint64, s *store.Store) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(e.flows) == 0 {
		return errs.ErrFlowNotStarted
	}

	data := s.Bytes()
	if len(data) > math.MaxUint16 {
		return fmt.Errorf("%w: store is %d bytes, max %d", errs.ErrRecordTooLarge, len(data), math.MaxUint16)
	}

	start := e.payload.Len()
	e.payload.ExtendOrGrow(section.RecordHeaderSize + len(data))

	b := e.payload.Bytes()
	e.engine.PutUint64(b[start:start+8], timeNanos)
	e.engine.PutUint16(b[start+8:start+10], uint16(len(data))) //nolint: gosec
	copy(b[start+section.RecordHeaderSize:], data)

	e.flows[len(e.flows)-1].Count++
	e.recordCount++

	return nil
}

// Finish compresses the payload, assembles header, flow index and payload
// into a blob, and returns it. The encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutTraceBuffer(e.payload)
		e.payload = nil
	}()

	codec, err := compress.GetCodec(e.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(e.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress trace payload: %w", err)
	}

	indexSize := len(e.flows) * section.FlowIndexEntrySize

	e.header.FlowCount = uint32(len(e.flows))                       //nolint: gosec
	e.header.RecordCount = uint32(e.recordCount)                    //nolint: gosec
	e.header.PayloadOffset = uint32(section.HeaderSize + indexSize) //nolint: gosec
	e.header.PayloadLength = uint32(len(compressed))                //nolint: gosec

	blob := make([]byte, 0, section.HeaderSize+indexSize+len(compressed))
	blob = append(blob, e.header.Bytes()...)

	index := make([]byte, indexSize)
	offset := 0
	for i := range e.flows {
		offset = e.flows[i].WriteToSlice(index, offset, e.engine)
	}
	blob = append(blob, index...)
	blob = append(blob, compressed...)

	return blob, nil
}
