// Package tagbuf provides zero-allocation serialization of per-packet
// metadata ("tags") for simulated network traffic.
//
// Tags are small, typed annotations — timestamps, sequence numbers, routing
// hints, signal measurements — that travel alongside a packet without being
// part of its wire payload. Every tag type declares its worst-case serialized
// size up front, so the hot path packs and unpacks tags through a
// fixed-capacity cursor over pre-allocated memory and never allocates.
//
// # Core Layers
//
//   - cursor: the fixed-window serialization primitive (little-endian
//     integers, IEEE 754 doubles, raw byte spans); panics on bounds misuse
//   - tag: the Tag interface, built-in tag types and the kind registry
//   - store: the per-packet tag container, a flat pool-backed buffer with a
//     validating error-returning API
//   - trace: archival of tag snapshots into compressed, flow-indexed blobs
//
// # Basic Usage
//
// Attaching and reading tags on a packet:
//
//	pkt := tagbuf.NewStore()
//	defer pkt.Release()
//
//	_ = pkt.Add(&tag.TimestampTag{Nanos: now})
//	_ = pkt.Add(&tag.FlowTag{FlowID: 1, Seq: seq})
//
//	var ts tag.TimestampTag
//	if pkt.Peek(&ts) {
//	    delay := recvNanos - ts.Nanos
//	    ...
//	}
//
// Archiving a run's tag snapshots:
//
//	enc, _ := tagbuf.NewTraceEncoder(startTime)
//	_ = enc.StartFlow("node0->node1")
//	_ = enc.Record(pktNanos, pkt)
//	blob, _ := enc.Finish()
//
//	dec, _ := tagbuf.NewTraceDecoder(blob)
//	for rec := range dec.All(tagbuf.FlowID("node0->node1")) {
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the store and
// trace packages, simplifying the most common use cases. For fine-grained
// control, use those packages directly.
package tagbuf

import (
	"time"

	"github.com/netmeta/tagbuf/format"
	"github.com/netmeta/tagbuf/internal/hash"
	"github.com/netmeta/tagbuf/store"
	"github.com/netmeta/tagbuf/trace"
)

// NewStore creates an empty per-packet tag container backed by a pooled
// buffer. Call Release on it when the packet is done.
func NewStore() *store.Store {
	return store.New()
}

// FlowID computes the 64-bit identifier of a flow name, as used by trace
// blob indexes.
func FlowID(name string) uint64 {
	return hash.ID(name)
}

// NewTraceEncoder creates a trace encoder with custom options.
//
// Parameters:
//   - startTime: start of the traced run, recorded in the blob header
//   - opts: optional configuration (see trace.Option)
//
// Returns:
//   - *trace.Encoder: the created encoder
//   - error: an error if an option is invalid
func NewTraceEncoder(startTime time.Time, opts ...trace.Option) (*trace.Encoder, error) {
	return trace.NewEncoder(startTime, opts...)
}

// NewArchiveTraceEncoder creates a trace encoder tuned for write-once
// archival: Zstandard payload compression, little-endian sections.
func NewArchiveTraceEncoder(startTime time.Time) (*trace.Encoder, error) {
	return trace.NewEncoder(startTime,
		trace.WithLittleEndian(),
		trace.WithCompression(format.CompressionZstd),
	)
}

// NewTraceDecoder parses a trace blob produced by a trace encoder.
func NewTraceDecoder(data []byte) (*trace.Decoder, error) {
	return trace.NewDecoder(data)
}
