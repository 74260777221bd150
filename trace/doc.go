// Package trace encodes and decodes tag trace blobs.
//
// A trace blob archives the tag stores observed on packets over a simulation
// run, grouped by flow, for offline analysis. The blob layout is defined in
// the section package: a fixed 32-byte header, a fixed-size flow index keyed
// by the xxHash64 of each flow name, and a record payload that is optionally
// compressed as a single unit.
//
// # Encoding
//
//	enc, err := trace.NewEncoder(time.Now(), trace.WithCompression(format.CompressionZstd))
//	if err != nil { ... }
//	if err := enc.StartFlow("node0->node1"); err != nil { ... }
//	for _, pkt := range packets {
//	    if err := enc.Record(pkt.SendNanos, pkt.Tags); err != nil { ... }
//	}
//	blob, err := enc.Finish()
//
// # Decoding
//
//	dec, err := trace.NewDecoder(blob)
//	if err != nil { ... }
//	for rec := range dec.All(tag.ID("node0->node1")) {
//	    st, err := rec.Store()
//	    ...
//	}
//
// Encoders and decoders are not safe for concurrent use.
package trace
