// Package compress provides compression and decompression codecs for tag
// trace payloads.
//
// Compression is applied to the whole record payload section of a trace blob
// after encoding. Tag records are highly repetitive — the same few kinds with
// near-monotonic timestamps and sequence numbers — so even fast algorithms
// achieve good ratios.
//
// # Supported Algorithms
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is enabled, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames, so blobs are interchangeable between the two.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
