package compress

// ZstdCompressor provides Zstandard compression for trace payloads.
//
// Zstd gives the best compression ratio of the supported codecs and is the
// right choice for traces written once and archived: long simulation runs
// produce record payloads that compress 5:1 or better.
//
// The implementation is selected at build time: the cgo binding
// (valyala/gozstd) when cgo is enabled, a pure-Go implementation
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
