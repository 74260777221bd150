package compress

// NoOpCompressor bypasses data without compression.
//
// Useful when the payload is tiny, when debugging blob layouts, or as a
// baseline for benchmarking the other codecs.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is, without processing or copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is, without processing or copying.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they use the returned slice.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
