package section

// Bit layout of the header Options field.
const (
	ReservedMask    = 0x0001 // Mask for reserved bit (bit 0), must be zero
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicTraceV1Opt is the version 1 magic number for the tag trace blob
	// format (bits 4-15 of the Options field).
	MagicTraceV1Opt = 0xEC10
)

// Offsets and section sizes in the trace blob.
const (
	HeaderSize         = 32         // fixed header size in bytes
	FlowIndexEntrySize = 16         // fixed index entry size in bytes
	IndexOffsetOffset  = HeaderSize // byte offset where the flow index starts

	// RecordHeaderSize is the per-record framing in the payload:
	// 8-byte timestamp + 2-byte store length.
	RecordHeaderSize = 10
)
