// Package errs defines the sentinel errors returned by tagbuf packages.
//
// All errors are wrapped with fmt.Errorf("%w: ...") at the call site to add
// context, so callers should match them with errors.Is.
package errs

import "errors"

// Tag and store errors.
var (
	// ErrTagTooLarge indicates a tag's serialized form exceeds the maximum
	// entry payload size (255 bytes).
	ErrTagTooLarge = errors.New("tag payload too large")

	// ErrTagAlreadyPresent indicates a tag of the same kind is already stored
	// on the packet.
	ErrTagAlreadyPresent = errors.New("tag kind already present")

	// ErrUnknownTagKind indicates a tag kind that has not been registered.
	ErrUnknownTagKind = errors.New("unknown tag kind")

	// ErrKindAlreadyRegistered indicates a duplicate tag kind registration.
	ErrKindAlreadyRegistered = errors.New("tag kind already registered")

	// ErrCorruptedStore indicates a serialized tag store whose entry framing
	// does not add up to its length.
	ErrCorruptedStore = errors.New("corrupted tag store")
)

// Trace blob errors.
var (
	// ErrInvalidHeaderSize indicates a trace header slice that is not exactly
	// section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid trace header size")

	// ErrInvalidMagicNumber indicates a trace header whose magic number does
	// not match any supported format version.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompression indicates an unsupported compression type in a
	// trace header or encoder option.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidBlobSize indicates a trace blob too small to contain the
	// sections its header declares.
	ErrInvalidBlobSize = errors.New("invalid trace blob size")

	// ErrInvalidIndexEntrySize indicates a flow index entry slice shorter
	// than section.FlowIndexEntrySize.
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")

	// ErrFlowNotStarted indicates a Record call before any StartFlow call.
	ErrFlowNotStarted = errors.New("flow not started")

	// ErrFlowAlreadyStarted indicates a StartFlow call for a flow already
	// recorded in this trace. A flow's records must be written contiguously.
	ErrFlowAlreadyStarted = errors.New("flow already started")

	// ErrRecordTooLarge indicates a tag store whose serialized form exceeds
	// the 16-bit record length field.
	ErrRecordTooLarge = errors.New("record too large")

	// ErrFlowNotFound indicates a lookup for a flow ID not present in the
	// trace index.
	ErrFlowNotFound = errors.New("flow not found")

	// ErrFlowCountExceeded indicates the encoder exceeded the maximum number
	// of flows a single trace blob can index.
	ErrFlowCountExceeded = errors.New("flow count exceeded")

	// ErrEncoderFinished indicates use of an encoder after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)
