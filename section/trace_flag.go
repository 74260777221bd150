package section

import (
	"fmt"

	"github.com/netmeta/tagbuf/endian"
	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/format"
)

// TraceFlag is the packed flag field at the front of a trace header.
type TraceFlag struct {
	// Options is a packed field for format options.
	// Bit 0 is reserved and must be zero.
	// Bit 1 is the endianness flag: 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be zero.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xEC10 (0b1110_1100_0001_0000): tag trace blob format v1
	Options uint16

	// CompressionType is the compression applied to the record payload.
	CompressionType uint8

	// Reserved pads the flag to 4 bytes and must be zero.
	Reserved uint8
}

// NewTraceFlag creates a TraceFlag with the v1 magic, little-endian byte
// order and no compression.
func NewTraceFlag() TraceFlag {
	flag := TraceFlag{
		Options:         MagicTraceV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the blob sections are little-endian.
func (f TraceFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob sections are big-endian.
func (f TraceFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *TraceFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *TraceFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f TraceFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number bits of the Options field.
func (f TraceFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f TraceFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *TraceFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number and compression type.
func (f TraceFlag) Validate() error {
	if f.GetMagicNumber() != MagicTraceV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}
	if !f.Compression().Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
