package section

import (
	"testing"
	"time"

	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceHeader(t *testing.T) {
	start := time.Unix(1700000000, 123000)
	h := NewTraceHeader(start)

	assert.Equal(t, start.UnixMicro(), h.StartTime)
	assert.Equal(t, uint32(IndexOffsetOffset), h.IndexOffset)
	assert.Equal(t, uint16(MagicTraceV1Opt), h.Flag.GetMagicNumber())
	assert.True(t, h.Flag.IsLittleEndian())
	assert.Equal(t, format.CompressionNone, h.Flag.Compression())
}

func TestTraceHeader_RoundTrip(t *testing.T) {
	h := NewTraceHeader(time.Unix(1700000000, 0))
	h.FlowCount = 3
	h.RecordCount = 150
	h.PayloadOffset = HeaderSize + 3*FlowIndexEntrySize
	h.PayloadLength = 4096
	h.Flag.SetCompression(format.CompressionZstd)

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseTraceHeader(data)
	require.NoError(t, err)

	assert.Equal(t, h.StartTime, parsed.StartTime)
	assert.Equal(t, h.FlowCount, parsed.FlowCount)
	assert.Equal(t, h.RecordCount, parsed.RecordCount)
	assert.Equal(t, h.IndexOffset, parsed.IndexOffset)
	assert.Equal(t, h.PayloadOffset, parsed.PayloadOffset)
	assert.Equal(t, h.PayloadLength, parsed.PayloadLength)
	assert.Equal(t, format.CompressionZstd, parsed.Flag.Compression())
}

func TestTraceHeader_RoundTrip_BigEndian(t *testing.T) {
	h := NewTraceHeader(time.Unix(1700000000, 0))
	h.Flag.WithBigEndian()
	h.FlowCount = 1
	h.RecordCount = 2
	h.PayloadOffset = HeaderSize + FlowIndexEntrySize
	h.PayloadLength = 77

	parsed, err := ParseTraceHeader(h.Bytes())
	require.NoError(t, err)

	assert.True(t, parsed.Flag.IsBigEndian())
	assert.Equal(t, h.StartTime, parsed.StartTime)
	assert.Equal(t, uint32(77), parsed.PayloadLength)
}

func TestTraceHeader_RoundTrip_NegativeStartTime(t *testing.T) {
	h := NewTraceHeader(time.Unix(-1, 0))

	parsed, err := ParseTraceHeader(h.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h.StartTime, parsed.StartTime)
	assert.True(t, parsed.StartTimeAsTime().Before(time.Unix(0, 0)))
}

func TestParseTraceHeader_TooShort(t *testing.T) {
	_, err := ParseTraceHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestParseTraceHeader_BadMagic(t *testing.T) {
	h := NewTraceHeader(time.Now())
	data := h.Bytes()
	data[1] ^= 0xf0 // corrupt the magic bits

	_, err := ParseTraceHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestParseTraceHeader_BadCompression(t *testing.T) {
	h := NewTraceHeader(time.Now())
	data := h.Bytes()
	data[2] = 0x7f

	_, err := ParseTraceHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestTraceFlag_Validate(t *testing.T) {
	flag := NewTraceFlag()
	require.NoError(t, flag.Validate())

	flag.SetCompression(format.CompressionLZ4)
	require.NoError(t, flag.Validate())

	flag.CompressionType = 0
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidCompression)
}
