package section

import (
	"testing"

	"github.com/netmeta/tagbuf/endian"
	"github.com/netmeta/tagbuf/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowIndexEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	e := NewFlowIndexEntry(0xdeadbeefcafef00d)
	e.Offset = 1024
	e.Count = 42

	data := e.Bytes(engine)
	require.Len(t, data, FlowIndexEntrySize)

	parsed, err := ParseFlowIndexEntry(data, engine)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}

func TestFlowIndexEntry_RoundTrip_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	e := FlowIndexEntry{FlowID: 1, Offset: 2, Count: 3}
	parsed, err := ParseFlowIndexEntry(e.Bytes(engine), engine)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}

func TestFlowIndexEntry_WriteToSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 2*FlowIndexEntrySize)

	first := FlowIndexEntry{FlowID: 10, Offset: 0, Count: 5}
	second := FlowIndexEntry{FlowID: 20, Offset: 90, Count: 7}

	next := first.WriteToSlice(buf, 0, engine)
	require.Equal(t, FlowIndexEntrySize, next)
	next = second.WriteToSlice(buf, next, engine)
	require.Equal(t, 2*FlowIndexEntrySize, next)

	p1, err := ParseFlowIndexEntry(buf[:FlowIndexEntrySize], engine)
	require.NoError(t, err)
	p2, err := ParseFlowIndexEntry(buf[FlowIndexEntrySize:], engine)
	require.NoError(t, err)

	assert.Equal(t, first, p1)
	assert.Equal(t, second, p2)
}

func TestParseFlowIndexEntry_TooShort(t *testing.T) {
	_, err := ParseFlowIndexEntry(make([]byte, FlowIndexEntrySize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
