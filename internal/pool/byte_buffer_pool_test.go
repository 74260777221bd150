package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 512
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(StoreBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(StoreBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.SetLength(8)
	assert.Equal(t, 8, bb.Len())

	bb.SetLength(0)
	assert.Equal(t, 0, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3, 4})

	assert.Equal(t, []byte{2, 3}, bb.Slice(1, 3))
	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(3, 2) })
	assert.Panics(t, func() { bb.Slice(0, cap(bb.B)+1) })
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(8)

	require.True(t, bb.Extend(8))
	assert.Equal(t, 8, bb.Len())

	assert.False(t, bb.Extend(1), "Extend past capacity should fail")

	bb.ExtendOrGrow(4)
	assert.Equal(t, 12, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(100)
	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 100)
	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes(), "Grow should preserve contents")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(StoreBufferDefaultSize)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 256)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(1024) // exceeds threshold; Put must drop it
	p.Put(bb)

	fresh := p.Get()
	assert.LessOrEqual(t, fresh.Cap(), 1024)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 128)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestDefaultPools(t *testing.T) {
	sb := GetStoreBuffer()
	require.NotNil(t, sb)
	assert.Equal(t, 0, sb.Len())
	PutStoreBuffer(sb)

	tb := GetTraceBuffer()
	require.NotNil(t, tb)
	assert.GreaterOrEqual(t, tb.Cap(), TraceBufferDefaultSize)
	PutTraceBuffer(tb)
}
