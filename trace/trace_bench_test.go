package trace

import (
	"fmt"
	"testing"
	"time"

	"github.com/netmeta/tagbuf/format"
	"github.com/netmeta/tagbuf/store"
	"github.com/netmeta/tagbuf/tag"
)

func benchBlob(b *testing.B, c format.CompressionType) []byte {
	b.Helper()

	enc, err := NewEncoder(time.Unix(1700000000, 0), WithCompression(c))
	if err != nil {
		b.Fatal(err)
	}

	s := store.New()
	defer s.Release()

	for flow := range 10 {
		if err := enc.StartFlow(fmt.Sprintf("flow-%d", flow)); err != nil {
			b.Fatal(err)
		}
		for i := range 100 {
			s.Reset()
			_ = s.Add(&tag.TimestampTag{Nanos: uint64(i) * 1000})
			_ = s.Add(&tag.FlowTag{FlowID: uint32(flow), Seq: uint32(i)})
			if err := enc.Record(uint64(i)*1000, s); err != nil {
				b.Fatal(err)
			}
		}
	}

	blob, err := enc.Finish()
	if err != nil {
		b.Fatal(err)
	}

	return blob
}

func BenchmarkEncoder_Finish(b *testing.B) {
	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = benchBlob(b, c)
			}
		})
	}
}

func BenchmarkDecoder_All(b *testing.B) {
	blob := benchBlob(b, format.CompressionS2)
	flowID := tag.ID("flow-5")

	b.ResetTimer()
	b.ReportAllocs()

	var sink uint64
	for b.Loop() {
		dec, err := NewDecoder(blob)
		if err != nil {
			b.Fatal(err)
		}
		for rec := range dec.All(flowID) {
			sink += rec.TimeNanos
		}
	}
	_ = sink
}
