package store

import (
	"testing"

	"github.com/netmeta/tagbuf/tag"
)

func BenchmarkStore_AddPeek(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		s := New()
		_ = s.Add(&tag.TimestampTag{Nanos: 123456789})
		_ = s.Add(&tag.FlowTag{FlowID: 42, Seq: 7})
		_ = s.Add(&tag.HopTag{Hops: 1, TTL: 63})

		var flow tag.FlowTag
		s.Peek(&flow)

		s.Release()
	}
}

func BenchmarkStore_Clone(b *testing.B) {
	s := New()
	_ = s.Add(&tag.TimestampTag{Nanos: 123456789})
	_ = s.Add(&tag.SignalTag{Rssi: -90, Snr: 9})
	defer s.Release()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		c := s.Clone()
		c.Release()
	}
}
