package tag

import "github.com/netmeta/tagbuf/cursor"

func init() {
	MustRegister(KindTimestamp, "timestamp", func() Tag { return &TimestampTag{} })
	MustRegister(KindFlow, "flow", func() Tag { return &FlowTag{} })
	MustRegister(KindHop, "hop", func() Tag { return &HopTag{} })
	MustRegister(KindSignal, "signal", func() Tag { return &SignalTag{} })
}

// TimestampTag records the time a packet was handed to the channel, in
// nanoseconds since the start of the run. Receivers use it to compute
// per-packet delay.
type TimestampTag struct {
	Nanos uint64
}

func (t *TimestampTag) Kind() Kind          { return KindTimestamp }
func (t *TimestampTag) SerializedSize() int { return 8 }

func (t *TimestampTag) Serialize(c *cursor.Cursor) {
	c.WriteU64(t.Nanos)
}

func (t *TimestampTag) Deserialize(c *cursor.Cursor) {
	t.Nanos = c.ReadU64()
}

// FlowTag identifies the flow a packet belongs to and its sequence number
// within that flow.
type FlowTag struct {
	FlowID uint32
	Seq    uint32
}

func (t *FlowTag) Kind() Kind          { return KindFlow }
func (t *FlowTag) SerializedSize() int { return 8 }

func (t *FlowTag) Serialize(c *cursor.Cursor) {
	c.WriteU32(t.FlowID)
	c.WriteU32(t.Seq)
}

func (t *FlowTag) Deserialize(c *cursor.Cursor) {
	t.FlowID = c.ReadU32()
	t.Seq = c.ReadU32()
}

// HopTag carries routing hints: the number of hops traversed so far and the
// remaining TTL. Forwarding nodes update it in place (peek, modify, replace).
type HopTag struct {
	Hops uint8
	TTL  uint8
}

func (t *HopTag) Kind() Kind          { return KindHop }
func (t *HopTag) SerializedSize() int { return 2 }

func (t *HopTag) Serialize(c *cursor.Cursor) {
	c.WriteU8(t.Hops)
	c.WriteU8(t.TTL)
}

func (t *HopTag) Deserialize(c *cursor.Cursor) {
	t.Hops = c.ReadU8()
	t.TTL = c.ReadU8()
}

// SignalTag records the received signal strength and signal-to-noise ratio
// measured at the receiving device, in dBm and dB.
type SignalTag struct {
	Rssi float64
	Snr  float64
}

func (t *SignalTag) Kind() Kind          { return KindSignal }
func (t *SignalTag) SerializedSize() int { return 16 }

func (t *SignalTag) Serialize(c *cursor.Cursor) {
	c.WriteDouble(t.Rssi)
	c.WriteDouble(t.Snr)
}

func (t *SignalTag) Deserialize(c *cursor.Cursor) {
	t.Rssi = c.ReadDouble()
	t.Snr = c.ReadDouble()
}
