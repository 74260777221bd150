// Package section defines the low-level binary structures and constants of
// the tag trace blob format.
//
// It handles binary serialization and deserialization of the fixed-size
// header, its packed flag field, and the per-flow index entries, ensuring a
// consistent byte-level representation across platforms.
//
// # Blob Structure
//
// A trace blob consists of fixed-size sections followed by the record payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                 │
//	│  - Flag (4 bytes): magic, endianness, compression        │
//	│  - StartTime (8 bytes)                                   │
//	│  - FlowCount, RecordCount (8 bytes)                      │
//	│  - IndexOffset, PayloadOffset, PayloadLength (12 bytes)  │
//	├─────────────────────────────────────────────────────────┤
//	│ Flow Index (FlowCount × 16 bytes, fixed per entry)       │
//	│  - FlowID (xxHash64 of flow name), offset, record count  │
//	├─────────────────────────────────────────────────────────┤
//	│ Record Payload (variable, optionally compressed)         │
//	│  - Per record: [timeNanos u64][storeLen u16][store]      │
//	│  - Records of one flow are contiguous                    │
//	└─────────────────────────────────────────────────────────┘
//
// Index offsets always refer to positions in the uncompressed payload; the
// whole payload section is compressed as one unit.
package section
