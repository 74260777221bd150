// Package tag defines the typed per-packet metadata annotations ("tags") that
// serialize through a cursor, and the registry that maps tag kinds to
// factories.
//
// A tag is a small, fixed-layout value attached to a simulated packet without
// being part of its wire payload: a send timestamp, a flow/sequence pair, a
// routing hint, a signal measurement. Each tag type declares its worst-case
// serialized size up front so the container layer can reserve an exactly-sized
// window before the encode pass starts; the encode itself never allocates.
//
// Producer and consumer of a tag's serialized form must issue the exact same
// sequence of typed cursor operations: the format carries no per-field tags or
// lengths of its own.
package tag

import (
	"fmt"
	"sort"
	"sync"

	"github.com/netmeta/tagbuf/cursor"
	"github.com/netmeta/tagbuf/errs"
	"github.com/netmeta/tagbuf/internal/hash"
)

// Kind identifies a registered tag type. Kinds are small integers chosen by
// the registering code; built-in tags occupy the range below KindUserBase.
type Kind uint8

// Built-in tag kinds.
const (
	KindTimestamp Kind = 0x01 // KindTimestamp identifies TimestampTag.
	KindFlow      Kind = 0x02 // KindFlow identifies FlowTag.
	KindHop       Kind = 0x03 // KindHop identifies HopTag.
	KindSignal    Kind = 0x04 // KindSignal identifies SignalTag.

	// KindUserBase is the first kind available for user-defined tags.
	KindUserBase Kind = 0x20
)

// Tag is a typed annotation that can serialize itself into, and reconstruct
// itself from, a cursor window.
//
// Implementations must write at most SerializedSize bytes in Serialize and
// must read in Deserialize exactly the bytes Serialize wrote, in the same
// order and with the same types.
type Tag interface {
	// Kind returns the registered kind identifier of this tag type.
	Kind() Kind

	// SerializedSize returns the worst-case number of bytes Serialize will
	// write. Callers size the cursor window from this value.
	SerializedSize() int

	// Serialize writes the tag's fields through c. Writing past the window is
	// a programming error and panics.
	Serialize(c *cursor.Cursor)

	// Deserialize reconstructs the tag's fields by reading from c in the
	// exact sequence Serialize wrote them.
	Deserialize(c *cursor.Cursor)
}

// Factory constructs a zero-valued tag of a registered kind, ready for
// Deserialize.
type Factory func() Tag

type registration struct {
	name    string
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[Kind]registration)
)

// Register associates a kind with a name and a factory. It is typically
// called from an init function of the package defining the tag type.
//
// Returns ErrKindAlreadyRegistered if the kind is taken.
func Register(kind Kind, name string, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[kind]; ok {
		return fmt.Errorf("%w: kind 0x%02x is %q", errs.ErrKindAlreadyRegistered, uint8(kind), existing.name)
	}
	registry[kind] = registration{name: name, factory: factory}

	return nil
}

// MustRegister is like Register but panics on conflict. Intended for init-time
// registration of built-in tags.
func MustRegister(kind Kind, name string, factory Factory) {
	if err := Register(kind, name, factory); err != nil {
		panic(err)
	}
}

// New constructs a zero-valued tag of the given kind.
//
// Returns ErrUnknownTagKind if the kind has not been registered.
func New(kind Kind) (Tag, error) {
	registryMu.RLock()
	reg, ok := registry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: kind 0x%02x", errs.ErrUnknownTagKind, uint8(kind))
	}

	return reg.factory(), nil
}

// NameOf returns the registered name of a kind, or the empty string if the
// kind is unknown.
func NameOf(kind Kind) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return registry[kind].name
}

// Kinds returns all registered kinds in ascending order.
func Kinds() []Kind {
	registryMu.RLock()
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	registryMu.RUnlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// ID computes the 64-bit xxHash64 identifier of a flow or tag name. Trace
// blobs key their flow index by this value.
func ID(name string) uint64 {
	return hash.ID(name)
}
