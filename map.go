package watson

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/logjammin/watson/internal/encoding"
)

// Map associates uint32 keys with Ingredients. On the wire each entry is
// a 4-byte little-endian key followed by the child's full encoding,
// entries laid out consecutively. Wire order carries no meaning to
// readers; serialization emits keys ascending so equal Maps produce
// equal bytes.
type Map struct {
	children map[uint32]*Ingredient
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{children: make(map[uint32]*Ingredient)}
}

// ParseMap decodes raw's payload into a Map. Children are cloned, and a
// duplicate key overwrites the earlier entry.
func ParseMap(raw *Ingredient) (*Map, error) {
	m := NewMap()
	payload := raw.Payload()
	for pos := 0; pos < len(payload); {
		if len(payload)-pos < 4 {
			return nil, errors.Wrapf(ErrMalformed, "map entry at offset %d truncated before its key", pos)
		}
		key := encoding.Fixed[uint32](payload[pos:], 4)
		pos += 4

		child, err := View(payload[pos:])
		if err != nil {
			return nil, err
		}
		m.children[key] = child.Clone()
		pos += int(child.Size())
	}
	return m, nil
}

// Set associates key with ing, replacing any existing entry.
func (m *Map) Set(key uint32, ing *Ingredient) {
	m.children[key] = ing
}

// Get returns the Ingredient stored under key, or NotFound when the key
// is absent. Callers must check for the sentinel before navigating into
// the result.
func (m *Map) Get(key uint32) *Ingredient {
	if ing, ok := m.children[key]; ok {
		return ing
	}
	return NotFound
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.children)
}

// Keys returns the keys in ascending order.
func (m *Map) Keys() []uint32 {
	keys := make([]uint32, 0, len(m.children))
	for k := range m.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Ingredient serializes the Map into a new owned Ingredient.
func (m *Map) Ingredient() *Ingredient {
	keys := m.Keys()
	var sum uint64
	for _, k := range keys {
		sum += 4 + m.children[k].Size()
	}
	buf := encoding.AppendHeader(nil, byte(TypeMap), sum)
	for _, k := range keys {
		buf = encoding.AppendFixed(buf, k, 4)
		buf = append(buf, m.children[k].Bytes()...)
	}
	return &Ingredient{data: buf, owned: true}
}
