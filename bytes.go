package watson

import (
	"github.com/cockroachdb/errors"

	"github.com/logjammin/watson/internal/encoding"
)

// Bytes carries opaque application binary data behind a 4-byte
// application-defined subtype hint. On the wire the payload is the
// little-endian hint followed by the raw data; the hint is not counted
// in Len.
type Bytes struct {
	hint  uint32
	data  []byte
	owned bool
}

// NewBytes returns a Bytes holding a copy of data.
func NewBytes(hint uint32, data []byte) *Bytes {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Bytes{hint: hint, data: cp, owned: true}
}

// BytesView returns a non-owning Bytes over data, for re-serializing
// without a copy. The result must not outlive data.
func BytesView(hint uint32, data []byte) *Bytes {
	return &Bytes{hint: hint, data: data}
}

// AdoptBytes takes exclusive ownership of buf, a pre-built payload of
// the little-endian hint followed by the data. No bytes are copied; the
// caller must not touch buf afterwards.
func AdoptBytes(buf []byte) (*Bytes, error) {
	if len(buf) < 4 {
		return nil, errors.Wrapf(ErrMalformed, "bytes buffer of %d bytes too short for its hint", len(buf))
	}
	return &Bytes{hint: encoding.Fixed[uint32](buf, 4), data: buf[4:], owned: true}, nil
}

// ParseBytes decodes raw's payload into an owned Bytes.
func ParseBytes(raw *Ingredient) (*Bytes, error) {
	payload := raw.Payload()
	if len(payload) < 4 {
		return nil, errors.Wrapf(ErrMalformed, "bytes payload of %d bytes too short for its hint", len(payload))
	}
	return NewBytes(encoding.Fixed[uint32](payload, 4), payload[4:]), nil
}

// Clone returns an owned copy.
func (b *Bytes) Clone() *Bytes {
	return NewBytes(b.hint, b.data)
}

// Hint returns the subtype hint.
func (b *Bytes) Hint() uint32 {
	return b.hint
}

// Data returns the raw data. The slice aliases the Bytes' buffer and
// must not be modified.
func (b *Bytes) Data() []byte {
	return b.data
}

// Len returns the number of data bytes, hint excluded.
func (b *Bytes) Len() int {
	return len(b.data)
}

// Owned reports whether the Bytes owns its data buffer.
func (b *Bytes) Owned() bool {
	return b.owned
}

// Ingredient serializes the Bytes into a new owned Ingredient.
func (b *Bytes) Ingredient() *Ingredient {
	buf := encoding.AppendHeader(nil, byte(TypeBytes), uint64(4+len(b.data)))
	buf = encoding.AppendFixed(buf, b.hint, 4)
	buf = append(buf, b.data...)
	return &Ingredient{data: buf, owned: true}
}
