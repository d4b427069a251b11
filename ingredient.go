package watson

import (
	"github.com/cockroachdb/errors"

	"github.com/logjammin/watson/internal/encoding"
)

// Ingredient is the fundamental WatSON value: a marker byte, an optional
// size field, and a payload. An Ingredient either owns its buffer
// exclusively or borrows a view over a buffer owned elsewhere; see View,
// Adopt, and Clone. In both cases the bytes are immutable after
// construction.
type Ingredient struct {
	data  []byte
	owned bool
}

// NotFound is the sentinel returned by lookups and navigation when no
// value exists at the requested position or key. It is a null Ingredient;
// use IsNotFound to distinguish a miss from a stored null.
var NotFound = Null()

// Null returns a new owned Ingredient holding the canonical one-byte
// null encoding.
func Null() *Ingredient {
	return &Ingredient{
		data:  []byte{encoding.Marker(encoding.SizeZero, byte(TypeNull))},
		owned: true,
	}
}

// IsNotFound reports whether ing is the NotFound sentinel itself.
func IsNotFound(ing *Ingredient) bool {
	return ing == NotFound
}

// IsNull reports whether ing holds a null value.
func IsNull(ing *Ingredient) bool {
	return ing.Type() == TypeNull
}

// View constructs a borrowed Ingredient over the encoded value starting
// at b[0]. No bytes are copied; the result must not outlive b. The
// declared size is checked against the buffer before any deeper read.
func View(b []byte) (*Ingredient, error) {
	data, err := checkBounds(b)
	if err != nil {
		return nil, err
	}
	return &Ingredient{data: data}, nil
}

// Adopt takes exclusive ownership of buf, which must hold exactly one
// encoded value at its start. No bytes are copied; the caller must not
// touch buf afterwards.
func Adopt(buf []byte) (*Ingredient, error) {
	data, err := checkBounds(buf)
	if err != nil {
		return nil, err
	}
	return &Ingredient{data: data, owned: true}, nil
}

func checkBounds(b []byte) ([]byte, error) {
	total, hdr := encoding.TotalSize(b)
	if hdr == 0 {
		return nil, errors.Wrapf(ErrMalformed, "buffer of %d bytes too short for header", len(b))
	}
	if total < uint64(hdr) {
		return nil, errors.Wrapf(ErrMalformed, "declared size %d smaller than its own header (%d bytes)", total, hdr)
	}
	if total > uint64(len(b)) {
		return nil, errors.Wrapf(ErrMalformed, "declared size %d exceeds buffer of %d bytes", total, len(b))
	}
	return b[:total], nil
}

// Clone returns a new owned Ingredient holding a copy of exactly Size()
// bytes. Cloning is how a borrowed view detaches from its backing buffer.
func (ing *Ingredient) Clone() *Ingredient {
	cp := make([]byte, len(ing.data))
	copy(cp, ing.data)
	return &Ingredient{data: cp, owned: true}
}

// Marker returns the raw marker byte.
func (ing *Ingredient) Marker() byte {
	return ing.data[0]
}

// Type returns the value's type tag.
func (ing *Ingredient) Type() Type {
	return MarkerType(ing.data[0])
}

// Size returns the total encoded length of the Ingredient, header
// included. Advancing a cursor by Size is all a reader needs to walk
// concatenated values.
func (ing *Ingredient) Size() uint64 {
	return uint64(len(ing.data))
}

// Bytes returns the full encoded unit. The slice aliases the
// Ingredient's buffer and must not be modified.
func (ing *Ingredient) Bytes() []byte {
	return ing.data
}

// Payload returns the bytes after the header. The slice aliases the
// Ingredient's buffer and must not be modified.
func (ing *Ingredient) Payload() []byte {
	return ing.data[encoding.HeaderSize(encoding.SizeClass(ing.data[0])):]
}

// Owned reports whether the Ingredient owns its buffer. A borrowed view
// is only valid while the buffer it was constructed over is; Clone it to
// get an independent value.
func (ing *Ingredient) Owned() bool {
	return ing.owned
}
