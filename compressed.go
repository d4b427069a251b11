package watson

import (
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/snappy"

	"github.com/logjammin/watson/internal/encoding"
)

// Compress wraps child in a compressed Ingredient. The payload is the
// snappy block encoding of the child's full bytes, header included, so
// decompression recovers a complete, self-describing Ingredient.
func Compress(child *Ingredient) *Ingredient {
	compressed := snappy.Encode(nil, child.Bytes())
	buf := encoding.AppendHeader(nil, byte(TypeCompressed), uint64(len(compressed)))
	buf = append(buf, compressed...)
	return &Ingredient{data: buf, owned: true}
}

// Decompress recovers the child Ingredient wrapped by raw. The snappy
// payload reports its uncompressed length up front; the decompressed
// buffer is adopted directly as an owned Ingredient. Compressed values
// are produced by this package, so any failure to decode the payload is
// data corruption, reported as ErrCorrupt.
func Decompress(raw *Ingredient) (*Ingredient, error) {
	payload := raw.Payload()
	n, err := snappy.DecodedLen(payload)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "reading uncompressed length: %v", err)
	}
	buf, err := snappy.Decode(make([]byte, n), payload)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "decompressing %d bytes: %v", len(payload), err)
	}
	return Adopt(buf)
}
