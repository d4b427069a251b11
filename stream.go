package watson

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/logjammin/watson/internal/encoding"
)

// ReadIngredient reads one Ingredient from r. The format is
// self-delimiting, so no external framing is consumed: the marker byte
// announces the size field, and the size field announces the rest.
//
// A stream that ends before the first byte is a clean end of input and
// returns io.EOF. A stream that ends after the marker announced more
// bytes returns ErrTruncated. Partial reads are retried until the full
// count arrives or the stream fails, per io.ReadFull.
func ReadIngredient(r io.Reader) (*Ingredient, error) {
	var hdr [9]byte
	if _, err := io.ReadFull(r, hdr[:1]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}

	class := encoding.SizeClass(hdr[0])
	if class == encoding.SizeZero {
		return Adopt([]byte{hdr[0]})
	}

	fs := encoding.FieldSize(class)
	if _, err := io.ReadFull(r, hdr[1:1+fs]); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "marker %#x declared a %d-byte size field: %v", hdr[0], fs, err)
	}

	total := encoding.Fixed[uint64](hdr[1:], fs)
	hs := uint64(1 + fs)
	if total < hs {
		return nil, errors.Wrapf(ErrMalformed, "declared size %d smaller than its own header (%d bytes)", total, hs)
	}
	// The size field is untrusted input; a declared total beyond int
	// range would panic the allocation below.
	if total > math.MaxInt {
		return nil, errors.Wrapf(ErrMalformed, "declared size %d not addressable", total)
	}

	buf := make([]byte, total)
	copy(buf, hdr[:hs])
	if _, err := io.ReadFull(r, buf[hs:]); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "reading %d payload bytes: %v", total-hs, err)
	}
	return Adopt(buf)
}

// WriteIngredient writes ing's bytes to w verbatim. The encoding is
// self-delimiting; no length prefix is added.
func WriteIngredient(w io.Writer, ing *Ingredient) error {
	_, err := w.Write(ing.Bytes())
	return err
}
