package watson

import "github.com/cockroachdb/errors"

var (
	// ErrTruncated is returned when a stream ends in the middle of an
	// Ingredient: the marker announced a size field or payload that the
	// stream could not deliver.
	ErrTruncated = errors.New("watson: truncated input")

	// ErrMalformed is returned when a buffer violates the wire format,
	// typically because a declared size exceeds the available bytes.
	ErrMalformed = errors.New("watson: malformed data")

	// ErrCorrupt is returned when a compressed payload cannot be
	// decompressed. Compressed Ingredients are produced by this package,
	// so a failure here means the data was damaged, not mistyped.
	ErrCorrupt = errors.New("watson: corrupt compressed data")
)
