// Package encoding implements the low-level WatSON header scheme: the
// 1-byte type marker and the variable-length size field that follows it.
//
// Every encoded value starts with a marker byte. The high two bits of the
// marker select the size class, which determines how many bytes of size
// field follow. The low six bits carry the type tag. The size field, when
// present, stores the total encoded length of the value, marker and size
// field included.
package encoding

import "golang.org/x/exp/constraints"

// Size classes. The class is always the minimal one able to represent the
// value's total encoded length.
const (
	// SizeZero has no size field. The value is exactly one marker byte.
	SizeZero uint8 = 0

	// SizeOne has a 1-byte size field, for totals up to 255.
	SizeOne uint8 = 1

	// SizeTwo has a 2-byte size field, for totals up to 65535.
	SizeTwo uint8 = 2

	// SizeEight has an 8-byte size field.
	SizeEight uint8 = 3
)

// SizeClass extracts the size class from a marker byte.
func SizeClass(marker byte) uint8 {
	return marker >> 6
}

// TypeBits extracts the type tag from a marker byte.
func TypeBits(marker byte) byte {
	return marker & 0x3F
}

// Marker packs a size class and a type tag into a marker byte.
func Marker(class uint8, typ byte) byte {
	return class<<6 | typ
}

// FieldSize returns the number of size-field bytes for a class.
func FieldSize(class uint8) int {
	if class == SizeEight {
		return 8
	}
	return int(class)
}

// HeaderSize returns the number of header bytes (marker plus size field)
// for a class.
func HeaderSize(class uint8) int {
	return FieldSize(class) + 1
}

// ClassFor returns the minimal size class for a payload of n bytes.
// Thresholds: 0, then below 254, then below 65534, then 8-byte.
func ClassFor(n uint64) uint8 {
	switch {
	case n == 0:
		return SizeZero
	case n < 0xFE:
		return SizeOne
	case n < 0xFFFE:
		return SizeTwo
	default:
		return SizeEight
	}
}

// AppendFixed appends v to dst as width little-endian bytes.
func AppendFixed[T constraints.Unsigned](dst []byte, v T, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// Fixed reads a width-byte little-endian integer from b.
// The caller guarantees len(b) >= width.
func Fixed[T constraints.Unsigned](b []byte, width int) T {
	var v T
	for i := 0; i < width; i++ {
		v |= T(b[i]) << (8 * i)
	}
	return v
}

// AppendHeader appends the header for a value of type typ with a payload
// of payloadLen bytes: the marker, then the size field holding the total
// encoded length. Zero-length payloads get a bare marker.
func AppendHeader(dst []byte, typ byte, payloadLen uint64) []byte {
	class := ClassFor(payloadLen)
	dst = append(dst, Marker(class, typ))
	if class == SizeZero {
		return dst
	}
	total := payloadLen + uint64(HeaderSize(class))
	return AppendFixed(dst, total, FieldSize(class))
}

// TotalSize reads the total encoded length of the value starting at b[0]
// and returns it together with the header size. It returns (0, 0) when b
// is too short to hold the declared size field, and leaves any deeper
// validation (declared size versus available bytes) to the caller.
func TotalSize(b []byte) (uint64, int) {
	if len(b) == 0 {
		return 0, 0
	}
	class := SizeClass(b[0])
	if class == SizeZero {
		return 1, 1
	}
	fs := FieldSize(class)
	if len(b) < 1+fs {
		return 0, 0
	}
	return Fixed[uint64](b[1:], fs), 1 + fs
}
