package watson

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/logjammin/watson/internal/encoding"
)

// Scalar constructors. Each native type maps to exactly one type tag.
// Numeric payloads are little-endian.

// NewBool returns the one-byte true or false encoding.
func NewBool(v bool) *Ingredient {
	typ := TypeFalse
	if v {
		typ = TypeTrue
	}
	return &Ingredient{
		data:  []byte{encoding.Marker(encoding.SizeZero, byte(typ))},
		owned: true,
	}
}

// NewString returns a string Ingredient holding a copy of v.
func NewString(v string) *Ingredient {
	buf := encoding.AppendHeader(nil, byte(TypeString), uint64(len(v)))
	buf = append(buf, v...)
	return &Ingredient{data: buf, owned: true}
}

// NewInt32 returns an int32 Ingredient.
func NewInt32(v int32) *Ingredient {
	return newFixed(TypeInt32, uint64(uint32(v)), 4)
}

// NewInt64 returns an int64 Ingredient.
func NewInt64(v int64) *Ingredient {
	return newFixed(TypeInt64, uint64(v), 8)
}

// NewUint64 returns a uint64 Ingredient.
func NewUint64(v uint64) *Ingredient {
	return newFixed(TypeUint64, v, 8)
}

// NewFloat64 returns a float64 Ingredient holding the IEEE 754 bits of v.
func NewFloat64(v float64) *Ingredient {
	return newFixed(TypeFloat64, math.Float64bits(v), 8)
}

func newFixed(typ Type, bits uint64, width int) *Ingredient {
	buf := encoding.AppendHeader(nil, byte(typ), uint64(width))
	buf = encoding.AppendFixed(buf, bits, width)
	return &Ingredient{data: buf, owned: true}
}

// NewFlags returns a flags Ingredient packing the given bits LSB-first:
// bit i lands in byte i/8 at position i mod 8. The payload is padded to a
// whole byte; decoding cannot recover the original bit count.
func NewFlags(bits []bool) *Ingredient {
	n := len(bits) / 8
	if len(bits)%8 != 0 {
		n++
	}
	payload := make([]byte, n)
	for i, set := range bits {
		if set {
			payload[i>>3] |= 1 << (i % 8)
		}
	}
	buf := encoding.AppendHeader(nil, byte(TypeFlags), uint64(n))
	buf = append(buf, payload...)
	return &Ingredient{data: buf, owned: true}
}

// Scalar decoders. Conversions are total: a type mismatch yields the
// target type's zero value rather than an error.

// ToBool reads ing as a boolean. Null and false are false, integer types
// are false when zero, everything else is true.
func ToBool(ing *Ingredient) bool {
	switch ing.Type() {
	case TypeNull, TypeFalse:
		return false
	case TypeInt32:
		return ToInt32(ing) != 0
	case TypeInt64:
		return ToInt64(ing) != 0
	case TypeUint64:
		return ToUint64(ing) != 0
	default:
		return true
	}
}

// ToInt32 reads ing as an int32, or 0 on a type mismatch.
func ToInt32(ing *Ingredient) int32 {
	return int32(fixedPayload(ing, TypeInt32, 4))
}

// ToInt64 reads ing as an int64, or 0 on a type mismatch.
func ToInt64(ing *Ingredient) int64 {
	return int64(fixedPayload(ing, TypeInt64, 8))
}

// ToUint64 reads ing as a uint64, or 0 on a type mismatch.
func ToUint64(ing *Ingredient) uint64 {
	return fixedPayload(ing, TypeUint64, 8)
}

// ToFloat64 reads ing as a float64, or 0 on a type mismatch.
func ToFloat64(ing *Ingredient) float64 {
	if ing.Type() != TypeFloat64 {
		return 0
	}
	return math.Float64frombits(fixedPayload(ing, TypeFloat64, 8))
}

func fixedPayload(ing *Ingredient, typ Type, width int) uint64 {
	if ing.Type() != typ {
		return 0
	}
	p := ing.Payload()
	if len(p) < width {
		return 0
	}
	return encoding.Fixed[uint64](p, width)
}

// ToFlags unpacks a flags payload. The result has one entry per payload
// bit, trailing pad bits included; the caller must know the logical
// length out of band.
func ToFlags(ing *Ingredient) []bool {
	if ing.Type() != TypeFlags {
		return nil
	}
	p := ing.Payload()
	bits := make([]bool, len(p)*8)
	for i := range bits {
		bits[i] = p[i>>3]&(1<<(i%8)) != 0
	}
	return bits
}

// ToString renders ing as a string: the payload for string values, a
// literal rendering for null, booleans and numbers, and "" for anything
// else.
func ToString(ing *Ingredient) string {
	switch ing.Type() {
	case TypeNull:
		return "null"
	case TypeTrue:
		return "true"
	case TypeFalse:
		return "false"
	case TypeFloat64:
		return strconv.FormatFloat(ToFloat64(ing), 'g', -1, 64)
	case TypeInt32:
		return strconv.FormatInt(int64(ToInt32(ing)), 10)
	case TypeInt64:
		return strconv.FormatInt(ToInt64(ing), 10)
	case TypeUint64:
		return strconv.FormatUint(ToUint64(ing), 10)
	case TypeString:
		return string(ing.Payload())
	default:
		return ""
	}
}

// Dump renders the raw encoding of ing for diagnostics: the marker with
// its size class and type tag, then the size field, then the payload,
// all in hex.
func Dump(ing *Ingredient) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x[%02x={ %02x %02x } {", ing.Marker(),
		encoding.SizeClass(ing.Marker()), byte(ing.Type()))
	hdr := encoding.HeaderSize(encoding.SizeClass(ing.Marker()))
	for _, b := range ing.data[1:hdr] {
		fmt.Fprintf(&sb, " %02x", b)
	}
	sb.WriteString(" }")
	for _, b := range ing.data[hdr:] {
		fmt.Fprintf(&sb, " %02x", b)
	}
	sb.WriteString("]")
	return sb.String()
}
