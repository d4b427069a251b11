package watson

import (
	"fmt"

	"github.com/logjammin/watson/internal/encoding"
)

// Type identifies the kind of value an Ingredient holds. It occupies the
// low six bits of the marker byte. The values are wire constants;
// changing them breaks format compatibility.
type Type byte

const (
	// Scalars. Null, true and false encode as a bare marker.
	TypeNull    Type = 0x3F
	TypeTrue    Type = 0x31
	TypeFalse   Type = 0x30
	TypeFlags   Type = 0x22
	TypeFloat64 Type = 0x24
	TypeInt32   Type = 0x29
	TypeInt64   Type = 0x2C
	TypeUint64  Type = 0x35
	TypeString  Type = 0x33

	// Composites.
	TypeContainer  Type = 0x03
	TypeLibrary    Type = 0x0C
	TypeMap        Type = 0x0D
	TypeCompressed Type = 0x1A

	// Opaque binary data with a 4-byte subtype hint.
	TypeBytes Type = 0x02
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeTrue:
		return "true"
	case TypeFalse:
		return "false"
	case TypeFlags:
		return "flags"
	case TypeFloat64:
		return "float64"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeString:
		return "string"
	case TypeContainer:
		return "container"
	case TypeLibrary:
		return "library"
	case TypeMap:
		return "map"
	case TypeCompressed:
		return "compressed"
	case TypeBytes:
		return "bytes"
	default:
		return fmt.Sprintf("unknown(%#x)", byte(t))
	}
}

// MarkerType extracts the Type from a raw marker byte.
func MarkerType(marker byte) Type {
	return Type(encoding.TypeBits(marker))
}
