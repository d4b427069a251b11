package watson

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// JSON bridge. FromJSON builds a Container of the shape
// [Library, value]: every object key encountered is interned in the
// Library, and objects become Maps keyed by the key's Library position.
// ToJSON reverses the translation through the Recipe's Glossary.

// FromJSON encodes a JSON document as a WatSON Ingredient.
func FromJSON(data []byte) (*Ingredient, error) {
	value, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}

	b := &jsonBuilder{
		lib:   NewLibrary(),
		index: make(map[string]uint32),
	}
	root, err := b.encodeValue(value, dt)
	if err != nil {
		return nil, err
	}

	return NewContainer(b.lib.Ingredient(), root).Ingredient(), nil
}

type jsonBuilder struct {
	lib   *Library
	index map[string]uint32
}

// intern returns the Library position of key, appending it on first use.
func (b *jsonBuilder) intern(key string) uint32 {
	if i, ok := b.index[key]; ok {
		return i
	}
	i := uint32(b.lib.Len())
	b.lib.Append(key)
	b.index[key] = i
	return i
}

func (b *jsonBuilder) encodeValue(data []byte, dt jsonparser.ValueType) (*Ingredient, error) {
	switch dt {
	case jsonparser.Null:
		return Null(), nil

	case jsonparser.Boolean:
		v, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return NewBool(v), nil

	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// Not representable as an int64, try floating point.
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}
			return NewFloat64(f), nil
		}
		return NewInt64(i), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewString(s), nil

	case jsonparser.Array:
		c := NewContainer()
		var cbErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, offset int, err error) {
			if cbErr != nil {
				return
			}
			if err != nil {
				cbErr = err
				return
			}
			child, err := b.encodeValue(value, dt)
			if err != nil {
				cbErr = err
				return
			}
			c.Append(child)
		})
		if err != nil {
			return nil, err
		}
		if cbErr != nil {
			return nil, cbErr
		}
		return c.Ingredient(), nil

	case jsonparser.Object:
		m := NewMap()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, offset int) error {
			child, err := b.encodeValue(value, dt)
			if err != nil {
				return err
			}
			m.Set(b.intern(string(key)), child)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return m.Ingredient(), nil
	}

	return nil, errors.Newf("watson: unsupported JSON value type %v", dt)
}

// ToJSON renders r's value as JSON, translating Map keys to names
// through r's Glossary. The rendered value is the first non-Library
// child of the top-level Container; a Recipe with no such child renders
// as null.
func ToJSON(r *Recipe) ([]byte, error) {
	var root *Ingredient
	for _, child := range r.Container().Children() {
		if child.Type() != TypeLibrary {
			root = child
			break
		}
	}
	if root == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	if err := renderJSON(&buf, root, r.Glossary()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderJSON(buf *bytes.Buffer, ing *Ingredient, g *Glossary) error {
	switch ing.Type() {
	case TypeNull:
		buf.WriteString("null")

	case TypeTrue:
		buf.WriteString("true")

	case TypeFalse:
		buf.WriteString("false")

	case TypeInt32, TypeInt64, TypeUint64, TypeFloat64, TypeString:
		return renderJSONScalar(buf, ing)

	case TypeFlags:
		buf.WriteByte('[')
		for i, set := range ToFlags(ing) {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatBool(set))
		}
		buf.WriteByte(']')

	case TypeBytes:
		b, err := ParseBytes(ing)
		if err != nil {
			return err
		}
		return writeJSONString(buf, base64.StdEncoding.EncodeToString(b.Data()))

	case TypeContainer:
		c, err := ParseContainer(ing)
		if err != nil {
			return err
		}
		buf.WriteByte('[')
		for i, child := range c.Children() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := renderJSON(buf, child, g); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case TypeLibrary:
		lib, err := ParseLibrary(ing)
		if err != nil {
			return err
		}
		buf.WriteByte('[')
		for i, name := range lib.Names() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, name); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case TypeMap:
		m, err := ParseMap(ing)
		if err != nil {
			return err
		}
		buf.WriteByte('{')
		for i, key := range m.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			name := g.Name(key)
			if name == "" {
				name = strconv.FormatUint(uint64(key), 10)
			}
			if err := writeJSONString(buf, name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := renderJSON(buf, m.Get(key), g); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case TypeCompressed:
		child, err := Decompress(ing)
		if err != nil {
			return err
		}
		return renderJSON(buf, child, g)

	default:
		return errors.Newf("watson: cannot render type %s as JSON", ing.Type())
	}
	return nil
}

func renderJSONScalar(buf *bytes.Buffer, ing *Ingredient) error {
	switch ing.Type() {
	case TypeString:
		return writeJSONString(buf, ToString(ing))
	case TypeFloat64:
		b, err := json.Marshal(ToFloat64(ing))
		if err != nil {
			return err
		}
		buf.Write(b)
	default:
		buf.WriteString(ToString(ing))
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
