package watson

import "github.com/logjammin/watson/internal/encoding"

// Container and Library share one wire layout: children laid out
// consecutively with no separators, each boundary derived from the
// child's self-reported size. The two differ only in the element
// transform applied during parse and serialize, so both are built on the
// same generic walk.

// walkChildren visits each encoded child in raw's payload as a borrowed
// view, advancing by the child's size. A child whose declared size
// exceeds the remaining payload stops the walk with ErrMalformed.
func walkChildren(raw *Ingredient, fn func(*Ingredient) error) error {
	payload := raw.Payload()
	for pos := 0; pos < len(payload); {
		child, err := View(payload[pos:])
		if err != nil {
			return err
		}
		if err := fn(child); err != nil {
			return err
		}
		pos += int(child.Size())
	}
	return nil
}

// parseElements decodes raw's children through the element transform.
func parseElements[T any](raw *Ingredient, transform func(*Ingredient) T) ([]T, error) {
	var elems []T
	err := walkChildren(raw, func(child *Ingredient) error {
		elems = append(elems, transform(child))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elems, nil
}

// serializeElements encodes elems consecutively behind a header of the
// given type, encoding each element through the element transform.
func serializeElements[T any](typ Type, elems []T, transform func(T) *Ingredient) *Ingredient {
	encoded := make([]*Ingredient, len(elems))
	var sum uint64
	for i, e := range elems {
		encoded[i] = transform(e)
		sum += encoded[i].Size()
	}
	buf := encoding.AppendHeader(nil, byte(typ), sum)
	for _, ing := range encoded {
		buf = append(buf, ing.Bytes()...)
	}
	return &Ingredient{data: buf, owned: true}
}

// Container is an ordered sequence of Ingredients.
type Container struct {
	children []*Ingredient
}

// NewContainer returns a Container holding the given children. The
// children are stored as passed, without copying.
func NewContainer(children ...*Ingredient) *Container {
	return &Container{children: children}
}

// ParseContainer decodes raw's payload into a Container. Each child is
// cloned, so the Container is independent of raw's buffer.
func ParseContainer(raw *Ingredient) (*Container, error) {
	children, err := parseElements(raw, (*Ingredient).Clone)
	if err != nil {
		return nil, err
	}
	return &Container{children: children}, nil
}

// Append adds a child to the end of the sequence.
func (c *Container) Append(ing *Ingredient) {
	c.children = append(c.children, ing)
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// At returns the child at position i, or NotFound when i is out of
// range.
func (c *Container) At(i uint32) *Ingredient {
	if i >= uint32(len(c.children)) {
		return NotFound
	}
	return c.children[i]
}

// Children returns the underlying child slice.
func (c *Container) Children() []*Ingredient {
	return c.children
}

// Ingredient serializes the Container into a new owned Ingredient.
func (c *Container) Ingredient() *Ingredient {
	return serializeElements(TypeContainer, c.children, func(ing *Ingredient) *Ingredient {
		return ing
	})
}

// Library is an ordered table of strings. On the wire it walks exactly
// like a Container; each child is a string Ingredient.
type Library struct {
	names []string
}

// NewLibrary returns a Library holding the given names.
func NewLibrary(names ...string) *Library {
	return &Library{names: names}
}

// ParseLibrary decodes raw's payload into a Library, converting each
// child to a string.
func ParseLibrary(raw *Ingredient) (*Library, error) {
	names, err := parseElements(raw, ToString)
	if err != nil {
		return nil, err
	}
	return &Library{names: names}, nil
}

// Append adds a name to the end of the table.
func (l *Library) Append(name string) {
	l.names = append(l.names, name)
}

// Len returns the number of names.
func (l *Library) Len() int {
	return len(l.names)
}

// At returns the name at position i, or "" when i is out of range.
func (l *Library) At(i uint32) string {
	if i >= uint32(len(l.names)) {
		return ""
	}
	return l.names[i]
}

// Names returns the underlying name slice.
func (l *Library) Names() []string {
	return l.names
}

// Ingredient serializes the Library into a new owned Ingredient.
func (l *Library) Ingredient() *Ingredient {
	return serializeElements(TypeLibrary, l.names, NewString)
}
