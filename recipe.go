package watson

// Glossary maps names to the small integer keys used by Maps and back.
// It is built from a Library: the key of a name is its position in the
// table.
type Glossary struct {
	names []string
	index map[string]uint32
}

// NewGlossary builds a Glossary from lib. A duplicate name keeps the
// index of its last occurrence.
func NewGlossary(lib *Library) *Glossary {
	g := &Glossary{
		names: lib.Names(),
		index: make(map[string]uint32, lib.Len()),
	}
	for i, name := range g.names {
		g.index[name] = uint32(i)
	}
	return g
}

func emptyGlossary() *Glossary {
	return &Glossary{index: make(map[string]uint32)}
}

// Len returns the number of registered names.
func (g *Glossary) Len() int {
	return len(g.names)
}

// Key returns the key registered for name. An unknown name maps to 0,
// which collides with the name at position 0; callers that must tell the
// two apart should check the table directly.
func (g *Glossary) Key(name string) uint32 {
	return g.index[name]
}

// Name returns the name registered under key, or "" when the key is out
// of range.
func (g *Glossary) Name(key uint32) string {
	if key >= uint32(len(g.names)) {
		return ""
	}
	return g.names[key]
}

// Keys translates names to keys, one output per input, with the Key
// sentinel rules.
func (g *Glossary) Keys(names []string) []uint32 {
	keys := make([]uint32, len(names))
	for i, name := range names {
		keys[i] = g.Key(name)
	}
	return keys
}

// Names translates keys to names, one output per input, with the Name
// sentinel rules.
func (g *Glossary) Names(keys []uint32) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = g.Name(key)
	}
	return names
}

// Recipe wraps a top-level Container together with the Glossary found
// inside it. Both are built once at construction and never mutated.
type Recipe struct {
	container *Container
	glossary  *Glossary
}

// NewRecipe builds a Recipe from raw. A Container is adopted as the
// top-level sequence directly; any other value is wrapped as the sole
// element of a singleton Container. The first direct child that is a
// Library becomes the Glossary source; later Libraries are ignored.
func NewRecipe(raw *Ingredient) (*Recipe, error) {
	r := &Recipe{glossary: emptyGlossary()}

	if raw.Type() == TypeContainer {
		c, err := ParseContainer(raw)
		if err != nil {
			return nil, err
		}
		r.container = c
	} else {
		r.container = NewContainer(raw.Clone())
	}

	for _, child := range r.container.Children() {
		if child.Type() == TypeLibrary {
			lib, err := ParseLibrary(child)
			if err != nil {
				return nil, err
			}
			r.glossary = NewGlossary(lib)
			break
		}
	}
	return r, nil
}

// Container returns the top-level sequence.
func (r *Recipe) Container() *Container {
	return r.container
}

// Glossary returns the Recipe's Glossary, possibly empty.
func (r *Recipe) Glossary() *Glossary {
	return r.glossary
}

// Resolve walks a path of integer steps through the Recipe. The first
// step indexes the top-level Container; each later step indexes the
// current Container or looks up the current Map. Compressed values are
// decompressed transparently without consuming a step. An empty path,
// an out-of-range index, a missing key, or a scalar reached with steps
// remaining all yield the NotFound sentinel. Only structural failures
// (malformed children, corrupt compressed data) return an error.
//
// A Map miss returns the null sentinel and terminates on the following
// step, so Map misses surface one step later than Container misses.
func (r *Recipe) Resolve(steps ...uint32) (*Ingredient, error) {
	if len(steps) == 0 {
		return NotFound, nil
	}

	cur := r.container.At(steps[0])
	for i := 1; i < len(steps); {
		switch cur.Type() {
		case TypeContainer:
			c, err := ParseContainer(cur)
			if err != nil {
				return nil, err
			}
			if steps[i] >= uint32(c.Len()) {
				return NotFound, nil
			}
			cur = c.At(steps[i])
			i++
		case TypeMap:
			m, err := ParseMap(cur)
			if err != nil {
				return nil, err
			}
			cur = m.Get(steps[i])
			i++
		case TypeCompressed:
			child, err := Decompress(cur)
			if err != nil {
				return nil, err
			}
			cur = child
		default:
			return NotFound, nil
		}
	}
	return cur, nil
}

// Recipe resolves steps and wraps the result in a sub-Recipe. When the
// sub-tree carries no Library of its own, the sub-Recipe inherits this
// Recipe's Glossary, so name translation stays consistent while
// descending.
func (r *Recipe) Recipe(steps ...uint32) (*Recipe, error) {
	ing, err := r.Resolve(steps...)
	if err != nil {
		return nil, err
	}
	sub, err := NewRecipe(ing)
	if err != nil {
		return nil, err
	}
	if sub.glossary.Len() == 0 && r.glossary.Len() > 0 {
		sub.glossary = r.glossary
	}
	return sub, nil
}
