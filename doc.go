/*
Package watson implements the WatSON binary value format: a compact,
self-describing, type-tagged encoding together with the composite
structures built on top of it and a name-aware navigation layer.

The fundamental unit is the Ingredient, a byte range holding a type
marker, an optional size field, and a payload. Because the size field
stores the total encoded length of the unit, composite values are plain
concatenations of their children: a reader advances through them with no
separators or external framing.

Composites come in four flavors. A Container is an ordered sequence of
Ingredients. A Library is an ordered table of strings, sharing the
Container's wire layout. A Map associates uint32 keys with Ingredients.
A Compressed value wraps exactly one child Ingredient through snappy.
The Bytes type carries opaque application data behind a 4-byte hint.

The Recipe type wraps a top-level Container and, when one of its direct
children is a Library, builds a Glossary from it so that callers can
translate human-readable names to the small integer keys used by Maps
and back. Recipe navigation walks a path of integer steps through
nested Containers, Maps, and Compressed values, transparently
decompressing along the way.

Absence of data is a value, not an error: lookups that miss return the
NotFound sentinel, a null Ingredient the caller must check before
descending further. Structural violations of the wire format, by
contrast, surface as ErrMalformed, ErrTruncated, or ErrCorrupt.

Ingredients are immutable once built. Owned Ingredients are safe to
share across goroutines for reading; views borrow the caller's buffer
and are only as long-lived as that buffer.
*/
package watson
