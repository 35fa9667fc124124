package ids

import "fortio.org/safecast"

// ID constrains the identifier types a Vector can be keyed by.
type ID interface {
	~uint32
}

// Vector is a dense arena addressed by a strongly typed identifier.
// Push assigns the next identifier; an identifier is never reused within
// one crate snapshot. The underlying slice representation keeps the
// serialized form a plain list.
type Vector[I ID, T any] []T

// Push appends an element and returns the identifier assigned to it.
func (v *Vector[I, T]) Push(elem T) I {
	id := safecast.MustConvert[uint32](len(*v))
	*v = append(*v, elem)
	return I(id)
}

// Get returns a pointer to the element with the given identifier, or
// false if the identifier is out of range.
func (v Vector[I, T]) Get(id I) (*T, bool) {
	if int(id) >= len(v) {
		return nil, false
	}
	return &v[id], true
}

// Len returns the number of elements.
func (v Vector[I, T]) Len() int {
	return len(v)
}

// NextID returns the identifier the next Push will assign.
func (v Vector[I, T]) NextID() I {
	return I(safecast.MustConvert[uint32](len(v)))
}

// Iter calls yield for each (identifier, element) pair in order,
// stopping early if yield returns false.
func (v Vector[I, T]) Iter(yield func(I, *T) bool) {
	for i := range v {
		if !yield(I(safecast.MustConvert[uint32](i)), &v[i]) {
			return
		}
	}
}
