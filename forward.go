package cell

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// Equal reports whether a and b hold equal values, as == on the bare
// values would.
func Equal[T comparable](a, b *Cell[T]) bool {
	return a.v == b.v
}

// EqualFunc is like Equal but uses eq on the held values.
func EqualFunc[T any](a, b *Cell[T], eq func(x, y T) bool) bool {
	return eq(a.v, b.v)
}

// Compare compares the held values with cmp.Compare.
func Compare[T cmp.Ordered](a, b *Cell[T]) int {
	return cmp.Compare(a.v, b.v)
}

// Less reports whether a's value is less than b's, with cmp.Less
// semantics.
func Less[T cmp.Ordered](a, b *Cell[T]) bool {
	return cmp.Less(a.v, b.v)
}

// CompareFunc compares the held values with a caller-supplied ordering,
// for element types that are not cmp.Ordered.
func CompareFunc[T any](a, b *Cell[T], cmp func(x, y T) int) int {
	return cmp(a.v, b.v)
}

// Hash returns the same hash as maphash.Comparable(seed, v) for the
// held value v.
func Hash[T comparable](seed maphash.Seed, c *Cell[T]) uint64 {
	return maphash.Comparable(seed, c.v)
}

// WriteHash adds the held value to h, exactly as
// maphash.WriteComparable(h, v) would.
func WriteHash[T comparable](h *maphash.Hash, c *Cell[T]) {
	maphash.WriteComparable(h, c.v)
}

// Format implements fmt.Formatter. Every verb and flag is applied to
// the held value, so a Cell prints exactly like the value it holds,
// also as an element of a []Cell[T].
func (c Cell[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), c.v)
}

// String implements fmt.Stringer.
func (c Cell[T]) String() string {
	return fmt.Sprint(c.v)
}

type cloner[T any] interface {
	Clone() T
}

// Clone returns a new cell holding a copy of c's value. If T or *T has a
// method Clone() T, it is used to make the copy; otherwise the value is
// copied by assignment, which is shallow for pointers, slices and maps.
func (c *Cell[T]) Clone() *Cell[T] {
	if cl, ok := any(c.v).(cloner[T]); ok {
		return New(cl.Clone())
	}
	if cl, ok := any(&c.v).(cloner[T]); ok {
		return New(cl.Clone())
	}
	return New(c.v)
}
