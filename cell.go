package cell

import (
	"unsafe"
)

// Sharable is a type trait indicating a value may be shared by, and
// moved between, multiple goroutines. For Cell the declaration is
// unconditional; see the package safety contract.
type Sharable interface {
	Sharable()
}

// Cell holds one value of type T and gives out aliased, unchecked,
// mutable access to it through a shared *Cell.
//
// The zero Cell wraps the zero value of T and is ready to use.
// Copying a Cell copies the value; views taken before the copy keep
// pointing at the original.
type Cell[T any] struct {
	v T
}

var _ Sharable = (*Cell[struct{}])(nil)

// New returns a new cell owning v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Make returns a cell owning v by value, for embedding cells in
// arrays, slices and structs.
func Make[T any](v T) Cell[T] {
	return Cell[T]{v: v}
}

// FromPtr views the storage at p as a cell. No copy is made: the cell
// and *p are the same memory.
func FromPtr[T any](p *T) *Cell[T] {
	return (*Cell[T])(unsafe.Pointer(p))
}

// Sharable implements Sharable.
func (*Cell[T]) Sharable() {}

// Ptr returns a mutable view of the held value.
//
// Any number of pointers returned by Ptr may be alive at once. The
// caller must ensure that writes through them are not concurrent with
// any other access to the same value.
//
//go:nosplit
func (c *Cell[T]) Ptr() *T {
	return &c.v
}

// Ref returns a read-only view of the held value. The view aliases
// the cell's storage, so it observes every later write.
//
//go:nosplit
func (c *Cell[T]) Ref() Ref[T] {
	return Ref[T]{p: &c.v}
}

// Get returns a copy of the held value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set overwrites the held value.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Replace stores v and returns the previous value.
func (c *Cell[T]) Replace(v T) (old T) {
	old, c.v = c.v, v
	return old
}

// Take returns the held value and leaves the zero value in its place.
func (c *Cell[T]) Take() T {
	var zero T
	return c.Replace(zero)
}

// Swap exchanges the values of c and other. Swapping a cell with
// itself is a no-op.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other {
		return
	}
	c.v, other.v = other.v, c.v
}

// Ref is a read-only view of a cell's value. It is a pointer-sized
// handle; copying it does not copy the value.
type Ref[T any] struct {
	p *T
}

// Get reads the value the view points at.
func (r Ref[T]) Get() T {
	return *r.p
}
