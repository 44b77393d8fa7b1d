package cell

import (
	"reflect"
	"strconv"
	"unsafe"
)

// Slice views the elements of the slice held by c as cells.
//
// The result shares the backing array of the held slice, with the same
// length and capacity. No element is copied or moved. It reflects the
// slice header at the time of the call: if the held slice is later
// reassigned or grown past its capacity, the result keeps pointing at
// the old backing array.
func Slice[T any](c *Cell[[]T]) []Cell[T] {
	return FromSlice(c.v)
}

// Array views the array held by c as a slice of per-element cells.
//
// A must be an array type whose element type is T; Array panics
// otherwise. The result has len and cap equal to the array length and
// starts at the address of the cell, so
//
//	(*[4]cell.Cell[int])(cell.Array[int](c))
//
// yields a pointer to the same memory as c.
func Array[T, A any](c *Cell[A]) []Cell[T] {
	n := arrayLen[A, T]()
	if n == 0 {
		return []Cell[T]{}
	}
	return unsafe.Slice((*Cell[T])(unsafe.Pointer(&c.v)), n)
}

// FromArray views len(cs) adjacent cells as one cell holding an array.
//
// A must be an array type of len(cs) elements of type T; FromArray
// panics otherwise. The returned cell has the address of cs[0].
func FromArray[A, T any](cs []Cell[T]) *Cell[A] {
	n := arrayLen[A, T]()
	if len(cs) != n {
		panic("cell: FromArray length mismatch: " +
			reflect.TypeFor[A]().String() + " from " + strconv.Itoa(len(cs)) + " cells")
	}
	if n == 0 {
		return new(Cell[A])
	}
	return (*Cell[A])(unsafe.Pointer(unsafe.SliceData(cs)))
}

// FromSlice views a plain slice as a slice of cells over the same
// backing array.
func FromSlice[T any](s []T) []Cell[T] {
	if s == nil {
		return nil
	}
	p := (*Cell[T])(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.Slice(p, cap(s))[:len(s)]
}

// Values views a slice of cells as a plain slice over the same backing
// array.
func Values[T any](cs []Cell[T]) []T {
	if cs == nil {
		return nil
	}
	p := (*T)(unsafe.Pointer(unsafe.SliceData(cs)))
	return unsafe.Slice(p, cap(cs))[:len(cs)]
}

// Split partitions cs into n disjoint, contiguous parts of nearly equal
// length, in order. Each part's capacity is clipped to its length, so
// appending to one part reallocates instead of overwriting the next.
//
// Handing each part to a different goroutine is the intended way to
// mutate a projected collection in parallel. Split panics if n < 1.
// When n exceeds len(cs), the trailing parts are empty.
func Split[T any](cs []Cell[T], n int) [][]Cell[T] {
	if n < 1 {
		panic("cell: Split requires n >= 1, got " + strconv.Itoa(n))
	}
	parts := make([][]Cell[T], n)
	size, rem := len(cs)/n, len(cs)%n
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < rem {
			hi++
		}
		parts[i] = cs[lo:hi:hi]
		lo = hi
	}
	return parts
}

// arrayLen returns the length of array type A after checking that its
// element type is T.
func arrayLen[A, T any]() int {
	at, et := reflect.TypeFor[A](), reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic("cell: " + at.String() + " is not an array of " + et.String())
	}
	return at.Len()
}
