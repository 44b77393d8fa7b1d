package cell

// Padded is a Cell followed by one cache line of padding. In a
// []Padded[T], the values of neighbouring elements never share a cache
// line, so goroutines that each own one element do not slow each other
// down through false sharing.
//
// Padded trades the layout guarantee of Cell for that isolation: it is
// larger than T and cannot be used with Array, Slice or Values. Use the
// embedded Cell for views.
type Padded[T any] struct {
	Cell[T]
	//lint:ignore U1000 prevents false sharing
	pad [CacheLineSize]byte
}

// NewPadded returns one padded cell per value, in order.
func NewPadded[T any](vs ...T) []Padded[T] {
	ps := make([]Padded[T], len(vs))
	for i, v := range vs {
		ps[i].v = v
	}
	return ps
}
