// Package cell provides Cell, a wrapper that hands out mutable access to
// its value through a shared pointer, without locks and without any
// bookkeeping of how many views are alive.
//
// It is meant as a building block for arenas, lock-free containers and
// caches that mutate shared state from several call sites or goroutines
// and have already proven, by their own logic, that those accesses do not
// conflict. Cell is a mechanism, not a policy: it never synchronizes,
// never counts references and never detects races.
//
// # Layout
//
// A Cell[T] has exactly the size and alignment of T. This is what allows
// a cell wrapping an array or slice to be viewed as a sequence of
// per-element cells (see Array and Slice) without copying and without
// moving the data.
//
// # Safety contract
//
// The caller, not the cell, is responsible for the following:
//
//   - No goroutine reads or writes through any view while another
//     goroutine writes to the same storage, unless some external
//     synchronization orders the two accesses. Ptr, Ref and the
//     projections do not check this.
//   - No view is used after the storage holding the cell is reused
//     (for example after a projected element slice is re-sliced over
//     different memory, or an arena slot is recycled).
//
// Violating either rule is a data race. The consequences are those of any
// Go data race: torn reads, lost writes, and for multi-word values such as
// strings, slices and interfaces, memory corruption. Building with -race
// reports such violations; the cell itself never does.
//
// Every *Cell implements Sharable unconditionally, regardless of T. This
// is a declaration made on the caller's behalf, not a property derived
// from T.
package cell
