package cell

import (
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	X    int
	List []int
}

type mixedLayout struct {
	A uint8
	B int64
	C uint16
}

func TestCell_Size(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(uint8(0)), unsafe.Sizeof(Cell[uint8]{}))
	assert.Equal(t, unsafe.Alignof(uint8(0)), unsafe.Alignof(Cell[uint8]{}))

	assert.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(Cell[int64]{}))
	assert.Equal(t, unsafe.Alignof(int64(0)), unsafe.Alignof(Cell[int64]{}))

	assert.Equal(t, unsafe.Sizeof(mixedLayout{}), unsafe.Sizeof(Cell[mixedLayout]{}))
	assert.Equal(t, unsafe.Alignof(mixedLayout{}), unsafe.Alignof(Cell[mixedLayout]{}))

	assert.Equal(t, unsafe.Sizeof([10]uint16{}), unsafe.Sizeof(Cell[[10]uint16]{}))
	assert.Equal(t, unsafe.Sizeof([3]Cell[uint16]{}), unsafe.Sizeof([3]uint16{}))

	assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(Cell[string]{}))
	assert.Equal(t, unsafe.Sizeof([]int(nil)), unsafe.Sizeof(Cell[[]int]{}))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(Cell[struct{}]{}))
}

func TestCell_ZeroValue(t *testing.T) {
	var c Cell[testRecord]
	assert.Equal(t, 0, c.Get().X)
	assert.Nil(t, c.Get().List)

	var s Cell[string]
	assert.Equal(t, "", s.Get())
}

func TestCell_MutabilityPrimitive(t *testing.T) {
	c := New(10)
	*c.Ptr() = 11
	assert.Equal(t, 11, c.Ref().Get())
	assert.Equal(t, 11, *c.Ptr())
	assert.Equal(t, 11, c.Get())
}

func TestCell_MutabilityStruct(t *testing.T) {
	c := New(testRecord{})
	m := c.Ptr()
	m.X = 100
	want := make([]int, 0, 100)
	for i := range 100 {
		m.List = append(m.List, i)
		want = append(want, i)
	}

	r := c.Ref()
	assert.Equal(t, 100, r.Get().X)
	assert.Equal(t, want, r.Get().List)
	assert.Equal(t, 100, c.Ptr().X)
	assert.Equal(t, want, c.Ptr().List)
}

func TestCell_ViewsShareStorage(t *testing.T) {
	c := New(10)
	p1 := c.Ptr()
	p2 := c.Ptr()
	r := c.Ref()
	require.Same(t, p1, p2)

	*p1 = 11
	assert.Equal(t, 11, *p1)
	assert.Equal(t, *p1, *p2)
	assert.Equal(t, *p2, r.Get())

	c.Set(12)
	assert.Equal(t, 12, *p1)
	assert.Equal(t, 12, r.Get())
}

func TestCell_CrossGoroutineVisibility(t *testing.T) {
	c := New(10)
	p := c.Ptr()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(10 * time.Millisecond)
		*p = 11
	}()
	wg.Wait()

	assert.Equal(t, 11, c.Ref().Get())
	assert.Equal(t, 11, *c.Ptr())
}

func TestCell_ConcurrentReaders(t *testing.T) {
	c := New(testRecord{X: 7, List: []int{1, 2, 3}})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := c.Ref()
			for range 1000 {
				if v := r.Get(); v.X != 7 || len(v.List) != 3 {
					t.Errorf("unexpected value %+v", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCell_Make(t *testing.T) {
	cs := [3]Cell[string]{Make("a"), Make("b"), Make("c")}
	*cs[1].Ptr() = "B"
	assert.Equal(t, "a", cs[0].Get())
	assert.Equal(t, "B", cs[1].Get())
	assert.Equal(t, "c", cs[2].Get())
}

func TestCell_FromPtr(t *testing.T) {
	v := 5
	c := FromPtr(&v)
	require.Same(t, &v, c.Ptr())

	c.Set(6)
	assert.Equal(t, 6, v)
	v = 7
	assert.Equal(t, 7, c.Get())

	arr := [3]int{1, 2, 3}
	ac := FromPtr(&arr)
	for i := range Array[int](ac) {
		Array[int](ac)[i].Set(0)
	}
	assert.Equal(t, [3]int{}, arr)
}

func TestCell_Replace(t *testing.T) {
	c := New("old")
	assert.Equal(t, "old", c.Replace("new"))
	assert.Equal(t, "new", c.Get())
}

func TestCell_Take(t *testing.T) {
	c := New([]int{1, 2})
	r := c.Ref()
	assert.Equal(t, []int{1, 2}, c.Take())
	assert.Nil(t, c.Get())
	assert.Nil(t, r.Get())
}

func TestCell_Swap(t *testing.T) {
	a, b := New(1), New(2)
	pa := a.Ptr()
	a.Swap(b)
	assert.Equal(t, 2, a.Get())
	assert.Equal(t, 1, b.Get())
	assert.Equal(t, 2, *pa)

	a.Swap(a)
	assert.Equal(t, 2, a.Get())
}

func TestCell_Sharable(t *testing.T) {
	var s any = New(func() {})
	_, ok := s.(Sharable)
	assert.True(t, ok)

	s = new(Cell[chan int])
	_, ok = s.(Sharable)
	assert.True(t, ok)
}
