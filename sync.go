package tinyptr

import "sync/atomic"

// cell is what an Arc actually keeps in the slot table: the shared
// value together with its strong reference count. count == 0 means the
// cell is reserved by NewCyclic and not built yet.
type cell[T any] struct {
	count atomic.Int32
	value T
}

// Arc is an atomically reference-counted shared handle, the compact
// analogue of a shared pointer. Clone raises the count, Drop lowers
// it, and the decrement that reaches zero frees the slot and finalizes
// the value. Go's sync/atomic operations are sequentially consistent,
// so every write made through any clone happens before the final
// Drop's finalization.
type Arc[T any] struct {
	ptr Ptr[cell[T]]
}

// Weak observes an Arc allocation without keeping it alive. Weak
// values are plain copies; copying one never touches the count.
type Weak[T any] struct {
	ptr Ptr[cell[T]]
}

// NewArc allocates a slot holding v with an initial count of one.
func NewArc[T any](v T) Arc[T] {
	c := &cell[T]{value: v}
	c.count.Store(1)

	id, err := memory().Insert(c)
	if err != nil {
		panic(err)
	}
	return Arc[T]{ptr: Ptr[cell[T]]{id: ID(id)}}
}

// NewCyclic builds a value that must hold a handle to its own future
// allocation. It reserves a cell with count zero and a zero-value
// placeholder, hands build a Weak over it, stores the result, and only
// then publishes the cell with count one. Upgrading the Weak before
// build returns fails, so a partially built value can never escape.
func NewCyclic[T any](build func(Weak[T]) T) Arc[T] {
	c := &cell[T]{}

	id, err := memory().Insert(c)
	if err != nil {
		panic(err)
	}
	ptr := Ptr[cell[T]]{id: ID(id)}

	c.value = build(Weak[T]{ptr: ptr})
	c.count.Store(1)

	return Arc[T]{ptr: ptr}
}

// Get returns a pointer to the shared value, valid for as long as a
// strong reference exists. Panics with ErrNotBuilt while the cell is a
// NewCyclic reservation.
func (a Arc[T]) Get() *T {
	c := a.cell()
	if c.count.Load() == 0 {
		panic(ErrNotBuilt)
	}
	return &c.value
}

// Clone registers another strong reference to the same allocation.
func (a Arc[T]) Clone() Arc[T] {
	a.cell().count.Add(1)
	return a
}

// Drop releases one strong reference. The drop that brings the count
// to zero frees the slot and finalizes the value, exactly once.
func (a Arc[T]) Drop() {
	c := a.cell()
	if c.count.Add(-1) == 0 {
		v, err := memory().Take(uint32(a.ptr.id))
		if err != nil {
			panic(err)
		}
		taken := v.(*cell[T])
		finalize(&taken.value)
	}
}

// Is reports whether both handles point at the same allocation.
func (a Arc[T]) Is(other Arc[T]) bool {
	return a.ptr.id == other.ptr.id
}

// Downgrade returns a Weak over the same allocation without touching
// the count.
func (a Arc[T]) Downgrade() Weak[T] {
	return Weak[T]{ptr: a.ptr}
}

func (a Arc[T]) cell() *cell[T] {
	return a.ptr.Get()
}

// Upgrade attempts to turn the Weak into a strong handle. It fails
// once every strong handle has dropped, or while the allocation is
// still mid-NewCyclic. The count is raised with a compare-and-swap
// loop that refuses to move off zero, so a concurrent final Drop can
// never be raced into resurrecting a freed value.
func (w Weak[T]) Upgrade() (Arc[T], bool) {
	v, err := memory().Access(uint32(w.ptr.id))
	if err != nil {
		return Arc[T]{}, false
	}
	c := v.(*cell[T])

	for {
		n := c.count.Load()
		if n == 0 {
			return Arc[T]{}, false
		}
		if c.count.CompareAndSwap(n, n+1) {
			return Arc[T]{ptr: w.ptr}, true
		}
	}
}
