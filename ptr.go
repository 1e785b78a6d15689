package tinyptr

// Ptr is a compact, copyable, non-owning handle to a value of type T.
// It occupies one or two bytes (see ID) instead of a full native
// pointer. The zero value is the nil handle.
//
// A Ptr stays valid while its slot holds the value it was created for.
// Using it after Take fails fast; using it after the slot id has been
// reissued to an unrelated value observes that new value instead. The
// second case is the one unchecked boundary of this package and is a
// caller contract, exactly as with a dangling raw pointer.
type Ptr[T any] struct {
	id ID
}

// New copies v into a fresh slot of the process-wide table and returns
// a handle to it. Panics with ErrCapacityExhausted when no slot
// remains.
func New[T any](v T) Ptr[T] {
	id, err := memory().Insert(&v)
	if err != nil {
		panic(err)
	}
	return Ptr[T]{id: ID(id)}
}

// Get returns a pointer to the slot's value. The caller must ensure
// the slot is still live and that mutation through the returned
// pointer is properly synchronized; the handle enforces neither.
// Panics if the slot is out of range or already freed.
func (p Ptr[T]) Get() *T {
	v, err := memory().Access(uint32(p.id))
	if err != nil {
		panic(err)
	}
	return v.(*T)
}

// Take removes the value from the table and returns it. The handle,
// and every copy of it, is invalid afterwards.
func (p Ptr[T]) Take() T {
	v, err := memory().Take(uint32(p.id))
	if err != nil {
		panic(err)
	}
	return *(v.(*T))
}

// ID returns the raw slot identifier. Useful for diagnostics and
// hashing; handle equality is plain == on the Ptr value itself.
func (p Ptr[T]) ID() ID {
	return p.id
}

// IsNil reports whether p is the zero (null) handle.
func (p Ptr[T]) IsNil() bool {
	return p.id == 0
}
