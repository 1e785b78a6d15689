package tinyptr

// Box is a single-owner handle: exactly one logical owner exists per
// slot, which is what makes Get aliasing-safe at this layer. Go cannot
// enforce the discipline itself; copying a Box and dropping both
// copies is a contract violation.
type Box[T any] struct {
	ptr Ptr[T]
}

// NewBox allocates a slot holding v.
func NewBox[T any](v T) Box[T] {
	return Box[T]{ptr: New(v)}
}

// Get returns a pointer to the boxed value, for reading or mutation.
func (b Box[T]) Get() *T {
	return b.ptr.Get()
}

// Clone allocates an independent slot holding a copy of the value. The
// copy is a plain Go value copy; the two boxes never share storage and
// free independently.
func (b Box[T]) Clone() Box[T] {
	return NewBox(*b.ptr.Get())
}

// Take removes the value from the table and hands ownership back to
// the caller without finalizing it. The box is invalid afterwards.
func (b Box[T]) Take() T {
	return b.ptr.Take()
}

// Drop frees the slot and finalizes the value (see Finalization in the
// package docs). The box is invalid afterwards.
func (b Box[T]) Drop() {
	v := b.ptr.Take()
	finalize(&v)
}
