// Package tinyptr shrinks pointers to one or two bytes.
//
// Values live in a single process-wide slot table and are referenced
// by a small index instead of a native 8-byte pointer. For
// pointer-dense structures (large trees, graphs, intrusive lists of
// millions of tiny nodes) this cuts the per-link cost from 8 bytes to
// 1 or 2, at the price of a fixed maximum number of live values and an
// extra table lookup per access.
//
// # Handle types
//
//	Ptr[T]   raw, copyable, non-owning handle
//	Box[T]   single-owner handle; Drop frees deterministically
//	Arc[T]   atomically reference-counted shared handle
//	Weak[T]  non-owning observer of an Arc allocation
//
// # Quick start
//
//	b := tinyptr.NewBox(42)
//	*b.Get() += 5 // 47
//	b.Drop()
//
//	a := tinyptr.NewArc("shared")
//	c := a.Clone()
//	fmt.Println(*c.Get())
//	c.Drop()
//	a.Drop()
//
// # Width
//
// The id width is fixed at build time: 2 bytes (65535 live handles) by
// default, 1 byte (255) with -tags tinyptr8. The zero Ptr is the nil
// handle, so an optional handle costs no extra storage.
//
// # Finalization
//
// Go has no destructors, so freeing is explicit: Box.Drop and the
// final Arc.Drop remove the value from the table and, when its pointer
// type implements io.Closer, call Close exactly once.
//
// # Safety
//
// Using a handle after its slot was freed fails fast with a panic
// carrying one of the package's sentinel errors. A handle whose slot
// has been freed and then reissued observes the new occupant instead;
// avoiding that is a caller contract, exactly as with a dangling raw
// pointer.
package tinyptr
