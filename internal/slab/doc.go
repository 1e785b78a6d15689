// Package slab implements the slot table behind every tinyptr handle.
//
// A Table stores type-erased values in a dense, 1-based slot table and
// hands out small integer ids. Freed ids go into a roaring bitmap and
// are reissued lowest-first, so the id space stays dense and capacity
// is bounded by live values, not by historical inserts.
//
// # Concurrency Model
//
// The slot table is guarded by an RWMutex: Access takes the read lock
// (concurrent readers never block each other), Insert and Take take
// the write lock. The free set has its own mutex; Insert acquires it
// while holding the table lock, Take acquires it after releasing the
// table lock, so the two locks never interleave in both orders.
//
// All methods return errors instead of panicking; the public handle
// types in the root package convert them to fail-fast panics.
package slab
