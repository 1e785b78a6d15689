package testutil

import "sync/atomic"

// Finalizer counts Close calls. Embed a *Finalizer (by pointer, so the
// counter survives the value copies the slot table makes) in a value
// handed to tinyptr, then assert how often the table finalized it.
type Finalizer struct {
	closed atomic.Int64
}

// Close records one finalization. It never fails.
func (f *Finalizer) Close() error {
	f.closed.Add(1)
	return nil
}

// Closed returns how many times Close ran.
func (f *Finalizer) Closed() int64 {
	return f.closed.Load()
}
