package tinyptr

import "io"

// finalize runs the value's Close hook, if it has one. This is the Go
// stand-in for a destructor: Box.Drop and the final Arc.Drop call it
// exactly once per stored value. Close errors are discarded; a freed
// value has no caller left to report to.
func finalize[T any](v *T) {
	if c, ok := any(v).(io.Closer); ok {
		_ = c.Close()
	}
}
