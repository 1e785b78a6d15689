//go:build tinyptr8

package tinyptr

// ID is the raw numeric slot identifier carried by every handle. This
// build (-tags tinyptr8) uses a 1-byte id.
type ID uint8

// MaxLive is the maximum number of simultaneously live handles.
const MaxLive = 1<<8 - 1
