//go:build !tinyptr8

package tinyptr

// ID is the raw numeric slot identifier carried by every handle. The
// default build uses a 2-byte id; build with -tags tinyptr8 for the
// 1-byte variant.
type ID uint16

// MaxLive is the maximum number of simultaneously live handles.
const MaxLive = 1<<16 - 1
