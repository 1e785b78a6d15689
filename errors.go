package tinyptr

import (
	"errors"

	"github.com/hupe1980/tinyptr/internal/slab"
)

// Every failure in this package is a caller contract violation and is
// delivered by panic, never returned. The panic value wraps one of the
// sentinels below, so recovered values can be matched with errors.Is.
var (
	// ErrCapacityExhausted reports an insert with no free slot and the
	// table already at its width-determined maximum.
	ErrCapacityExhausted = slab.ErrCapacityExhausted

	// ErrSlotOutOfRange reports a handle whose id is zero or past the
	// end of the table.
	ErrSlotOutOfRange = slab.ErrSlotOutOfRange

	// ErrSlotFreed reports a handle whose slot was already freed.
	ErrSlotFreed = slab.ErrSlotFreed

	// ErrNotBuilt reports a dereference of an Arc whose NewCyclic
	// construction has not committed yet.
	ErrNotBuilt = errors.New("tinyptr: shared value not built yet")
)
