package slab

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrCapacityExhausted is returned when no free slot remains and the
	// table is already at its configured maximum.
	ErrCapacityExhausted = errors.New("slab: no free slots; use a wider handle width or drop live handles")
	// ErrSlotOutOfRange is returned for id 0 or an id past the table end.
	ErrSlotOutOfRange = errors.New("slab: slot index out of range")
	// ErrSlotFreed is returned when the addressed slot holds no value.
	ErrSlotFreed = errors.New("slab: slot already freed")
)

// Table is a dense slot table with 1-based ids. Id 0 is reserved as the
// nil sentinel so a zero handle means "no handle".
//
// Values are stored type-erased; the generic handle types in the root
// package are the only place that casts back to a concrete type. The
// table performs no type checking of its own.
type Table struct {
	maxSlots uint32
	logger   *slog.Logger

	mu    sync.RWMutex
	slots []any // index = id-1; nil marks an empty slot

	freeMu sync.Mutex
	free   *roaring.Bitmap // reclaimed ids, reissued lowest-first

	inserts atomic.Uint64
	takes   atomic.Uint64
	reuses  atomic.Uint64
}

// Stats is a point-in-time snapshot of table usage.
type Stats struct {
	Inserts  uint64 // values ever inserted
	Takes    uint64 // values ever taken back out
	Reuses   uint64 // inserts that recycled a freed id
	Live     int    // occupied slots right now
	TableLen int    // slots ever grown (high-water mark)
	FreeIDs  int    // reclaimed ids awaiting reuse
}

func (s Stats) String() string {
	return fmt.Sprintf("Table{live: %d, len: %d, free: %d, inserts: %d, takes: %d, reuses: %d}",
		s.Live, s.TableLen, s.FreeIDs, s.Inserts, s.Takes, s.Reuses)
}

// Option is a configuration option for Table.
type Option func(*Table)

// WithLogger sets the logger used for table diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a table capped at maxSlots simultaneously live slots.
func New(maxSlots uint32, opts ...Option) *Table {
	t := &Table{
		maxSlots: maxSlots,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		free:     roaring.New(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// MaxSlots returns the configured live-slot maximum.
func (t *Table) MaxSlots() uint32 {
	return t.maxSlots
}

// Insert stores v in a slot and returns its id. A reclaimed id is
// reused when one exists; otherwise the table grows by one. Fails with
// ErrCapacityExhausted once the table is full and nothing was freed.
func (t *Table) Insert(v any) (uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.freeMu.Lock()
	if !t.free.IsEmpty() {
		id := t.free.Minimum()
		t.free.Remove(id)
		t.freeMu.Unlock()

		t.slots[id-1] = v
		t.reuses.Add(1)
		t.inserts.Add(1)
		return id, nil
	}
	t.freeMu.Unlock()

	if uint32(len(t.slots)) >= t.maxSlots {
		t.logger.Warn("slab table exhausted", "max_slots", t.maxSlots)
		return 0, fmt.Errorf("%w (max %d live)", ErrCapacityExhausted, t.maxSlots)
	}

	t.slots = append(t.slots, v)
	t.inserts.Add(1)
	return uint32(len(t.slots)), nil
}

// Access returns the value stored in the slot. It takes only the read
// lock, so concurrent readers never block each other.
func (t *Table) Access(id uint32) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if id == 0 || id > uint32(len(t.slots)) {
		return nil, fmt.Errorf("%w: id %d, table length %d", ErrSlotOutOfRange, id, len(t.slots))
	}

	v := t.slots[id-1]
	if v == nil {
		return nil, fmt.Errorf("%w: id %d", ErrSlotFreed, id)
	}

	return v, nil
}

// Take removes and returns the slot's value and queues the id for
// reuse. Further Access or Take on the same id fails until the id is
// reissued to an unrelated insert.
func (t *Table) Take(id uint32) (any, error) {
	t.mu.Lock()

	if id == 0 || id > uint32(len(t.slots)) {
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d, table length %d", ErrSlotOutOfRange, id, len(t.slots))
	}

	v := t.slots[id-1]
	if v == nil {
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", ErrSlotFreed, id)
	}
	t.slots[id-1] = nil
	t.mu.Unlock()

	t.freeMu.Lock()
	t.free.Add(id)
	t.freeMu.Unlock()

	t.takes.Add(1)
	return v, nil
}

// Live returns the number of currently occupied slots.
func (t *Table) Live() int {
	return t.Stats().Live
}

// Stats returns a snapshot of the table's usage counters.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	tableLen := len(t.slots)
	t.mu.RUnlock()

	t.freeMu.Lock()
	freeIDs := int(t.free.GetCardinality())
	t.freeMu.Unlock()

	return Stats{
		Inserts:  t.inserts.Load(),
		Takes:    t.takes.Load(),
		Reuses:   t.reuses.Load(),
		Live:     tableLen - freeIDs,
		TableLen: tableLen,
		FreeIDs:  freeIDs,
	}
}
