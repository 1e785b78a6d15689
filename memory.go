package tinyptr

import (
	"log/slog"
	"sync"

	"github.com/hupe1980/tinyptr/internal/slab"
)

// memory returns the process-wide slot table, created on first use.
// Its capacity is fixed by the handle width selected at build time.
var memory = sync.OnceValue(func() *slab.Table {
	return slab.New(MaxLive, slab.WithLogger(slog.Default()))
})

// Stats is a snapshot of process-wide handle usage.
type Stats struct {
	Inserts  uint64 // values ever inserted
	Takes    uint64 // values ever freed
	Reuses   uint64 // inserts that recycled a freed id
	Live     int    // occupied slots right now
	TableLen int    // slots ever grown (high-water mark)
	FreeIDs  int    // reclaimed ids awaiting reuse
}

// ReadStats reports usage of the process-wide slot table.
func ReadStats() Stats {
	s := memory().Stats()
	return Stats{
		Inserts:  s.Inserts,
		Takes:    s.Takes,
		Reuses:   s.Reuses,
		Live:     s.Live,
		TableLen: s.TableLen,
		FreeIDs:  s.FreeIDs,
	}
}
