package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/gogpu/pulse"
)

// Cache holds widget snapshots across rebuild cycles.
//
// The cache is single-owner: only the cycle driver mutates it, and all
// mutation happens sequentially within a cycle. The statistics counters are
// atomic so monitoring code may read [Cache.Stats] from other goroutines.
//
// A cycle runs BeginCycle → per-widget claims → EndCycle. Claiming is the
// duplicate-identity check point: at most one claim per identity per cycle.
// EndCycle evicts every snapshot whose identity was not claimed during the
// just-completed cycle, preventing unbounded growth across tree
// restructuring.
type Cache struct {
	entries map[pulse.Identity]*Snapshot
	cycle   uint64
	open    bool

	// Statistics (atomic for zero-allocation reads)
	carried   atomic.Uint64
	created   atomic.Uint64
	evictions atomic.Uint64
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Snapshots is the number of live snapshots.
	Snapshots int
	// Carried counts claims that found an existing snapshot.
	Carried uint64
	// Created counts claims that allocated a fresh snapshot.
	Created uint64
	// Evictions counts snapshots removed by EndCycle.
	Evictions uint64
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[pulse.Identity]*Snapshot)}
}

// BeginCycle starts a new rebuild cycle. No side effects beyond
// bookkeeping: nothing is evicted or created here.
func (c *Cache) BeginCycle() {
	c.cycle++
	c.open = true
}

// LookupOrCreate returns the snapshot for id, claiming the identity for the
// current cycle. An existing snapshot is carried over; otherwise a fresh,
// empty one is allocated.
//
// Claiming an identity twice within one open cycle is a programmer error in
// the widget tree and returns a [pulse.DuplicateIdentityError]; there is no
// silent merge.
func (c *Cache) LookupOrCreate(id pulse.Identity) (*Snapshot, error) {
	if s, ok := c.entries[id]; ok {
		if c.open && s.lastSeen == c.cycle {
			return nil, &pulse.DuplicateIdentityError{Identity: id}
		}
		s.lastSeen = c.cycle
		c.carried.Add(1)
		return s, nil
	}
	s := &Snapshot{id: id, lastSeen: c.cycle}
	c.entries[id] = s
	c.created.Add(1)
	return s, nil
}

// StepAnimation claims id and advances its animation in one call. See
// [Snapshot.StepAnimation] for the continuity and restart semantics.
//
// Like LookupOrCreate, a second claim of id within one cycle returns a
// [pulse.DuplicateIdentityError]. Widgets already holding their snapshot
// should call [Snapshot.StepAnimation] instead.
func (c *Cache) StepAnimation(id pulse.Identity, signature uint64, now time.Time) (time.Duration, error) {
	s, err := c.LookupOrCreate(id)
	if err != nil {
		return 0, err
	}
	return s.StepAnimation(signature, now), nil
}

// EndCycle completes the cycle and evicts every snapshot whose identity was
// not claimed during it.
//
// EndCycle is idempotent: calling it again without an intervening
// BeginCycle is a no-op, so a snapshot is never evicted twice.
func (c *Cache) EndCycle() {
	if !c.open {
		return
	}
	c.open = false
	for id, s := range c.entries {
		if s.lastSeen != c.cycle {
			delete(c.entries, id)
			c.evictions.Add(1)
		}
	}
}

// AbortCycle closes a failed cycle without evicting anything. Widgets that
// never got their turn keep their snapshots, preserving animation
// continuity for the retry.
func (c *Cache) AbortCycle() {
	c.open = false
}

// Contains reports whether a snapshot exists for id. Does not claim.
func (c *Cache) Contains(id pulse.Identity) bool {
	_, ok := c.entries[id]
	return ok
}

// Len returns the number of live snapshots.
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns current cache statistics.
// The counters are read atomically and may be sampled concurrently.
func (c *Cache) Stats() Stats {
	return Stats{
		Snapshots: len(c.entries),
		Carried:   c.carried.Load(),
		Created:   c.created.Load(),
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets the claim and eviction counters to zero.
func (c *Cache) ResetStats() {
	c.carried.Store(0)
	c.created.Store(0)
	c.evictions.Store(0)
}
