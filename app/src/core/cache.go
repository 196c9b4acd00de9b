package core

import (
	"sync/atomic"

	"carbon-backend/app/src/domain"
)

// LatestCache is a single-slot, last-write-wins holder of the most
// recently accepted measurement. Readers always observe a fully-formed
// measurement; concurrent writers may interleave in an order that differs
// from network arrival, which is an accepted weak-consistency property of
// the fast path.
type LatestCache struct {
	slot atomic.Pointer[domain.Measurement]
}

// NewLatestCache returns an empty cache.
func NewLatestCache() *LatestCache {
	return &LatestCache{}
}

// Set replaces the cached measurement. The slot is replaced, never merged.
func (c *LatestCache) Set(m domain.Measurement) {
	c.slot.Store(&m)
}

// Get returns the cached measurement, or false before the first Set.
func (c *LatestCache) Get() (domain.Measurement, bool) {
	p := c.slot.Load()
	if p == nil {
		return domain.Measurement{}, false
	}
	return *p, true
}
