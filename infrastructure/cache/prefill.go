// Package cache holds the in-process stores used on the hot request path.
package cache

import (
	"sync"

	"github.com/safarind/umrah-marketplace-api/internal/domain"
)

// PrefillCache stores the last captured contact details per device so the
// next booking form on the same device can be pre-filled without a network
// round-trip. Entries have no expiry; they live until explicitly cleared.
type PrefillCache struct {
	mu      sync.RWMutex
	entries map[string]domain.PrefillEntry
}

func NewPrefillCache() *PrefillCache {
	return &PrefillCache{
		entries: make(map[string]domain.PrefillEntry),
	}
}

// Put overwrites the entry for deviceID. Repeat bookings keep only the
// latest contact details.
func (c *PrefillCache) Put(deviceID string, entry domain.PrefillEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[deviceID] = entry
}

// Get returns the entry for deviceID, if present.
func (c *PrefillCache) Get(deviceID string) (domain.PrefillEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[deviceID]
	return entry, ok
}

// Clear removes the entry for deviceID.
func (c *PrefillCache) Clear(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, deviceID)
}
