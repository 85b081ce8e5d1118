// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"sync"

	"github.com/siemens/subdig/types"
)

// Cache caches resolution outcomes by subdomain so that subdomains aren't
// queried again during the same pipeline run. A Cache is never evicted: its
// lifetime is that of the pipeline run owning it.
type Cache struct {
	mu   sync.Mutex
	m    map[string]types.Outcome // subdomain -> outcome
	hits int
}

// NewCache returns a new and empty Cache object.
func NewCache() *Cache {
	return &Cache{
		m: map[string]types.Outcome{},
	}
}

// Get returns the cached outcome for the specified subdomain, if any.
func (c *Cache) Get(subdomain string) (types.Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outcome, ok := c.m[subdomain]
	if ok {
		c.hits++
	}
	return outcome, ok
}

// Put caches the outcome for the specified subdomain. When racing lookups of
// the same subdomain both put their outcomes, then the last put wins.
func (c *Cache) Put(subdomain string, outcome types.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[subdomain] = outcome
}

// Len returns the number of cached outcomes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Hits returns how often Get found a cached outcome.
func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}
