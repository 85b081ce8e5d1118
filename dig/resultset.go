// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"sync"

	"github.com/siemens/subdig/types"
)

// ResultSet collects the resolution results of a single batch, deduplicating
// them by value: the same subdomain with the same outcome is kept only once.
// ResultSet is safe for concurrent use.
type ResultSet struct {
	mu sync.Mutex
	m  map[types.Key]types.Result
}

// NewResultSet returns a new and properly initialized ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		m: map[types.Key]types.Result{},
	}
}

// Add a result to the set, returning false if the same result was already in
// the set.
func (s *ResultSet) Add(result types.Result) bool {
	key := result.Key()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[key]; ok {
		return false
	}
	s.m[key] = result
	return true
}

// Len returns the number of unique results in the set.
func (s *ResultSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Get returns all unique results, in no particular order.
func (s *ResultSet) Get() []types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]types.Result, 0, len(s.m))
	for _, result := range s.m {
		results = append(results, result)
	}
	return results
}
