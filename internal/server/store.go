package server

import (
	"sync"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/model"
)

// Store guards a chart for concurrent HTTP handlers. Lookups share a read
// lock; adding accounts takes the write lock.
type Store struct {
	mu    sync.RWMutex
	chart *accounts.Chart
}

// NewStore wraps chart. The caller must not use chart directly afterwards.
func NewStore(chart *accounts.Chart) *Store {
	if chart == nil {
		chart = accounts.NewChart()
	}
	return &Store{chart: chart}
}

// Get returns a copy of the account with the given ID.
func (s *Store) Get(id string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart.Get(id)
}

// IDs returns every account ID, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart.SortedIDs()
}

// Count returns the number of distinct account IDs.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart.Count()
}

// AddTopLevelAccount appends acct as a new root.
func (s *Store) AddTopLevelAccount(acct model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart.AddTopLevelAccount(acct)
}
