// Package store holds the in-memory ordered set of leads behind the list view.
package store

import (
	"sync"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// Store is the single source of truth for the currently loaded page of leads.
// Every mutation keeps ids unique. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	leads      []domain.Lead
	index      map[string]int
	page       int
	totalPages int
}

// New returns an empty store positioned on page 1 of an unknown listing.
func New() *Store {
	return &Store{
		index: make(map[string]int),
		page:  1,
	}
}

// ReplacePage overwrites the set with a freshly fetched page. Later
// duplicates of an id within the page are dropped.
func (s *Store) ReplacePage(leads []domain.Lead, page, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = make([]domain.Lead, 0, len(leads))
	s.index = make(map[string]int, len(leads))
	for _, l := range leads {
		if _, dup := s.index[l.ID]; dup {
			continue
		}
		s.index[l.ID] = len(s.leads)
		s.leads = append(s.leads, l)
	}
	s.page = page
	s.totalPages = totalPages
}

// Insert appends a newly created lead. A lead whose id is already present
// replaces the existing entry in place.
func (s *Store) Insert(lead domain.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[lead.ID]; ok {
		s.leads[i] = lead
		return
	}
	s.index[lead.ID] = len(s.leads)
	s.leads = append(s.leads, lead)
}

// Replace overwrites the lead stored under id. It reports false and does
// nothing when id is absent. The stored id is kept.
func (s *Store) Replace(id string, lead domain.Lead) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	lead.ID = id
	s.leads[i] = lead
	return true
}

// Remove deletes the lead stored under id and reports whether it was present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.leads = append(s.leads[:i], s.leads[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.leads); j++ {
		s.index[s.leads[j].ID] = j
	}
	return true
}

// All returns a copy of the stored leads in order.
func (s *Store) All() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Get returns the lead stored under id.
func (s *Store) Get(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Lead{}, false
	}
	return s.leads[i], true
}

// Len returns the number of stored leads.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// Page returns the page number and total page count of the last replaced page.
func (s *Store) Page() (page, totalPages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page, s.totalPages
}
