package store

import "shoplist/internal/domain"

// Memory keeps lists in a map keyed by normalized name, with a parallel
// slice recording insertion order for display.
type Memory struct {
	lists map[string]*domain.List
	order []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{lists: make(map[string]*domain.List)}
}

// Save stores the list under key. A key seen for the first time is appended
// to the display order; saving an existing key replaces the list in place.
func (s *Memory) Save(key string, list *domain.List) {
	if _, exists := s.lists[key]; !exists {
		s.order = append(s.order, key)
	}
	s.lists[key] = list
}

// Load returns the list stored under key, if any.
func (s *Memory) Load(key string) (*domain.List, bool) {
	list, ok := s.lists[key]
	return list, ok
}

// All returns the stored lists in insertion order.
func (s *Memory) All() []*domain.List {
	out := make([]*domain.List, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.lists[key])
	}
	return out
}

// Len returns the number of stored lists.
func (s *Memory) Len() int { return len(s.order) }

// Compile-time assertion that Memory implements domain.ListStore.
var _ domain.ListStore = (*Memory)(nil)
