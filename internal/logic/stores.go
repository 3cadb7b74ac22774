package logic

import (
	"strconv"
	"sync"

	"expodir/internal/domain"
)

// MemoryReferenceStore is an in-memory implementation of ReferenceStore.
// Tables keep the order the API returned them in.
type MemoryReferenceStore struct {
	mu         sync.RWMutex
	industries termTable
	countries  termTable
}

type termTable struct {
	ordered []domain.Term
	byID    map[int]domain.Term
}

func newTermTable(terms []domain.Term) termTable {
	t := termTable{
		ordered: make([]domain.Term, len(terms)),
		byID:    make(map[int]domain.Term, len(terms)),
	}
	copy(t.ordered, terms)
	for _, term := range terms {
		t.byID[term.ID] = term
	}
	return t
}

// NewMemoryReferenceStore creates a new memory-based reference store
func NewMemoryReferenceStore() *MemoryReferenceStore {
	return &MemoryReferenceStore{
		industries: newTermTable(nil),
		countries:  newTermTable(nil),
	}
}

func (s *MemoryReferenceStore) Industries() []domain.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Term(nil), s.industries.ordered...)
}

func (s *MemoryReferenceStore) Countries() []domain.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Term(nil), s.countries.ordered...)
}

func (s *MemoryReferenceStore) Industry(id int) (domain.Term, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.industries.byID[id]
	return t, ok
}

func (s *MemoryReferenceStore) Country(id int) (domain.Term, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.countries.byID[id]
	return t, ok
}

func (s *MemoryReferenceStore) SetIndustries(terms []domain.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.industries = newTermTable(terms)
}

func (s *MemoryReferenceStore) SetCountries(terms []domain.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = newTermTable(terms)
}

// IndustryNames resolves ids to names, skipping unknown ids
func IndustryNames(store ReferenceStore, ids []int) []string {
	return names(ids, store.Industry)
}

// CountryNames resolves ids to names, skipping unknown ids
func CountryNames(store ReferenceStore, ids []int) []string {
	return names(ids, store.Country)
}

func names(ids []int, lookup func(int) (domain.Term, bool)) []string {
	var out []string
	for _, id := range ids {
		if t, ok := lookup(id); ok {
			out = append(out, t.Name)
		}
	}
	return out
}

// BadgeLabel returns the term name, or "#<id>" when the id is unknown
func BadgeLabel(lookup func(int) (domain.Term, bool), id int) string {
	if t, ok := lookup(id); ok {
		return t.Name
	}
	return "#" + strconv.Itoa(id)
}
