// Package selection holds the cross-page selection set and the bounded
// "select first N" accumulator that tops it up as pages load.
package selection

import "github.com/mmcdole/vitrine/internal/domain"

// Set is a collection of records keyed by ID.
// Iteration follows insertion order so the selection renders stably.
type Set struct {
	byID  map[int]domain.Artwork
	order []int
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{byID: make(map[int]domain.Artwork)}
}

// Len returns the number of selected records
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Has reports whether a record with the given ID is selected
func (s *Set) Has(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.byID[id]
	return ok
}

// Add inserts a record; returns false if its ID was already present
func (s *Set) Add(rec domain.Artwork) bool {
	if _, ok := s.byID[rec.ID]; ok {
		return false
	}
	s.byID[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return true
}

// Remove deletes the record with the given ID; returns false if absent
func (s *Set) Remove(id int) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the set
func (s *Set) Clear() {
	s.byID = make(map[int]domain.Artwork)
	s.order = nil
}

// Records returns the selected records in insertion order
func (s *Set) Records() []domain.Artwork {
	if s == nil {
		return nil
	}
	out := make([]domain.Artwork, len(s.order))
	for i, id := range s.order {
		out[i] = s.byID[id]
	}
	return out
}

// IDs returns the selected IDs in insertion order
func (s *Set) IDs() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy of the set
func (s *Set) Clone() *Set {
	c := NewSet()
	if s == nil {
		return c
	}
	for _, id := range s.order {
		c.Add(s.byID[id])
	}
	return c
}
