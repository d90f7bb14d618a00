package selection

import (
	"strconv"
	"strings"

	"github.com/mmcdole/vitrine/internal/domain"
)

// Candidates returns the records that a reconciliation pass would add:
// the first need = target - |sel| records of page not already selected,
// in page order. Returns nil when need <= 0 or the page is empty.
func Candidates(sel *Set, target int, page []domain.Artwork) []domain.Artwork {
	need := target - sel.Len()
	if need <= 0 || len(page) == 0 {
		return nil
	}

	var picked []domain.Artwork
	seen := make(map[int]struct{}, need)
	for _, rec := range page {
		if len(picked) == need {
			break
		}
		if sel.Has(rec.ID) {
			continue
		}
		// A page should not repeat IDs, but a duplicate must not count twice.
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		picked = append(picked, rec)
	}
	return picked
}

// Reconcile returns a new set holding sel topped up from page toward target.
// sel is not modified.
func Reconcile(sel *Set, target int, page []domain.Artwork) *Set {
	out := sel.Clone()
	for _, rec := range Candidates(sel, target, page) {
		out.Add(rec)
	}
	return out
}

// Accumulator maintains the selection across page boundaries and reconciles
// it against a user-specified target count.
type Accumulator struct {
	selected *Set
	target   int
}

// NewAccumulator creates an accumulator with an empty selection and target 0
func NewAccumulator() *Accumulator {
	return &Accumulator{selected: NewSet()}
}

// Toggle adds the record if absent, removes it if present.
// Returns true if the record is selected afterwards.
func (a *Accumulator) Toggle(rec domain.Artwork) bool {
	if a.selected.Remove(rec.ID) {
		return false
	}
	a.selected.Add(rec)
	return true
}

// SetTarget applies n if it is non-negative; otherwise the previous target
// is kept. Returns whether n was applied.
func (a *Accumulator) SetTarget(n int) bool {
	if n < 0 {
		return false
	}
	a.target = n
	return true
}

// SetTargetCount parses raw input from the target field.
// Non-numeric or negative input is ignored.
func (a *Accumulator) SetTargetCount(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return a.SetTarget(n)
}

// Target returns the current target count
func (a *Accumulator) Target() int {
	return a.target
}

// Reconcile tops up the selection from the given page records.
// Returns the number of records added; safe to call repeatedly.
func (a *Accumulator) Reconcile(page []domain.Artwork) int {
	added := 0
	for _, rec := range Candidates(a.selected, a.target, page) {
		if a.selected.Add(rec) {
			added++
		}
	}
	return added
}

// Clear drops the whole selection; the target is kept
func (a *Accumulator) Clear() {
	a.selected.Clear()
}

// IsSelected reports whether the record ID is selected
func (a *Accumulator) IsSelected(id int) bool {
	return a.selected.Has(id)
}

// Len returns the selection size
func (a *Accumulator) Len() int {
	return a.selected.Len()
}

// Selected returns the selected records in insertion order
func (a *Accumulator) Selected() []domain.Artwork {
	return a.selected.Records()
}
