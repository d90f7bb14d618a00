package browse

import (
	"log/slog"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/selection"
)

// Session is the state behind one browsing view. All methods must be called
// from a single goroutine (the UI event loop); fetches happen elsewhere and
// report back through ApplyPage / ApplyError.
type Session struct {
	pager   Pagination
	acc     *selection.Accumulator
	page    *domain.Page
	lastErr error
	logger  *slog.Logger
}

// NewSession creates a session at offset 0 with an empty selection
func NewSession(pageSize int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		pager:  NewPagination(pageSize),
		acc:    selection.NewAccumulator(),
		logger: logger,
	}
}

// === Intents ===

// PageChanged moves to a new offset and returns the page index to fetch.
// fetch is false when the offset was rejected.
func (s *Session) PageChanged(offset int) (page int, fetch bool) {
	if !s.pager.SetOffset(offset) {
		s.logger.Debug("rejected page offset", "offset", offset)
		return 0, false
	}
	s.lastErr = nil
	return s.pager.PageIndex(), true
}

// RowToggled flips the selection of a single record
func (s *Session) RowToggled(rec domain.Artwork) bool {
	return s.acc.Toggle(rec)
}

// TargetCountChanged applies raw target input; invalid input is ignored
func (s *Session) TargetCountChanged(raw string) bool {
	return s.acc.SetTargetCount(raw)
}

// CommitTarget restarts the "select first N" fill. The selection is cleared
// and refilled from page 1: if page 1 is already displayed it is reconciled
// immediately, otherwise the returned page index must be fetched and the
// fill completes when it arrives. No-op while the target is not positive.
func (s *Session) CommitTarget() (page int, fetch bool) {
	if s.acc.Target() <= 0 {
		return 0, false
	}

	s.acc.Clear()

	if s.pager.Offset != 0 {
		s.pager.SetOffset(0)
		return s.pager.PageIndex(), true
	}

	// Offset is already 0 but the rows on screen may still belong to the
	// page being left; only page 1's rows may seed the fill.
	if s.page == nil || s.page.Number != s.pager.PageIndex() {
		return s.pager.PageIndex(), true
	}

	added := s.acc.Reconcile(s.page.Records)
	s.logger.Debug("reconciled current page", "page", s.page.Number, "added", added)
	return 0, false
}

// === Results ===

// ApplyPage installs a fetched page and reconciles the selection against it.
// A page whose requested index no longer matches the current pagination is
// stale and is dropped; returns whether the page was applied.
func (s *Session) ApplyPage(requested int, page *domain.Page) bool {
	if requested != s.pager.PageIndex() {
		s.logger.Debug("discarding stale page", "requested", requested, "current", s.pager.PageIndex())
		return false
	}
	if page == nil {
		page = &domain.Page{Number: requested}
	}

	s.page = page
	s.pager.Total = page.Total
	s.lastErr = nil

	added := s.acc.Reconcile(page.Records)
	s.logger.Debug("page applied",
		"page", requested,
		"records", len(page.Records),
		"total", page.Total,
		"added", added,
		"selected", s.acc.Len(),
	)
	return true
}

// ApplyError records a failed fetch. The displayed page and the selection are
// left untouched. Failures for stale requests are dropped.
func (s *Session) ApplyError(requested int, err error) bool {
	if requested != s.pager.PageIndex() {
		s.logger.Debug("discarding stale fetch error", "requested", requested, "error", err)
		return false
	}
	s.lastErr = err
	s.logger.Warn("page fetch failed", "page", requested, "error", err)
	return true
}

// === Outputs ===

// Page returns the currently displayed page (nil before the first load)
func (s *Session) Page() *domain.Page {
	return s.page
}

// Records returns the records of the displayed page
func (s *Session) Records() []domain.Artwork {
	if s.page == nil {
		return nil
	}
	return s.page.Records
}

// Pagination returns a copy of the pagination state
func (s *Session) Pagination() Pagination {
	return s.pager
}

// Target returns the current target count
func (s *Session) Target() int {
	return s.acc.Target()
}

// Selected returns the selection in insertion order
func (s *Session) Selected() []domain.Artwork {
	return s.acc.Selected()
}

// SelectedCount returns the selection size
func (s *Session) SelectedCount() int {
	return s.acc.Len()
}

// IsSelected reports whether a record is selected
func (s *Session) IsSelected(id int) bool {
	return s.acc.IsSelected(id)
}

// LastError returns the most recent fetch failure for the current page
func (s *Session) LastError() error {
	return s.lastErr
}
