// Package browse drives a paged catalog view: it owns the pagination state,
// the cross-page selection and the currently displayed page, and turns user
// intents into page fetch requests. It knows nothing about rendering.
package browse

// DefaultPageSize matches the catalog API's default page length
const DefaultPageSize = 12

// Pagination tracks the visible window into the remote collection.
type Pagination struct {
	Offset   int // zero-based index of the first visible record
	PageSize int // fixed page length
	Total    int // remote collection size, 0 until the first page arrives
}

// NewPagination creates pagination at offset 0.
// A non-positive page size falls back to DefaultPageSize.
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pagination{PageSize: pageSize}
}

// PageIndex returns the 1-based page index for the current offset
func (p Pagination) PageIndex() int {
	return p.Offset/p.PageSize + 1
}

// PageCount returns the number of pages in the collection (0 when unknown)
func (p Pagination) PageCount() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// SetOffset moves to the given offset; negative offsets are rejected
func (p *Pagination) SetOffset(offset int) bool {
	if offset < 0 {
		return false
	}
	p.Offset = offset
	return true
}

// OffsetForPage returns the offset of a 1-based page index
func (p Pagination) OffsetForPage(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}

// HasPrev reports whether a previous page exists
func (p Pagination) HasPrev() bool {
	return p.Offset > 0
}

// HasNext reports whether a next page exists.
// With an unknown total, paging forward is allowed.
func (p Pagination) HasNext() bool {
	if p.Total <= 0 {
		return true
	}
	return p.Offset+p.PageSize < p.Total
}

// PrevOffset returns the offset of the previous page, clamped at 0
func (p Pagination) PrevOffset() int {
	return max(p.Offset-p.PageSize, 0)
}

// NextOffset returns the offset of the next page, or the current one at the end
func (p Pagination) NextOffset() int {
	if !p.HasNext() {
		return p.Offset
	}
	return p.Offset + p.PageSize
}

// LastOffset returns the offset of the last page (current offset when unknown)
func (p Pagination) LastOffset() int {
	if p.Total <= 0 {
		return p.Offset
	}
	return p.OffsetForPage(p.PageCount())
}
