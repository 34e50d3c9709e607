package repository

// Pagination bounds shared by every paginated list operation.
const (
	MinPage     = 1
	MaxPage     = 10000
	MinPageSize = 1
	MaxPageSize = 100
)

// Pagination is the page/pageSize window applied to list queries.
// Out-of-range values are clamped, never rejected, so list operations
// cannot fail on pagination parameters alone.
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize returns a copy of p with Page clamped to [1, 10000] and
// PageSize clamped to [1, 100].
func (p Pagination) Normalize() Pagination {
	if p.Page < MinPage {
		p.Page = MinPage
	} else if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < MinPageSize {
		p.PageSize = MinPageSize
	} else if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip for the window.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the window length.
func (p Pagination) Limit() int {
	return p.PageSize
}
