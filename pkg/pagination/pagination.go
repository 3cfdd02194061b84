// Package pagination computes the offset window and page counts for
// paginated listings.
package pagination

import "math"

// Defaults applied when the caller supplies no page or size.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// Page describes one page of a listing. Pages are zero-based and Offset is
// the record index the page starts at.
type Page struct {
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
	Offset       int   `json:"-"`
}

// Paginate computes the page window for totalRecords records. Non-positive
// size falls back to DefaultSize, negative page to DefaultPage. Size carries
// no upper bound.
func Paginate(totalRecords int64, page, size int) Page {
	if size <= 0 {
		size = DefaultSize
	}
	if page < 0 {
		page = DefaultPage
	}
	totalPages := 0
	if totalRecords > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(size)))
	}
	return Page{
		CurrentPage:  page,
		PageSize:     size,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		Offset:       page * size,
	}
}
