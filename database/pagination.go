package database

// Page sizes are fixed per listing context.
const (
	ProjectPageSize  = 9
	BlogPostPageSize = 10
)

// Pagination describes one page of a listing. Out-of-range page requests are
// clamped rather than rejected.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// clampPage normalizes the requested page against the filtered row count:
// pages below 1 become 1, pages past the end become the last page. With no
// rows at all the result is an empty page 1.
func clampPage(totalCount int64, page, pageSize int) Pagination {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}
