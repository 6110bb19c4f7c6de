package dto

// Pagination is the envelope metadata returned by every list endpoint.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes page-count metadata for a result set.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// PageParams are the shared pagination query parameters.
type PageParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset converts page/limit into a SQL offset.
func (p PageParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// BulkDeleteRequest carries the ids for a transactional bulk delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}
