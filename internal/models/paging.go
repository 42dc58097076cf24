package models

import "math"

// Order is a single sort instruction expressed with the DTO property name.
type Order struct {
	Property string
	Desc     bool
}

// PageRequest carries zero-based pagination, sorting and reference filters for list queries.
type PageRequest struct {
	Page int
	Size int
	Sort []Order
	// Filters maps a reference property (e.g. "schoolId") to the identifier it must equal.
	Filters map[string]int64
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	if p.Page < 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives page metadata from the request and the total row count.
func NewPagination(req PageRequest, total int) *Pagination {
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return &Pagination{
		Page:       req.Page,
		PageSize:   req.Size,
		TotalCount: total,
		TotalPages: pages,
	}
}

// HasNext reports whether another page follows the current one.
func (p *Pagination) HasNext() bool {
	return p != nil && p.Page < p.TotalPages-1
}

// LastPage returns the index of the last page, zero when empty.
func (p *Pagination) LastPage() int {
	if p == nil || p.TotalPages == 0 {
		return 0
	}
	return p.TotalPages - 1
}

func idRef(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
