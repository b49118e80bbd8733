package service

import "blog-api/web/entity"

const defaultPageSize = 10

// normalizePaging replaces malformed paging input with defaults instead of
// failing the request.
func normalizePaging(limit, page int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return limit, page
}

func paginationFor(total int64, limit, page int) entity.Pagination {
	lastPage := int((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return entity.Pagination{
		Total:       total,
		CurrentPage: page,
		LastPage:    lastPage,
	}
}
