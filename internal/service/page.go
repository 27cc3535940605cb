package service

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/repository/specification"
)

// pageSpecs orders by creation time and applies the requested window.
func pageSpecs(page dto.PageQuery) []specification.Specification {
	return []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: page.Descending()},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset},
	}
}
