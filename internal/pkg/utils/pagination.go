package utils

import (
	"net/http"
	"strconv"
)

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// DefaultPageSize is the default number of items per page
const DefaultPageSize = 20

// MaxPageSize is the maximum number of items per page
const MaxPageSize = 100

// NewPaginationParams clamps page and pageSize and computes the offset
func NewPaginationParams(page, pageSize int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// TotalPages returns the number of pages needed for totalItems
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	totalPages := int(totalItems) / pageSize
	if int(totalItems)%pageSize != 0 {
		totalPages++
	}
	return totalPages
}

// ParseLimit reads an integer query parameter clamped to [1, max]
func ParseLimit(r *http.Request, key string, def, max int) int {
	n := parseIntQuery(r.URL.Query().Get(key), def)
	if n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func parseIntQuery(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
