package utils

import (
	"net/http/httptest"
	"testing"
)

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
		wantOffset   int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize, 0},
		{"third page", 3, 10, 3, 10, 20},
		{"negative values", -2, -4, 1, DefaultPageSize, 0},
		{"page size clamped", 1, 1000, 1, MaxPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginationParams(tt.page, tt.pageSize)
			if p.Page != tt.wantPage || p.PageSize != tt.wantPageSize || p.Offset != tt.wantOffset {
				t.Errorf("NewPaginationParams(%d, %d) = %+v", tt.page, tt.pageSize, p)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(6, 4); got != 2 {
		t.Errorf("TotalPages(6, 4) = %d, want 2", got)
	}
	if got := TotalPages(0, 20); got != 0 {
		t.Errorf("TotalPages(0, 20) = %d, want 0", got)
	}
}

func TestParseLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/alerts/recent?limit=500", nil)
	if got := ParseLimit(r, "limit", 20, 100); got != 100 {
		t.Errorf("ParseLimit() = %d, want 100", got)
	}
	r = httptest.NewRequest("GET", "/api/alerts/recent", nil)
	if got := ParseLimit(r, "limit", 20, 100); got != 20 {
		t.Errorf("ParseLimit() = %d, want 20", got)
	}
}
