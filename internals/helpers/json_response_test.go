package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			name: "partial last page", total: 3, page: 1, perPage: 2,
			want: Pagination{Page: 1, PerPage: 2, Total: 3, TotalPages: 2, HasNext: true, HasPrev: false},
		},
		{
			name: "last page", total: 3, page: 2, perPage: 2,
			want: Pagination{Page: 2, PerPage: 2, Total: 3, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "empty result keeps one page", total: 0, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "normalizes bad inputs", total: 5, page: 0, perPage: 0,
			want: Pagination{Page: 1, PerPage: 20, Total: 5, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPaginationFromPage(tt.total, tt.page, tt.perPage))
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(401))
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
