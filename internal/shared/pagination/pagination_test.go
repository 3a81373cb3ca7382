package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		totalRecords int
		want         Result
	}{
		{
			name:         "defaults applied for zero inputs",
			page:         0,
			pageSize:     0,
			totalRecords: 25,
			want: Result{
				PageSize:          10,
				TotalRecordsCount: 25,
				CurrentPage:       1,
				TotalPages:        3,
				Skip:              0,
				Limit:             10,
			},
		},
		{
			name:         "second page window",
			page:         2,
			pageSize:     10,
			totalRecords: 25,
			want: Result{
				PageSize:          10,
				TotalRecordsCount: 25,
				CurrentPage:       2,
				TotalPages:        3,
				Skip:              10,
				Limit:             10,
			},
		},
		{
			name:         "exact multiple has no partial page",
			page:         1,
			pageSize:     5,
			totalRecords: 20,
			want: Result{
				PageSize:          5,
				TotalRecordsCount: 20,
				CurrentPage:       1,
				TotalPages:        4,
				Skip:              0,
				Limit:             5,
			},
		},
		{
			name:         "zero records means zero pages",
			page:         1,
			pageSize:     10,
			totalRecords: 0,
			want: Result{
				PageSize:          10,
				TotalRecordsCount: 0,
				CurrentPage:       1,
				TotalPages:        0,
				Skip:              0,
				Limit:             10,
			},
		},
		{
			name:         "negative page falls back to first",
			page:         -3,
			pageSize:     10,
			totalRecords: 11,
			want: Result{
				PageSize:          10,
				TotalRecordsCount: 11,
				CurrentPage:       1,
				TotalPages:        2,
				Skip:              0,
				Limit:             10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.page, tt.pageSize, tt.totalRecords)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortQuery(t *testing.T) {
	allowed := map[string]bool{
		"first_name": true,
		"created_at": true,
	}

	tests := []struct {
		name      string
		sortKey   string
		sortValue string
		want      string
	}{
		{"whitelisted asc", "first_name", "asc", "first_name ASC"},
		{"whitelisted desc", "created_at", "desc", "created_at DESC"},
		{"unknown column falls back", "password", "asc", "id ASC"},
		{"bad direction falls back", "first_name", "ascending", "id ASC"},
		{"uppercase direction falls back", "first_name", "ASC", "id ASC"},
		{"empty inputs fall back", "", "", "id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortQuery(tt.sortKey, tt.sortValue, allowed))
		})
	}
}
