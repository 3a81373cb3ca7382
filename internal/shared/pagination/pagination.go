package pagination

// Params are the list-endpoint query/body parameters shared by every
// paginated resource.
type Params struct {
	Page      int    `json:"page" form:"page"`
	PageSize  int    `json:"pageSize" form:"pageSize"`
	SortKey   string `json:"sortKey" form:"sortKey"`
	SortValue string `json:"sortValue" form:"sortValue"`
	SearchBar string `json:"searchBar" form:"searchBar"`
}

// Result is the computed paging window plus the totals reported back to the
// client.
type Result struct {
	PageSize          int `json:"pageSize"`
	TotalRecordsCount int `json:"totalRecordsCount"`
	CurrentPage       int `json:"currentPage"`
	TotalPages        int `json:"totalPages"`
	Skip              int `json:"skip"`
	Limit             int `json:"limit"`
}

// Paginate computes the paging window. page defaults to 1, pageSize to 10.
// TotalPages is ceil(totalRecords/pageSize); zero records means zero pages.
func Paginate(page, pageSize, totalRecords int) Result {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (totalRecords + pageSize - 1) / pageSize

	return Result{
		PageSize:          pageSize,
		TotalRecordsCount: totalRecords,
		CurrentPage:       page,
		TotalPages:        totalPages,
		Skip:              (page - 1) * pageSize,
		Limit:             pageSize,
	}
}

// SortQuery resolves sortKey/sortValue into an ORDER BY fragment. The key
// must be whitelisted and the value must be the lowercase literal "asc" or
// "desc"; anything else falls back to stable primary-key order.
func SortQuery(sortKey, sortValue string, allowed map[string]bool) string {
	if allowed[sortKey] {
		switch sortValue {
		case "asc":
			return sortKey + " ASC"
		case "desc":
			return sortKey + " DESC"
		}
	}
	return "id ASC"
}
