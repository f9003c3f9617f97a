package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageParams are the query parameters shared by every paginated listing:
// page_index, page_size and an optional substring filter.
type PageParams struct {
	PageIndex int
	PageSize  int
	Filter    string
}

// Offset is the row offset for the requested page.
func (p PageParams) Offset() int {
	return p.PageIndex * p.PageSize
}

// ParsePageParams reads pagination parameters from the query string.
// filterKey names the filter parameter for the resource, e.g.
// "email_filter" or "name_filter"; pass "" for unfiltered listings.
func ParsePageParams(c *gin.Context, filterKey string) PageParams {
	params := PageParams{
		PageIndex: 0,
		PageSize:  DefaultPageSize,
	}

	if v, err := strconv.Atoi(c.Query("page_index")); err == nil && v >= 0 {
		params.PageIndex = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 {
		if v > MaxPageSize {
			v = MaxPageSize
		}
		params.PageSize = v
	}
	if filterKey != "" {
		params.Filter = c.Query(filterKey)
	}

	return params
}

// PageResult is the paginated response envelope.
type PageResult struct {
	Rows       interface{} `json:"rows"`
	TotalCount int64       `json:"total_count"`
}
