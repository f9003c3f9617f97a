package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageParamsFor(rawQuery, filterKey string) PageParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ParsePageParams(c, filterKey)
}

func TestParsePageParamsDefaults(t *testing.T) {
	params := pageParamsFor("", "")
	assert.Equal(t, 0, params.PageIndex)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.Empty(t, params.Filter)
	assert.Equal(t, 0, params.Offset())
}

func TestParsePageParamsClampsAndIgnoresBadInput(t *testing.T) {
	params := pageParamsFor("page_index=2&page_size=500", "")
	assert.Equal(t, 2, params.PageIndex)
	assert.Equal(t, MaxPageSize, params.PageSize)
	assert.Equal(t, 200, params.Offset())

	params = pageParamsFor("page_index=-1&page_size=abc", "")
	assert.Equal(t, 0, params.PageIndex)
	assert.Equal(t, DefaultPageSize, params.PageSize)
}

func TestParsePageParamsFilterKey(t *testing.T) {
	params := pageParamsFor("email_filter=alice", "email_filter")
	assert.Equal(t, "alice", params.Filter)

	// Unfiltered listings never read a filter, whatever the query says.
	params = pageParamsFor("email_filter=alice", "")
	assert.Empty(t, params.Filter)
}
