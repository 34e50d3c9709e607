package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingms/training-api/internal/repository"
)

const defaultPageSize = 20

// parseIDParam extracts an integer identity from a path parameter.
// On failure it writes the 400 response and returns ok=false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" parameter: must be an integer.")
		return 0, false
	}
	return id, true
}

// parsePagination reads page/pageSize query parameters. Unparsable
// values fall back to the defaults; out-of-range values are clamped by
// the paginator, so pagination input never fails a request.
func parsePagination(c *gin.Context) repository.Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil {
		pageSize = defaultPageSize
	}
	return repository.Pagination{Page: page, PageSize: pageSize}
}

// optionalIDQuery reads an optional integer filter from the query
// string. On failure it writes the 400 response and returns ok=false.
func optionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" parameter: must be an integer.")
		return nil, false
	}
	return &id, true
}
