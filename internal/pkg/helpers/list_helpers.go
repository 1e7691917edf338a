package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// MaxListLimit caps how many rows one list request may return.
	MaxListLimit = 500
)

// ParseListParams extracts the optional limit/index paging parameters.
// Both must be present and valid for paging to apply; otherwise the full
// list is returned, matching the legacy API contract.
func ParseListParams(c *gin.Context) (limit, index int, paged bool) {
	limitStr := c.Query("limit")
	indexStr := c.Query("index")
	if limitStr == "" || indexStr == "" {
		return 0, 0, false
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 0, 0, false
	}
	index, err = strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return 0, 0, false
	}

	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return limit, index, true
}
