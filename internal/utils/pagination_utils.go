// package utils provides utility functions to support various operations within the application.
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePaginationParams extracts the optional 'offset' and 'limit' query parameters.
// Missing, unparsable or negative values fall back to 0; a limit of 0 means "no limit".
func ParsePaginationParams(c *gin.Context) (int, int) {
	return parseNonNegative(c.Query(OffsetParamKey)), parseNonNegative(c.Query(LimitParamKey))
}

func parseNonNegative(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}

	return parsed
}
