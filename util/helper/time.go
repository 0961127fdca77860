package helper_util

import (
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultTimeRange is the window used when a query names no bounds.
const DefaultTimeRange = 24 * time.Hour

// ParseTime parses an RFC 3339 timestamp.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// GetTimeRangeParams reads from and to from the query string. A missing to
// is now; a missing from is DefaultTimeRange before to.
func GetTimeRangeParams(c *gin.Context, now time.Time) (from time.Time, to time.Time, err error) {
	to = now
	if value := c.Query("to"); value != "" {
		if to, err = ParseTime(value); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	from = to.Add(-DefaultTimeRange)
	if value := c.Query("from"); value != "" {
		if from, err = ParseTime(value); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}
