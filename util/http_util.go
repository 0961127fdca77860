// util/http_util.go
package util

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stylino/storefront/auth"
	logger "github.com/stylino/storefront/logging"
)

const (
	PrincipalContextKey = "principal"
	UserIDContextKey    = "userID"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

func GetUserIDFromContext(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

// GetPrincipalFromContext returns the principal stored by the role middleware.
func GetPrincipalFromContext(c *gin.Context) (*auth.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*auth.Principal)
	return principal, ok && principal != nil
}

// CacheControl builds a shared-cache header value. Durations are truncated
// to whole seconds.
func CacheControl(maxAge, staleWhileRevalidate time.Duration) string {
	seconds := int(maxAge / time.Second)
	if seconds <= 0 {
		return "no-store"
	}
	value := fmt.Sprintf("public, max-age=%d, s-maxage=%d", seconds, seconds)
	if swr := int(staleWhileRevalidate / time.Second); swr > 0 {
		value += fmt.Sprintf(", stale-while-revalidate=%d", swr)
	}
	return value
}
