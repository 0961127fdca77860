package controller_test

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylino/storefront/auth"
	"github.com/stylino/storefront/config"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	return r, r.Group("/api/v1")
}

// signedIn stands in for the role middleware.
func signedIn(id string, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(util.PrincipalContextKey, &auth.Principal{ID: id, Role: role})
		c.Set(util.UserIDContextKey, id)
		c.Next()
	}
}

func denyAll(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, auth.ErrorBody{Error: auth.MessageUnauthenticated})
}

func testCacheConfig() config.CacheConfiguration {
	return config.CacheConfiguration{
		Categories: config.CacheEntryConfiguration{MaxEntries: 20, TTL: time.Minute, MaxAge: 60 * time.Second, SWR: 300 * time.Second},
		Products:   config.CacheEntryConfiguration{MaxEntries: 200, TTL: 30 * time.Second, MaxAge: 30 * time.Second, SWR: 120 * time.Second},
		Settings:   config.CacheEntryConfiguration{MaxEntries: 50, TTL: 2 * time.Minute, MaxAge: 120 * time.Second, SWR: 600 * time.Second},
	}
}
