package util_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/stylino/storefront/auth"
	"github.com/stylino/storefront/util"
)

func TestCacheControl(t *testing.T) {
	assert.Equal(t, "public, max-age=60, s-maxage=60, stale-while-revalidate=300",
		util.CacheControl(60*time.Second, 300*time.Second))
	assert.Equal(t, "public, max-age=30, s-maxage=30", util.CacheControl(30*time.Second, 0))
	assert.Equal(t, "no-store", util.CacheControl(0, time.Minute))
}

func TestGetPrincipalFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := util.GetPrincipalFromContext(c)
	assert.False(t, ok)
	assert.Empty(t, util.GetUserIDFromContext(c))

	c.Set(util.PrincipalContextKey, &auth.Principal{ID: "u1"})
	c.Set(util.UserIDContextKey, "u1")
	principal, ok := util.GetPrincipalFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "u1", principal.ID)
	assert.Equal(t, "u1", util.GetUserIDFromContext(c))

	c.Set(util.PrincipalContextKey, "not a principal")
	_, ok = util.GetPrincipalFromContext(c)
	assert.False(t, ok)
}
