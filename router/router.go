// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/stylino/storefront/controller"
	"github.com/stylino/storefront/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	redisClient redis.Cmdable,
	gatherer prometheus.Gatherer,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1", middleware.RateLimiter(redisClient, rateLimitRequests, rateLimitDuration))

	controllers.Catalog.RegisterRoutes(api)
	controllers.Account.RegisterRoutes(api)
	controllers.Admin.RegisterRoutes(api)
	controllers.Affiliate.RegisterRoutes(api)

	return router
}
