package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/stylino/storefront/audit"
	"github.com/stylino/storefront/auth"
	"github.com/stylino/storefront/config"
	"github.com/stylino/storefront/controller"
	"github.com/stylino/storefront/dao"
	"github.com/stylino/storefront/db"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/middleware"
	"github.com/stylino/storefront/router"
	"github.com/stylino/storefront/service"
	"github.com/stylino/storefront/util"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	database, err := db.OpenDatabase(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.CloseDatabase(database)
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := db.InitRedis(cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	auditService := audit.NewService(newAuditRepository(cfg.Elasticsearch))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	caches, err := service.NewCatalogCaches(cfg.Cache, registry)
	if err != nil {
		logger.Fatal("Failed to build catalog caches", zap.Error(err))
	}

	sessionStore := db.NewSessionStore(db.RedisClient, cfg.Session.CookieName, cfg.Session.TTL)
	guard := auth.NewGuard(sessionStore, dao.NewUserDAO(database))

	services, err := service.InitializeServices(
		database,
		sessionStore,
		caches,
		auditService,
		util.NewValidationUtil(),
		util.NewNotificationService(),
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	controllers := controller.InitializeControllers(services, controller.Authorizers{
		Admin:     middleware.RoleAuthMiddleware(guard.RequireAdmin, auditService),
		Affiliate: middleware.RoleAuthMiddleware(guard.RequireAffiliate, auditService),
		Customer:  middleware.RoleAuthMiddleware(guard.RequireCustomer, auditService),
	}, sessionStore, cfg.Cache)

	gin.SetMode(cfg.Server.Mode)
	engine := router.SetupRouter(controllers, db.RedisClient, registry, cfg.RateLimit.Requests, cfg.RateLimit.Duration)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	eventBus.Wait()

	logger.Info("Server exiting")
}

// newAuditRepository falls back to the log stream when Elasticsearch is
// disabled or unreachable at startup.
func newAuditRepository(cfg config.ElasticsearchConfiguration) audit.Repository {
	if !cfg.Enabled {
		return audit.NewLogRepository()
	}
	repo, err := audit.NewElasticsearchRepository(cfg.URL, cfg.Index)
	if err != nil {
		logger.Warn("Elasticsearch unavailable, auditing to log", zap.Error(err))
		return audit.NewLogRepository()
	}
	return repo
}
