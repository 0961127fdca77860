// service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/stylino/storefront/cache"
	"github.com/stylino/storefront/config"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

const (
	categoriesKey = "all"
	settingsKey   = "public"
)

// ICatalogService serves the public, read-heavy storefront queries.
type ICatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetProduct(ctx context.Context, slug string) (*model.Product, error)
	GetPublicSettings(ctx context.Context) (model.PublicSettings, error)
	InvalidateCategories()
	InvalidateProduct(slug string)
	InvalidateSettings()
}

// CatalogCaches groups the process-local caches in front of the catalog.
type CatalogCaches struct {
	Categories *cache.Cache[[]model.Category]
	Products   *cache.Cache[model.Product]
	Settings   *cache.Cache[model.PublicSettings]

	CategoriesTTL time.Duration
	ProductsTTL   time.Duration
	SettingsTTL   time.Duration
}

// NewCatalogCaches builds the caches from cfg. A nil reg disables metrics.
func NewCatalogCaches(cfg config.CacheConfiguration, reg prometheus.Registerer, opts ...cache.Option) (*CatalogCaches, error) {
	withMetrics := func(name string) []cache.Option {
		if reg == nil {
			return opts
		}
		return append(append([]cache.Option{}, opts...), cache.WithMetrics(cache.NewMetrics(reg, name)))
	}

	categories, err := cache.New[[]model.Category](cfg.Categories.MaxEntries, withMetrics("categories")...)
	if err != nil {
		return nil, fmt.Errorf("categories cache: %w", err)
	}
	products, err := cache.New[model.Product](cfg.Products.MaxEntries, withMetrics("products")...)
	if err != nil {
		return nil, fmt.Errorf("products cache: %w", err)
	}
	settings, err := cache.New[model.PublicSettings](cfg.Settings.MaxEntries, withMetrics("settings")...)
	if err != nil {
		return nil, fmt.Errorf("settings cache: %w", err)
	}

	return &CatalogCaches{
		Categories:    categories,
		Products:      products,
		Settings:      settings,
		CategoriesTTL: cfg.Categories.TTL,
		ProductsTTL:   cfg.Products.TTL,
		SettingsTTL:   cfg.Settings.TTL,
	}, nil
}

type CatalogService struct {
	catalogStore  CatalogStore
	settingsStore SettingsStore
	caches        *CatalogCaches
	loads         singleflight.Group
}

var _ ICatalogService = &CatalogService{}

func NewCatalogService(catalogStore CatalogStore, settingsStore SettingsStore, caches *CatalogCaches) *CatalogService {
	return &CatalogService{
		catalogStore:  catalogStore,
		settingsStore: settingsStore,
		caches:        caches,
	}
}

// ListCategories returns a copy of the category list; callers may modify it.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	if categories, ok := s.caches.Categories.Get(categoriesKey); ok {
		return slices.Clone(categories), nil
	}

	v, shared, err := s.load(ctx, "categories:"+categoriesKey, func(ctx context.Context) (any, error) {
		if categories, ok := s.caches.Categories.Get(categoriesKey); ok {
			return categories, nil
		}
		categories, err := s.catalogStore.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		s.caches.Categories.Set(categoriesKey, categories, s.caches.CategoriesTTL)
		return categories, nil
	})
	if err != nil {
		logger.Error("Failed to load categories", zap.Error(err))
		return nil, err
	}
	logger.Debug("Categories loaded", zap.Bool("shared", shared))
	return slices.Clone(v.([]model.Category)), nil
}

// GetProduct returns an active product. Misses and errors are not cached.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	if product, ok := s.caches.Products.Get(slug); ok {
		return &product, nil
	}

	v, _, err := s.load(ctx, "products:"+slug, func(ctx context.Context) (any, error) {
		if product, ok := s.caches.Products.Get(slug); ok {
			return product, nil
		}
		product, err := s.catalogStore.GetProductBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		s.caches.Products.Set(slug, *product, s.caches.ProductsTTL)
		return *product, nil
	})
	if err != nil {
		return nil, err
	}
	product := v.(model.Product)
	return &product, nil
}

func (s *CatalogService) GetPublicSettings(ctx context.Context) (model.PublicSettings, error) {
	if settings, ok := s.caches.Settings.Get(settingsKey); ok {
		return settings, nil
	}

	v, _, err := s.load(ctx, "settings:"+settingsKey, func(ctx context.Context) (any, error) {
		if settings, ok := s.caches.Settings.Get(settingsKey); ok {
			return settings, nil
		}
		setting, err := s.settingsStore.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		public := setting.Public()
		s.caches.Settings.Set(settingsKey, public, s.caches.SettingsTTL)
		return public, nil
	})
	if err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
		return model.PublicSettings{}, err
	}
	return v.(model.PublicSettings), nil
}

// load collapses concurrent misses on key into one query. The query is not
// cancelled with the request that started it; each caller stops waiting when
// its own ctx is done.
func (s *CatalogService) load(ctx context.Context, key string, query func(context.Context) (any, error)) (any, bool, error) {
	detached := context.WithoutCancel(ctx)
	results := s.loads.DoChan(key, func() (any, error) {
		return query(detached)
	})

	select {
	case res := <-results:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (s *CatalogService) InvalidateCategories() {
	s.loads.Forget("categories:" + categoriesKey)
	s.caches.Categories.Delete(categoriesKey)
}

func (s *CatalogService) InvalidateProduct(slug string) {
	s.loads.Forget("products:" + slug)
	s.caches.Products.Delete(slug)
}

func (s *CatalogService) InvalidateSettings() {
	s.loads.Forget("settings:" + settingsKey)
	s.caches.Settings.Delete(settingsKey)
}
