package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stylino/storefront/cache"
	"github.com/stylino/storefront/config"
	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/service"
	stylino_mock "github.com/stylino/storefront/test/mock"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testCacheConfig() config.CacheConfiguration {
	return config.CacheConfiguration{
		Categories: config.CacheEntryConfiguration{MaxEntries: 20, TTL: 60 * time.Second},
		Products:   config.CacheEntryConfiguration{MaxEntries: 200, TTL: 30 * time.Second},
		Settings:   config.CacheEntryConfiguration{MaxEntries: 50, TTL: 120 * time.Second},
	}
}

type catalogFixture struct {
	service  *service.CatalogService
	catalog  *stylino_mock.MockCatalogStore
	settings *stylino_mock.MockSettingsStore
	clock    *clock
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()
	clk := &clock{now: time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)}
	caches, err := service.NewCatalogCaches(testCacheConfig(), prometheus.NewRegistry(), cache.WithClock(clk.Now))
	require.NoError(t, err)

	catalogStore := new(stylino_mock.MockCatalogStore)
	settingsStore := new(stylino_mock.MockSettingsStore)
	t.Cleanup(func() {
		catalogStore.AssertExpectations(t)
		settingsStore.AssertExpectations(t)
	})
	return catalogFixture{
		service:  service.NewCatalogService(catalogStore, settingsStore, caches),
		catalog:  catalogStore,
		settings: settingsStore,
		clock:    clk,
	}
}

func TestListCategoriesIsCached(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	categories := []model.Category{{ID: 1, Name: "مانتو", Slug: "manto"}}
	f.catalog.On("ListCategories", mock.Anything).Return(categories, nil).Once()

	got, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)

	got, err = f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestListCategoriesReloadsAfterTTL(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1}}, nil).Twice()

	_, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	f.clock.Advance(59 * time.Second)
	_, err = f.service.ListCategories(ctx)
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	_, err = f.service.ListCategories(ctx)
	require.NoError(t, err)
}

func TestInvalidateCategories(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1}}, nil).Once()
	f.catalog.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1}, {ID: 2}}, nil).Once()

	_, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	f.service.InvalidateCategories()

	got, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListCategoriesErrorIsNotCached(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("ListCategories", mock.Anything).Return(nil, stylino_errors.ErrDatabaseOperation).Once()
	f.catalog.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1}}, nil).Once()

	_, err := f.service.ListCategories(ctx)
	assert.ErrorIs(t, err, stylino_errors.ErrDatabaseOperation)

	got, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetProduct(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	product := &model.Product{ID: 7, Slug: "linen-manto", Price: 1200000, IsActive: true}
	f.catalog.On("GetProductBySlug", mock.Anything, "linen-manto").Return(product, nil).Once()

	got, err := f.service.GetProduct(ctx, "linen-manto")
	require.NoError(t, err)
	assert.Equal(t, product.Price, got.Price)

	// Callers receive copies.
	got.Price = 1
	again, err := f.service.GetProduct(ctx, "linen-manto")
	require.NoError(t, err)
	assert.Equal(t, int64(1200000), again.Price)
}

func TestGetProductMissIsNotCached(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("GetProductBySlug", mock.Anything, "ghost").Return(nil, stylino_errors.ErrProductNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, err := f.service.GetProduct(ctx, "ghost")
		assert.ErrorIs(t, err, stylino_errors.ErrProductNotFound)
	}
}

func TestInvalidateProduct(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("GetProductBySlug", mock.Anything, "scarf").Return(&model.Product{Slug: "scarf", Stock: 3}, nil).Once()
	f.catalog.On("GetProductBySlug", mock.Anything, "scarf").Return(&model.Product{Slug: "scarf", Stock: 0}, nil).Once()

	_, err := f.service.GetProduct(ctx, "scarf")
	require.NoError(t, err)
	f.service.InvalidateProduct("scarf")

	got, err := f.service.GetProduct(ctx, "scarf")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestGetPublicSettings(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	setting := model.DefaultSettings()
	setting.CommissionPercent = 15
	f.settings.On("GetSettings", mock.Anything).Return(setting, nil).Once()

	public, err := f.service.GetPublicSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, setting.StoreName, public.StoreName)

	_, err = f.service.GetPublicSettings(ctx)
	require.NoError(t, err)

	f.service.InvalidateSettings()
	f.settings.On("GetSettings", mock.Anything).Return(setting, nil).Once()
	_, err = f.service.GetPublicSettings(ctx)
	require.NoError(t, err)
}

func TestConcurrentMissesLoadOnce(t *testing.T) {
	f := newCatalogFixture(t)
	release := make(chan struct{})
	f.catalog.On("ListCategories", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return([]model.Category{{ID: 1}}, nil).
		Once()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.ListCategories(context.Background())
			errs <- err
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestNewCatalogCachesRejectsInvalidBounds(t *testing.T) {
	cfg := testCacheConfig()
	cfg.Products.MaxEntries = 0

	_, err := service.NewCatalogCaches(cfg, nil)
	assert.Error(t, err)
}

func TestCancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	f := newCatalogFixture(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	var storeCtxErr error
	f.catalog.On("ListCategories", mock.Anything).
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
			storeCtxErr = args.Get(0).(context.Context).Err()
		}).
		Return([]model.Category{{ID: 1}}, nil).
		Once()

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := f.service.ListCategories(firstCtx)
		firstErr <- err
	}()
	<-entered

	var got []model.Category
	secondErr := make(chan error, 1)
	go func() {
		var err error
		got, err = f.service.ListCategories(context.Background())
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Len(t, got, 1)
	assert.NoError(t, storeCtxErr)
}

func TestListCategoriesReturnsCopies(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.catalog.On("ListCategories", mock.Anything).
		Return([]model.Category{{ID: 1, Name: "مانتو", Slug: "manto"}}, nil).
		Once()

	first, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"

	again, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "مانتو", again[0].Name)
}
