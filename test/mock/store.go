// test/mock/store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stylino/storefront/model"
)

// MockUserStore is a mock implementation of service.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserStore) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserStore) SetBlocked(ctx context.Context, userID string, blocked bool) (*model.User, error) {
	args := m.Called(ctx, userID, blocked)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserStore) SetRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, userID, role)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

// MockCatalogStore is a mock implementation of service.CatalogStore
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *MockCatalogStore) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	created, _ := args.Get(0).(*model.Category)
	return created, args.Error(1)
}

func (m *MockCatalogStore) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *MockCatalogStore) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	created, _ := args.Get(0).(*model.Product)
	return created, args.Error(1)
}

func (m *MockCatalogStore) UpdateProduct(ctx context.Context, slug string, product model.Product) (*model.Product, *model.Product, error) {
	args := m.Called(ctx, slug, product)
	old, _ := args.Get(0).(*model.Product)
	updated, _ := args.Get(1).(*model.Product)
	return old, updated, args.Error(2)
}

// MockSettingsStore is a mock implementation of service.SettingsStore
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) GetSettings(ctx context.Context) (model.Setting, error) {
	args := m.Called(ctx)
	setting, _ := args.Get(0).(model.Setting)
	return setting, args.Error(1)
}

func (m *MockSettingsStore) SaveSettings(ctx context.Context, setting model.Setting) (model.Setting, error) {
	args := m.Called(ctx, setting)
	saved, _ := args.Get(0).(model.Setting)
	return saved, args.Error(1)
}

// MockAffiliateStore is a mock implementation of service.AffiliateStore
type MockAffiliateStore struct {
	mock.Mock
}

func (m *MockAffiliateStore) Summary(ctx context.Context, affiliateID string) (*model.AffiliateSummary, error) {
	args := m.Called(ctx, affiliateID)
	summary, _ := args.Get(0).(*model.AffiliateSummary)
	return summary, args.Error(1)
}

func (m *MockAffiliateStore) ListCommissions(ctx context.Context, affiliateID string, limit, offset int) ([]model.AffiliateCommission, error) {
	args := m.Called(ctx, affiliateID, limit, offset)
	commissions, _ := args.Get(0).([]model.AffiliateCommission)
	return commissions, args.Error(1)
}

// MockSessionRevoker is a mock implementation of service.SessionRevoker
type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
