// service/stores.go
package service

import (
	"context"

	"github.com/stylino/storefront/model"
)

// The dao package satisfies these; services depend on them so tests can
// substitute fakes.

type UserStore interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) (*model.User, error)
	SetRole(ctx context.Context, userID string, role model.Role) (*model.User, error)
}

type CatalogStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, slug string, product model.Product) (*model.Product, *model.Product, error)
}

type SettingsStore interface {
	GetSettings(ctx context.Context) (model.Setting, error)
	SaveSettings(ctx context.Context, setting model.Setting) (model.Setting, error)
}

type AffiliateStore interface {
	Summary(ctx context.Context, affiliateID string) (*model.AffiliateSummary, error)
	ListCommissions(ctx context.Context, affiliateID string, limit, offset int) ([]model.AffiliateCommission, error)
}

type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}
