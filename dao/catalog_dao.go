// dao/catalog_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

type CatalogDAO struct {
	DB *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{DB: db}
}

func (dao *CatalogDAO) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := dao.DB.WithContext(ctx).Order("sort_order ASC").Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return categories, nil
}

func (dao *CatalogDAO) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.ParentID != nil {
		var count int64
		if err := dao.DB.WithContext(ctx).Model(&model.Category{}).Where("id = ?", *category.ParentID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
		}
		if count == 0 {
			return nil, stylino_errors.ErrCategoryNotFound
		}
	}

	if err := dao.DB.WithContext(ctx).Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, stylino_errors.ErrCategoryConflict
		}
		logger.Error("Failed to create category", zap.Error(err), zap.String("slug", category.Slug))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	logger.Info("Category created successfully", zap.Uint("categoryID", category.ID), zap.String("slug", category.Slug))
	return &category, nil
}

// GetProductBySlug returns an active product with its category.
func (dao *CatalogDAO) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := dao.DB.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		Take(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylino_errors.ErrProductNotFound
		}
		logger.Error("Failed to get product", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return &product, nil
}

func (dao *CatalogDAO) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := dao.ensureCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	product.Category = nil
	if err := dao.DB.WithContext(ctx).Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, stylino_errors.ErrProductConflict
		}
		logger.Error("Failed to create product", zap.Error(err), zap.String("slug", product.Slug))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	logger.Info("Product created successfully", zap.Uint("productID", product.ID), zap.String("slug", product.Slug))
	return &product, nil
}

// UpdateProduct replaces the editable fields of the product stored under
// slug and returns the previous and the new version.
func (dao *CatalogDAO) UpdateProduct(ctx context.Context, slug string, product model.Product) (*model.Product, *model.Product, error) {
	if err := dao.ensureCategory(ctx, product.CategoryID); err != nil {
		return nil, nil, err
	}

	var old, updated model.Product
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).Take(&old).Error; err != nil {
			return err
		}
		err := tx.Model(&model.Product{}).Where("id = ?", old.ID).Select(
			"name", "slug", "description", "price", "discount_price", "stock", "category_id", "is_active",
		).Updates(map[string]any{
			"name":           product.Name,
			"slug":           product.Slug,
			"description":    product.Description,
			"price":          product.Price,
			"discount_price": product.DiscountPrice,
			"stock":          product.Stock,
			"category_id":    product.CategoryID,
			"is_active":      product.IsActive,
		}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", old.ID).Take(&updated).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, nil, stylino_errors.ErrProductNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, nil, stylino_errors.ErrProductConflict
		}
		logger.Error("Failed to update product", zap.Error(err), zap.String("slug", slug))
		return nil, nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Product updated successfully", zap.Uint("productID", updated.ID), zap.String("slug", updated.Slug))
	return &old, &updated, nil
}

func (dao *CatalogDAO) ensureCategory(ctx context.Context, categoryID uint) error {
	var count int64
	if err := dao.DB.WithContext(ctx).Model(&model.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	if count == 0 {
		return stylino_errors.ErrCategoryNotFound
	}
	return nil
}
