package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/util"
)

func int64Ptr(v int64) *int64 { return &v }

func TestValidateProduct(t *testing.T) {
	v := util.NewValidationUtil()
	valid := model.Product{Name: "مانتو", Slug: "linen-manto", Price: 1000, Stock: 1, CategoryID: 1}

	assert.NoError(t, v.ValidateProduct(valid))

	cases := map[string]func(p *model.Product){
		"EmptyName":        func(p *model.Product) { p.Name = " " },
		"BadSlug":          func(p *model.Product) { p.Slug = "Linen Manto" },
		"ZeroPrice":        func(p *model.Product) { p.Price = 0 },
		"DiscountTooHigh":  func(p *model.Product) { p.DiscountPrice = int64Ptr(1000) },
		"DiscountNegative": func(p *model.Product) { p.DiscountPrice = int64Ptr(-1) },
		"NegativeStock":    func(p *model.Product) { p.Stock = -1 },
		"NoCategory":       func(p *model.Product) { p.CategoryID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid
			mutate(&p)
			assert.ErrorIs(t, v.ValidateProduct(p), stylino_errors.ErrInvalidProductData)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateCategory(model.Category{Name: "شال", Slug: "shawl"}))
	assert.ErrorIs(t, v.ValidateCategory(model.Category{Slug: "shawl"}), stylino_errors.ErrInvalidCategoryData)
	assert.ErrorIs(t, v.ValidateCategory(model.Category{Name: "شال", Slug: "-shawl"}), stylino_errors.ErrInvalidCategoryData)
	assert.ErrorIs(t, v.ValidateCategory(model.Category{Name: "شال", Slug: "shawl", SortOrder: -1}), stylino_errors.ErrInvalidCategoryData)
}

func TestValidateSettings(t *testing.T) {
	v := util.NewValidationUtil()
	setting := model.DefaultSettings()

	assert.NoError(t, v.ValidateSettings(setting))

	bad := setting
	bad.SupportEmail = "not-an-email"
	assert.ErrorIs(t, v.ValidateSettings(bad), stylino_errors.ErrInvalidSettingsData)

	bad = setting
	bad.CommissionPercent = 101
	assert.ErrorIs(t, v.ValidateSettings(bad), stylino_errors.ErrInvalidSettingsData)

	bad = setting
	bad.ShippingFee = -1
	assert.ErrorIs(t, v.ValidateSettings(bad), stylino_errors.ErrInvalidSettingsData)
}

func TestValidatePagination(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidatePagination(20, 0))
	assert.ErrorIs(t, v.ValidatePagination(0, 0), stylino_errors.ErrInvalidPagination)
	assert.ErrorIs(t, v.ValidatePagination(101, 0), stylino_errors.ErrInvalidPagination)
	assert.ErrorIs(t, v.ValidatePagination(10, -1), stylino_errors.ErrInvalidPagination)
}
