// util/validation_util.go

package util

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateCategory(category model.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: category name cannot be empty", stylino_errors.ErrInvalidCategoryData)
	}
	if !slugPattern.MatchString(category.Slug) {
		return fmt.Errorf("%w: category slug %q is not valid", stylino_errors.ErrInvalidCategoryData, category.Slug)
	}
	if category.SortOrder < 0 {
		return fmt.Errorf("%w: category sort order cannot be negative", stylino_errors.ErrInvalidCategoryData)
	}
	return nil
}

func (v *ValidationUtil) ValidateProduct(product model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", stylino_errors.ErrInvalidProductData)
	}
	if !slugPattern.MatchString(product.Slug) {
		return fmt.Errorf("%w: product slug %q is not valid", stylino_errors.ErrInvalidProductData, product.Slug)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: product price must be positive", stylino_errors.ErrInvalidProductData)
	}
	if product.DiscountPrice != nil && (*product.DiscountPrice <= 0 || *product.DiscountPrice >= product.Price) {
		return fmt.Errorf("%w: discount price must be between zero and the price", stylino_errors.ErrInvalidProductData)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: product stock cannot be negative", stylino_errors.ErrInvalidProductData)
	}
	if product.CategoryID == 0 {
		return fmt.Errorf("%w: product category is required", stylino_errors.ErrInvalidProductData)
	}
	return nil
}

func (v *ValidationUtil) ValidateSettings(setting model.Setting) error {
	if strings.TrimSpace(setting.StoreName) == "" {
		return fmt.Errorf("%w: store name cannot be empty", stylino_errors.ErrInvalidSettingsData)
	}
	if setting.SupportEmail != "" {
		if _, err := mail.ParseAddress(setting.SupportEmail); err != nil {
			return fmt.Errorf("%w: support email is not valid", stylino_errors.ErrInvalidSettingsData)
		}
	}
	if setting.ShippingFee < 0 || setting.FreeShippingThreshold < 0 {
		return fmt.Errorf("%w: shipping amounts cannot be negative", stylino_errors.ErrInvalidSettingsData)
	}
	if setting.CommissionPercent < 0 || setting.CommissionPercent > 100 {
		return fmt.Errorf("%w: commission percent must be between 0 and 100", stylino_errors.ErrInvalidSettingsData)
	}
	return nil
}

func (v *ValidationUtil) ValidatePagination(limit, offset int) error {
	if limit <= 0 || limit > 100 || offset < 0 {
		return stylino_errors.ErrInvalidPagination
	}
	return nil
}
