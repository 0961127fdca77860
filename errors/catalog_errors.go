// errors/catalog_errors.go
package errors

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryConflict    = errors.New("category conflict")
	ErrInvalidCategoryData = errors.New("invalid category data")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductConflict    = errors.New("product conflict")
	ErrInvalidProductData = errors.New("invalid product data")

	ErrInvalidSettingsData = errors.New("invalid settings data")
)
