// controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/util"
)

const (
	msgInvalidRequest   = "درخواست نامعتبر است"
	msgInvalidPaging    = "پارامترهای صفحه‌بندی نامعتبر است"
	msgUnauthorized     = "دسترسی غیرمجاز است"
	msgUserNotFound     = "کاربر یافت نشد"
	msgUserConflict     = "کاربر تکراری است"
	msgInvalidRole      = "نقش نامعتبر است"
	msgCategoryNotFound = "دسته‌بندی یافت نشد"
	msgCategoryConflict = "نامک دسته‌بندی تکراری است"
	msgProductNotFound  = "محصول یافت نشد"
	msgProductConflict  = "نامک محصول تکراری است"
	msgInvalidTimeRange = "بازه زمانی نامعتبر است"
	msgAuditUnavailable = "گزارش ممیزی در دسترس نیست"
	msgInternal         = "خطای داخلی سرور"
)

var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{stylino_errors.ErrInvalidPagination, http.StatusBadRequest, msgInvalidPaging},
	{stylino_errors.ErrInvalidUserData, http.StatusBadRequest, msgInvalidRequest},
	{stylino_errors.ErrInvalidRole, http.StatusBadRequest, msgInvalidRole},
	{stylino_errors.ErrInvalidCategoryData, http.StatusBadRequest, msgInvalidRequest},
	{stylino_errors.ErrInvalidProductData, http.StatusBadRequest, msgInvalidRequest},
	{stylino_errors.ErrInvalidSettingsData, http.StatusBadRequest, msgInvalidRequest},
	{stylino_errors.ErrUnauthorized, http.StatusForbidden, msgUnauthorized},
	{stylino_errors.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
	{stylino_errors.ErrCategoryNotFound, http.StatusNotFound, msgCategoryNotFound},
	{stylino_errors.ErrProductNotFound, http.StatusNotFound, msgProductNotFound},
	{stylino_errors.ErrUserConflict, http.StatusConflict, msgUserConflict},
	{stylino_errors.ErrCategoryConflict, http.StatusConflict, msgCategoryConflict},
	{stylino_errors.ErrProductConflict, http.StatusConflict, msgProductConflict},
	{stylino_errors.ErrInvalidTimeRange, http.StatusBadRequest, msgInvalidTimeRange},
	{stylino_errors.ErrAuditQueryUnavailable, http.StatusServiceUnavailable, msgAuditUnavailable},
}

// respondServiceError maps a service error to its HTTP status; anything
// unrecognised is a 500.
func respondServiceError(c *gin.Context, err error) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			util.RespondWithError(c, r.status, r.message, err)
			return
		}
	}
	util.RespondWithError(c, http.StatusInternalServerError, msgInternal, err)
}
