package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stylino/storefront/auth"
	"github.com/stylino/storefront/controller"
	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	mock_service "github.com/stylino/storefront/test/service_mock"
)

func TestAffiliateController(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAffiliateService := mock_service.NewMockIAffiliateService(ctrl)
	affiliateController := controller.NewAffiliateController(mockAffiliateService, signedIn("aff-1", model.RoleAffiliate))
	router, api := setupRouter()
	affiliateController.RegisterRoutes(api)

	t.Run("Summary_Success", func(t *testing.T) {
		mockAffiliateService.EXPECT().
			Summary(gomock.Any(), &auth.Principal{ID: "aff-1", Role: model.RoleAffiliate}, "").
			Return(&model.AffiliateSummary{AffiliateID: "aff-1", TotalOrders: 3}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/affiliate/summary", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_orders":3`)
	})

	t.Run("Summary_Failure_OtherAffiliate", func(t *testing.T) {
		mockAffiliateService.EXPECT().
			Summary(gomock.Any(), gomock.Any(), "aff-2").
			Return(nil, stylino_errors.ErrUnauthorized)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/affiliate/summary?affiliate_id=aff-2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ListCommissions_Success", func(t *testing.T) {
		mockAffiliateService.EXPECT().
			ListCommissions(gomock.Any(), gomock.Any(), "", 20, 0).
			Return([]model.AffiliateCommission{{ID: 1, AffiliateID: "aff-1"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/affiliate/commissions", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
