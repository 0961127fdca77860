package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stylino/storefront/auth"
	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/service"
	stylino_mock "github.com/stylino/storefront/test/mock"
	"github.com/stylino/storefront/util"
)

func TestAffiliateSummaryScope(t *testing.T) {
	ctx := context.Background()
	affiliate := &auth.Principal{ID: "aff-1", Role: model.RoleAffiliate}
	admin := &auth.Principal{ID: "admin-1", Role: model.RoleAdmin}

	cases := []struct {
		name      string
		principal *auth.Principal
		requested string
		want      string
		err       error
	}{
		{"AffiliateOwnData", affiliate, "", "aff-1", nil},
		{"AffiliateExplicitSelf", affiliate, "aff-1", "aff-1", nil},
		{"AffiliateOtherAffiliate", affiliate, "aff-2", "", stylino_errors.ErrUnauthorized},
		{"AdminNamesAffiliate", admin, "aff-2", "aff-2", nil},
		{"AdminWithoutTarget", admin, "", "admin-1", nil},
		{"NoPrincipal", nil, "", "", stylino_errors.ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(stylino_mock.MockAffiliateStore)
			svc := service.NewAffiliateService(store, util.NewValidationUtil())
			if tc.err == nil {
				store.On("Summary", mock.Anything, tc.want).Return(&model.AffiliateSummary{AffiliateID: tc.want}, nil)
			}

			summary, err := svc.Summary(ctx, tc.principal, tc.requested)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, summary.AffiliateID)
			store.AssertExpectations(t)
		})
	}
}

func TestAffiliateListCommissions(t *testing.T) {
	store := new(stylino_mock.MockAffiliateStore)
	svc := service.NewAffiliateService(store, util.NewValidationUtil())
	principal := &auth.Principal{ID: "aff-1", Role: model.RoleAffiliate}

	_, err := svc.ListCommissions(context.Background(), principal, "", 500, 0)
	assert.ErrorIs(t, err, stylino_errors.ErrInvalidPagination)

	store.On("ListCommissions", mock.Anything, "aff-1", 20, 0).
		Return([]model.AffiliateCommission{{ID: 1, AffiliateID: "aff-1"}}, nil)
	commissions, err := svc.ListCommissions(context.Background(), principal, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, commissions, 1)
	store.AssertExpectations(t)
}
