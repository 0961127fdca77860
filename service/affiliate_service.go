// service/affiliate_service.go
package service

import (
	"context"

	"github.com/stylino/storefront/auth"
	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/util"
)

type IAffiliateService interface {
	Summary(ctx context.Context, principal *auth.Principal, affiliateID string) (*model.AffiliateSummary, error)
	ListCommissions(ctx context.Context, principal *auth.Principal, affiliateID string, limit, offset int) ([]model.AffiliateCommission, error)
}

type AffiliateService struct {
	affiliateStore AffiliateStore
	validationUtil *util.ValidationUtil
}

var _ IAffiliateService = &AffiliateService{}

func NewAffiliateService(affiliateStore AffiliateStore, validationUtil *util.ValidationUtil) *AffiliateService {
	return &AffiliateService{affiliateStore: affiliateStore, validationUtil: validationUtil}
}

func (s *AffiliateService) Summary(ctx context.Context, principal *auth.Principal, affiliateID string) (*model.AffiliateSummary, error) {
	target, err := scopeAffiliate(principal, affiliateID)
	if err != nil {
		return nil, err
	}
	return s.affiliateStore.Summary(ctx, target)
}

func (s *AffiliateService) ListCommissions(ctx context.Context, principal *auth.Principal, affiliateID string, limit, offset int) ([]model.AffiliateCommission, error) {
	if err := s.validationUtil.ValidatePagination(limit, offset); err != nil {
		return nil, err
	}
	target, err := scopeAffiliate(principal, affiliateID)
	if err != nil {
		return nil, err
	}
	return s.affiliateStore.ListCommissions(ctx, target, limit, offset)
}

// scopeAffiliate resolves whose data is read. Affiliates always read their
// own; admins may name any affiliate.
func scopeAffiliate(principal *auth.Principal, affiliateID string) (string, error) {
	if principal == nil {
		return "", stylino_errors.ErrUnauthorized
	}
	if principal.Role == model.RoleAdmin && affiliateID != "" {
		return affiliateID, nil
	}
	if affiliateID != "" && affiliateID != principal.ID {
		return "", stylino_errors.ErrUnauthorized
	}
	return principal.ID, nil
}
