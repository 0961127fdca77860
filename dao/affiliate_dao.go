// dao/affiliate_dao.go
package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

type AffiliateDAO struct {
	DB *gorm.DB
}

func NewAffiliateDAO(db *gorm.DB) *AffiliateDAO {
	return &AffiliateDAO{DB: db}
}

func (dao *AffiliateDAO) Summary(ctx context.Context, affiliateID string) (*model.AffiliateSummary, error) {
	summary := model.AffiliateSummary{AffiliateID: affiliateID}
	err := dao.DB.WithContext(ctx).
		Model(&model.AffiliateCommission{}).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(order_amount), 0) AS total_sales,
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS approved_amount,
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid_amount`,
			model.CommissionPending, model.CommissionApproved, model.CommissionPaid).
		Where("affiliate_id = ?", affiliateID).
		Scan(&summary).Error
	if err != nil {
		logger.Error("Failed to summarize commissions", zap.Error(err), zap.String("affiliateID", affiliateID))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	summary.AffiliateID = affiliateID
	return &summary, nil
}

func (dao *AffiliateDAO) ListCommissions(ctx context.Context, affiliateID string, limit, offset int) ([]model.AffiliateCommission, error) {
	var commissions []model.AffiliateCommission
	err := dao.DB.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&commissions).Error
	if err != nil {
		logger.Error("Failed to list commissions", zap.Error(err), zap.String("affiliateID", affiliateID))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return commissions, nil
}

func (dao *AffiliateDAO) RecordCommission(ctx context.Context, commission model.AffiliateCommission) (*model.AffiliateCommission, error) {
	if commission.Status == "" {
		commission.Status = model.CommissionPending
	}
	if err := dao.DB.WithContext(ctx).Create(&commission).Error; err != nil {
		logger.Error("Failed to record commission", zap.Error(err), zap.String("affiliateID", commission.AffiliateID))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return &commission, nil
}
