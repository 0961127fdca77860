// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

// NotificationService records admin-visible changes in the log stream.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyProductChange(ctx context.Context, changeType string, product model.Product) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New product created",
			zap.Uint("productID", product.ID),
			zap.String("slug", product.Slug))
	case "updated":
		logger.Info("NOTIFICATION: Product updated",
			zap.Uint("productID", product.ID),
			zap.String("slug", product.Slug),
			zap.Int("stock", product.Stock))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	if product.Stock == 0 && product.IsActive {
		return n.NotifyAdmins(ctx, fmt.Sprintf("product %s is out of stock", product.Slug))
	}
	return nil
}

func (n *NotificationService) NotifyCategoryChange(ctx context.Context, changeType string, category model.Category) error {
	logger.Info("Notifying category change",
		zap.String("changeType", changeType),
		zap.Uint("categoryID", category.ID),
		zap.String("slug", category.Slug))
	return nil
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	logger.Info("Notifying user change",
		zap.String("changeType", changeType),
		zap.String("userID", user.ID),
		zap.String("role", string(user.Role)),
		zap.Bool("blocked", user.IsBlocked))
	return nil
}

func (n *NotificationService) NotifySettingsChange(ctx context.Context, setting model.Setting) error {
	logger.Info("Notifying settings change",
		zap.Bool("maintenanceMode", setting.MaintenanceMode),
		zap.Int64("shippingFee", setting.ShippingFee))
	if setting.MaintenanceMode {
		return n.NotifyAdmins(ctx, "storefront entered maintenance mode")
	}
	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
