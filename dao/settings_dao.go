// dao/settings_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

type SettingsDAO struct {
	DB *gorm.DB
}

func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{DB: db}
}

// GetSettings returns the singleton row, or the defaults before the first save.
func (dao *SettingsDAO) GetSettings(ctx context.Context) (model.Setting, error) {
	var setting model.Setting
	err := dao.DB.WithContext(ctx).Where("id = ?", model.SettingsRowID).Take(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
		return model.Setting{}, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return setting, nil
}

func (dao *SettingsDAO) SaveSettings(ctx context.Context, setting model.Setting) (model.Setting, error) {
	setting.ID = model.SettingsRowID
	err := dao.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&setting).Error
	if err != nil {
		logger.Error("Failed to save settings", zap.Error(err))
		return model.Setting{}, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	logger.Info("Settings saved successfully")
	return setting, nil
}
