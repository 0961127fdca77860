// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stylino/storefront/auth"
	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

type UserDAO struct {
	DB *gorm.DB
}

var _ auth.PrincipalStore = (*UserDAO)(nil)

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

// FindPrincipal loads the role and block flag of a user.
func (dao *UserDAO) FindPrincipal(ctx context.Context, subjectID string) (*auth.Principal, error) {
	var row struct {
		ID        string
		Role      model.Role
		IsBlocked bool
	}
	err := dao.DB.WithContext(ctx).
		Model(&model.User{}).
		Select("id", "role", "is_blocked").
		Where("id = ?", subjectID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylino_errors.ErrUserNotFound
		}
		logger.Error("Failed to load principal", zap.Error(err), zap.String("subjectID", subjectID))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return &auth.Principal{ID: row.ID, Role: row.Role, IsBlocked: row.IsBlocked}, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = model.RoleCustomer
	}

	if err := dao.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, stylino_errors.ErrUserConflict
		}
		logger.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return &user, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylino_errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	return users, nil
}

func (dao *UserDAO) SetBlocked(ctx context.Context, userID string, blocked bool) (*model.User, error) {
	return dao.updateColumn(ctx, userID, "is_blocked", blocked)
}

func (dao *UserDAO) SetRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, stylino_errors.ErrInvalidRole
	}
	return dao.updateColumn(ctx, userID, "role", role)
}

func (dao *UserDAO) updateColumn(ctx context.Context, userID, column string, value any) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).Take(&user).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("id = ?", userID).Update(column, value).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Take(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylino_errors.ErrUserNotFound
		}
		logger.Error("Failed to update user", zap.Error(err), zap.String("userID", userID), zap.String("column", column))
		return nil, fmt.Errorf("%w: %v", stylino_errors.ErrDatabaseOperation, err)
	}
	logger.Info("User updated successfully", zap.String("userID", userID), zap.String("column", column))
	return &user, nil
}
