// service/account_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
)

type IAccountService interface {
	Me(ctx context.Context, userID string) (*model.User, error)
	Logout(ctx context.Context, userID, token string) error
}

type AccountService struct {
	userStore UserStore
	sessions  SessionRevoker
}

var _ IAccountService = &AccountService{}

func NewAccountService(userStore UserStore, sessions SessionRevoker) *AccountService {
	return &AccountService{userStore: userStore, sessions: sessions}
}

func (s *AccountService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.userStore.GetUser(ctx, userID)
}

func (s *AccountService) Logout(ctx context.Context, userID, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	logger.Info("User logged out", zap.String("userID", userID))
	return nil
}
