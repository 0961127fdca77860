// service/admin_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/stylino/storefront/audit"
	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/util"
)

// IAdminService defines the back-office write operations.
type IAdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
	SetUserBlocked(ctx context.Context, actorID, userID string, blocked bool) (*model.User, error)
	ChangeUserRole(ctx context.Context, actorID, userID string, role model.Role) (*model.User, error)
	CreateCategory(ctx context.Context, actorID string, category model.Category) (*model.Category, error)
	CreateProduct(ctx context.Context, actorID string, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, actorID, slug string, product model.Product) (*model.Product, error)
	UpdateSettings(ctx context.Context, actorID string, setting model.Setting) (model.Setting, error)
	QueryAuditLogs(ctx context.Context, from, to time.Time, actorID, targetID string) ([]audit.AuditLog, error)
}

// maxAuditWindow bounds one audit query.
const maxAuditWindow = 31 * 24 * time.Hour

type AdminService struct {
	userStore       UserStore
	catalogStore    CatalogStore
	settingsStore   SettingsStore
	catalog         ICatalogService
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAdminService = &AdminService{}

func NewAdminService(
	userStore UserStore,
	catalogStore CatalogStore,
	settingsStore SettingsStore,
	catalog ICatalogService,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *AdminService {
	service := &AdminService{
		userStore:       userStore,
		catalogStore:    catalogStore,
		settingsStore:   settingsStore,
		catalog:         catalog,
		auditService:    auditService,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventProductCreated, service.handleProductChanged)
	eventBus.Subscribe(util.EventProductUpdated, service.handleProductChanged)
	eventBus.Subscribe(util.EventCategoryCreated, service.handleCategoryCreated)
	eventBus.Subscribe(util.EventUserBlocked, service.handleUserChanged)
	eventBus.Subscribe(util.EventUserUnblocked, service.handleUserChanged)
	eventBus.Subscribe(util.EventUserRoleChanged, service.handleUserChanged)
	eventBus.Subscribe(util.EventSettingsUpdated, service.handleSettingsUpdated)

	return service
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	if err := s.validationUtil.ValidatePagination(limit, offset); err != nil {
		return nil, err
	}
	return s.userStore.ListUsers(ctx, limit, offset)
}

// SetUserBlocked takes effect on the user's next request; the guard reads
// the flag from the store every time.
func (s *AdminService) SetUserBlocked(ctx context.Context, actorID, userID string, blocked bool) (*model.User, error) {
	if blocked && actorID == userID {
		return nil, fmt.Errorf("%w: admins cannot block themselves", stylino_errors.ErrInvalidUserData)
	}

	before, err := s.userStore.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.userStore.SetBlocked(ctx, userID, blocked)
	if err != nil {
		return nil, err
	}

	action, event := audit.ActionUnblockUser, util.EventUserUnblocked
	if blocked {
		action, event = audit.ActionBlockUser, util.EventUserBlocked
	}
	s.record(ctx, actorID, action, userID, audit.ChangeDetails(before.IsBlocked, user.IsBlocked))
	s.eventBus.Publish(ctx, event, *user)

	logger.Info("User block flag changed",
		zap.String("actorID", actorID),
		zap.String("userID", userID),
		zap.Bool("blocked", blocked))
	return user, nil
}

func (s *AdminService) ChangeUserRole(ctx context.Context, actorID, userID string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, stylino_errors.ErrInvalidRole
	}
	if actorID == userID && role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: admins cannot demote themselves", stylino_errors.ErrInvalidUserData)
	}

	before, err := s.userStore.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.userStore.SetRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	s.record(ctx, actorID, audit.ActionChangeRole, userID, audit.ChangeDetails(before.Role, user.Role))
	s.eventBus.Publish(ctx, util.EventUserRoleChanged, *user)
	return user, nil
}

func (s *AdminService) CreateCategory(ctx context.Context, actorID string, category model.Category) (*model.Category, error) {
	if err := s.validationUtil.ValidateCategory(category); err != nil {
		return nil, err
	}
	created, err := s.catalogStore.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	s.catalog.InvalidateCategories()
	s.record(ctx, actorID, audit.ActionCreateCategory, strconv.FormatUint(uint64(created.ID), 10), audit.ChangeDetails(nil, created))
	s.eventBus.Publish(ctx, util.EventCategoryCreated, *created)
	return created, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, actorID string, product model.Product) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, err
	}
	created, err := s.catalogStore.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.catalog.InvalidateProduct(created.Slug)
	s.record(ctx, actorID, audit.ActionCreateProduct, created.Slug, audit.ChangeDetails(nil, created))
	s.eventBus.Publish(ctx, util.EventProductCreated, *created)
	return created, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, actorID, slug string, product model.Product) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, err
	}
	old, updated, err := s.catalogStore.UpdateProduct(ctx, slug, product)
	if err != nil {
		return nil, err
	}

	s.catalog.InvalidateProduct(slug)
	if updated.Slug != slug {
		s.catalog.InvalidateProduct(updated.Slug)
	}
	s.record(ctx, actorID, audit.ActionUpdateProduct, updated.Slug, audit.ChangeDetails(old, updated))
	s.eventBus.Publish(ctx, util.EventProductUpdated, *updated)
	return updated, nil
}

func (s *AdminService) UpdateSettings(ctx context.Context, actorID string, setting model.Setting) (model.Setting, error) {
	if err := s.validationUtil.ValidateSettings(setting); err != nil {
		return model.Setting{}, err
	}
	before, err := s.settingsStore.GetSettings(ctx)
	if err != nil {
		return model.Setting{}, err
	}
	saved, err := s.settingsStore.SaveSettings(ctx, setting)
	if err != nil {
		return model.Setting{}, err
	}

	s.catalog.InvalidateSettings()
	s.record(ctx, actorID, audit.ActionUpdateSettings, "settings", audit.ChangeDetails(before, saved))
	s.eventBus.Publish(ctx, util.EventSettingsUpdated, saved)
	return saved, nil
}

// QueryAuditLogs lists audit entries in [from, to], newest first, optionally
// narrowed to one actor or target.
func (s *AdminService) QueryAuditLogs(ctx context.Context, from, to time.Time, actorID, targetID string) ([]audit.AuditLog, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from is after to", stylino_errors.ErrInvalidTimeRange)
	}
	if to.Sub(from) > maxAuditWindow {
		return nil, fmt.Errorf("%w: window exceeds %s", stylino_errors.ErrInvalidTimeRange, maxAuditWindow)
	}

	logs, err := s.auditService.QueryLogs(ctx, from, to, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	logger.Debug("Audit logs queried",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.String("actorID", actorID),
		zap.String("targetID", targetID),
		zap.Int("count", len(logs)))
	return logs, nil
}

// record writes an audit entry. Audit failures never fail the write.
func (s *AdminService) record(ctx context.Context, actorID, action, targetID string, details []byte) {
	entry := audit.AuditLog{
		ActorID:       actorID,
		Action:        action,
		TargetID:      targetID,
		AccessGranted: true,
		ChangeDetails: details,
	}
	if err := s.auditService.LogAccess(ctx, entry); err != nil {
		logger.Warn("Failed to write audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.String("targetID", targetID))
	}
}

func (s *AdminService) handleProductChanged(ctx context.Context, event util.Event) error {
	product, ok := event.Payload.(model.Product)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	changeType := "updated"
	if event.Type == util.EventProductCreated {
		changeType = "created"
	}
	return s.notificationSvc.NotifyProductChange(ctx, changeType, product)
}

func (s *AdminService) handleCategoryCreated(ctx context.Context, event util.Event) error {
	category, ok := event.Payload.(model.Category)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return s.notificationSvc.NotifyCategoryChange(ctx, "created", category)
}

func (s *AdminService) handleUserChanged(ctx context.Context, event util.Event) error {
	user, ok := event.Payload.(model.User)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return s.notificationSvc.NotifyUserChange(ctx, event.Type, user)
}

func (s *AdminService) handleSettingsUpdated(ctx context.Context, event util.Event) error {
	setting, ok := event.Payload.(model.Setting)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return s.notificationSvc.NotifySettingsChange(ctx, setting)
}
