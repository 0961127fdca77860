// service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/stylino/storefront/audit"
	"github.com/stylino/storefront/dao"
	"github.com/stylino/storefront/util"
)

type Services struct {
	Catalog   ICatalogService
	Admin     IAdminService
	Affiliate IAffiliateService
	Account   IAccountService
}

func InitializeServices(
	database *gorm.DB,
	sessions SessionRevoker,
	caches *CatalogCaches,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(database)
	catalogDAO := dao.NewCatalogDAO(database)
	settingsDAO := dao.NewSettingsDAO(database)
	affiliateDAO := dao.NewAffiliateDAO(database)

	catalog := NewCatalogService(catalogDAO, settingsDAO, caches)

	services := &Services{
		Catalog:   catalog,
		Admin:     NewAdminService(userDAO, catalogDAO, settingsDAO, catalog, auditService, validationUtil, notificationSvc, eventBus),
		Affiliate: NewAffiliateService(affiliateDAO, validationUtil),
		Account:   NewAccountService(userDAO, sessions),
	}

	return services, nil
}
