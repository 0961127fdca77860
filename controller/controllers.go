// controller/controllers.go
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/stylino/storefront/config"
	"github.com/stylino/storefront/service"
)

type Controllers struct {
	Catalog   *CatalogController
	Admin     *AdminController
	Affiliate *AffiliateController
	Account   *AccountController
}

// Authorizers are the role middlewares for each protected route group.
type Authorizers struct {
	Admin     gin.HandlerFunc
	Affiliate gin.HandlerFunc
	Customer  gin.HandlerFunc
}

func InitializeControllers(services *service.Services, authorizers Authorizers, sessions SessionTokens, cacheConfig config.CacheConfiguration) *Controllers {
	return &Controllers{
		Catalog:   NewCatalogController(services.Catalog, cacheConfig),
		Admin:     NewAdminController(services.Admin, authorizers.Admin),
		Affiliate: NewAffiliateController(services.Affiliate, authorizers.Affiliate),
		Account:   NewAccountController(services.Account, sessions, authorizers.Customer),
	}
}
