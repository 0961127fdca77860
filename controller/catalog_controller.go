// controller/catalog_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylino/storefront/config"
	"github.com/stylino/storefront/service"
	"github.com/stylino/storefront/util"
)

// CatalogController serves the anonymous storefront reads.
type CatalogController struct {
	catalogService service.ICatalogService
	cacheConfig    config.CacheConfiguration
}

func NewCatalogController(catalogService service.ICatalogService, cacheConfig config.CacheConfiguration) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		cacheConfig:    cacheConfig,
	}
}

func (cc *CatalogController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", cc.ListCategories)
	r.GET("/products/:slug", cc.GetProduct)
	r.GET("/settings", cc.GetSettings)
}

func (cc *CatalogController) ListCategories(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", util.CacheControl(cc.cacheConfig.Categories.MaxAge, cc.cacheConfig.Categories.SWR))
	c.JSON(http.StatusOK, categories)
}

func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, err := cc.catalogService.GetProduct(c, c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", util.CacheControl(cc.cacheConfig.Products.MaxAge, cc.cacheConfig.Products.SWR))
	c.JSON(http.StatusOK, gin.H{
		"product":     product,
		"final_price": product.FinalPrice(),
	})
}

func (cc *CatalogController) GetSettings(c *gin.Context) {
	settings, err := cc.catalogService.GetPublicSettings(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", util.CacheControl(cc.cacheConfig.Settings.MaxAge, cc.cacheConfig.Settings.SWR))
	c.JSON(http.StatusOK, settings)
}
