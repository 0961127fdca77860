// controller/affiliate_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/service"
	"github.com/stylino/storefront/util"
	helper_util "github.com/stylino/storefront/util/helper"
)

type AffiliateController struct {
	affiliateService service.IAffiliateService
	authorize        gin.HandlerFunc
}

func NewAffiliateController(affiliateService service.IAffiliateService, authorize gin.HandlerFunc) *AffiliateController {
	return &AffiliateController{
		affiliateService: affiliateService,
		authorize:        authorize,
	}
}

func (ac *AffiliateController) RegisterRoutes(r *gin.RouterGroup) {
	affiliate := r.Group("/affiliate", ac.authorize)
	{
		affiliate.GET("/summary", ac.Summary)
		affiliate.GET("/commissions", ac.ListCommissions)
	}
}

// Summary reads the caller's totals. Admins may pass ?affiliate_id=.
func (ac *AffiliateController) Summary(c *gin.Context) {
	principal, ok := util.GetPrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, msgUnauthorized, stylino_errors.ErrUnauthorized)
		return
	}

	summary, err := ac.affiliateService.Summary(c, principal, c.Query("affiliate_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ac *AffiliateController) ListCommissions(c *gin.Context) {
	principal, ok := util.GetPrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, msgUnauthorized, stylino_errors.ErrUnauthorized)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidPaging, stylino_errors.ErrInvalidPagination)
		return
	}

	commissions, err := ac.affiliateService.ListCommissions(c, principal, c.Query("affiliate_id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, commissions)
}
