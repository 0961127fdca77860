// controller/admin_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	"github.com/stylino/storefront/service"
	"github.com/stylino/storefront/util"
	helper_util "github.com/stylino/storefront/util/helper"
)

type AdminController struct {
	adminService service.IAdminService
	authorize    gin.HandlerFunc
}

// NewAdminController mounts every admin route behind authorize.
func NewAdminController(adminService service.IAdminService, authorize gin.HandlerFunc) *AdminController {
	return &AdminController{
		adminService: adminService,
		authorize:    authorize,
	}
}

func (ac *AdminController) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin", ac.authorize)
	{
		admin.GET("/users", ac.ListUsers)
		admin.PATCH("/users/:id/block", ac.SetUserBlocked)
		admin.PATCH("/users/:id/role", ac.ChangeUserRole)
		admin.POST("/categories", ac.CreateCategory)
		admin.POST("/products", ac.CreateProduct)
		admin.PUT("/products/:slug", ac.UpdateProduct)
		admin.PUT("/settings", ac.UpdateSettings)
		admin.GET("/audit-logs", ac.QueryAuditLogs)
	}
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidPaging, stylino_errors.ErrInvalidPagination)
		return
	}

	users, err := ac.adminService.ListUsers(c, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ac *AdminController) SetUserBlocked(c *gin.Context) {
	var req model.BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}

	user, err := ac.adminService.SetUserBlocked(c, util.GetUserIDFromContext(c), c.Param("id"), req.Blocked)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) ChangeUserRole(c *gin.Context) {
	var req model.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}

	user, err := ac.adminService.ChangeUserRole(c, util.GetUserIDFromContext(c), c.Param("id"), req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, stylino_errors.ErrInvalidCategoryData)
		return
	}
	category.ID = 0

	created, err := ac.adminService.CreateCategory(c, util.GetUserIDFromContext(c), category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ac *AdminController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, stylino_errors.ErrInvalidProductData)
		return
	}
	product.ID = 0

	created, err := ac.adminService.CreateProduct(c, util.GetUserIDFromContext(c), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ac *AdminController) UpdateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, stylino_errors.ErrInvalidProductData)
		return
	}
	slug := c.Param("slug")
	if product.Slug == "" {
		product.Slug = slug
	}

	updated, err := ac.adminService.UpdateProduct(c, util.GetUserIDFromContext(c), slug, product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var setting model.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidRequest, stylino_errors.ErrInvalidSettingsData)
		return
	}

	saved, err := ac.adminService.UpdateSettings(c, util.GetUserIDFromContext(c), setting)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// QueryAuditLogs lists audit entries. from and to are RFC 3339 and default to
// the last day; actor_id and target_id narrow the result.
func (ac *AdminController) QueryAuditLogs(c *gin.Context) {
	from, to, err := helper_util.GetTimeRangeParams(c, time.Now().UTC())
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgInvalidTimeRange, stylino_errors.ErrInvalidTimeRange)
		return
	}
	logs, err := ac.adminService.QueryAuditLogs(c, from, to, c.Query("actor_id"), c.Query("target_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "private, no-store")
	c.JSON(http.StatusOK, logs)
}
