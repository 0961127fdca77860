// controller/account_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylino/storefront/service"
	"github.com/stylino/storefront/util"
)

// SessionTokens exposes how the session token travels on a request.
type SessionTokens interface {
	CookieName() string
	TokenFromRequest(r *http.Request) string
}

type AccountController struct {
	accountService service.IAccountService
	sessions       SessionTokens
	authorize      gin.HandlerFunc
}

func NewAccountController(accountService service.IAccountService, sessions SessionTokens, authorize gin.HandlerFunc) *AccountController {
	return &AccountController{
		accountService: accountService,
		sessions:       sessions,
		authorize:      authorize,
	}
}

func (ac *AccountController) RegisterRoutes(r *gin.RouterGroup) {
	account := r.Group("/account", ac.authorize)
	{
		account.GET("/me", ac.Me)
		account.POST("/logout", ac.Logout)
	}
}

func (ac *AccountController) Me(c *gin.Context) {
	user, err := ac.accountService.Me(c, util.GetUserIDFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "private, no-store")
	c.JSON(http.StatusOK, user)
}

func (ac *AccountController) Logout(c *gin.Context) {
	token := ac.sessions.TokenFromRequest(c.Request)
	if err := ac.accountService.Logout(c, util.GetUserIDFromContext(c), token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.sessions.CookieName(), "", -1, "/", "", true, true)
	c.Status(http.StatusNoContent)
}
