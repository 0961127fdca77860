// middleware/role_auth.go
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stylino/storefront/audit"
	"github.com/stylino/storefront/auth"
	logger "github.com/stylino/storefront/logging"
	"github.com/stylino/storefront/util"
)

const MessageInternalError = "خطای داخلی سرور"

// GuardFunc is one of the auth.Guard Require* methods.
type GuardFunc func(ctx context.Context, r *http.Request) (auth.Decision, error)

// RoleAuthMiddleware admits the request only when guard authorizes it.
// Denials are written verbatim and audited; the authorized principal is
// stored under util.PrincipalContextKey.
func RoleAuthMiddleware(guard GuardFunc, auditService audit.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := guard(c.Request.Context(), c.Request)
		if err != nil {
			logger.Error("Authorization check failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.AbortWithStatusJSON(http.StatusInternalServerError, auth.ErrorBody{Error: MessageInternalError})
			return
		}

		if !decision.OK() {
			logger.Warn("Request denied",
				zap.String("outcome", decision.Outcome.String()),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			recordDenial(c, auditService, decision)
			c.AbortWithStatusJSON(decision.Denial.Status, decision.Denial.Body)
			return
		}

		c.Set(util.PrincipalContextKey, decision.Principal)
		c.Set(util.UserIDContextKey, decision.Principal.ID)
		c.Next()
	}
}

func recordDenial(c *gin.Context, auditService audit.Service, decision auth.Decision) {
	if auditService == nil {
		return
	}
	entry := audit.AuditLog{
		Action:        audit.ActionAccessDenied,
		TargetID:      c.FullPath(),
		Path:          c.Request.URL.Path,
		Outcome:       decision.Outcome.String(),
		Status:        decision.Denial.Status,
		AccessGranted: false,
	}
	if err := auditService.LogAccess(c.Request.Context(), entry); err != nil {
		logger.Warn("Failed to audit denial", zap.Error(err))
	}
}
