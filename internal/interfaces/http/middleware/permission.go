package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type PolicyEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// PermissionMiddleware checks the authenticated admin role against the
// casbin policy. It must run after AdminAuthMiddleware.
type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyAdminRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "admin not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
