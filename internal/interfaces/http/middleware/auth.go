package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"officetools/internal/infrastructure/auth"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

const maxKeyBodyBytes = 64 << 10

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type KeyVerifier interface {
	Verify(key string) (role string, ok bool)
}

// AdminAuthMiddleware accepts a bearer token from the login endpoint, the
// X-Admin-Key header, or an admin_key field in a JSON body.
type AdminAuthMiddleware struct {
	tokens TokenVerifier
	keys   KeyVerifier
	logger logger.Interface
}

func NewAdminAuthMiddleware(tokens TokenVerifier, keys KeyVerifier, logger logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		tokens: tokens,
		keys:   keys,
		logger: logger,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader(constants.HeaderAuthorization); authHeader != "" {
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			claims, err := m.tokens.Verify(token)
			if err != nil {
				m.logger.Warnw("failed to verify admin token", "error", err, "client_ip", c.ClientIP())
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}

			setAdmin(c, claims.Subject, claims.Role)
			c.Next()
			return
		}

		key := c.GetHeader(constants.HeaderAdminKey)
		if key == "" {
			key = keyFromBody(c)
		}
		if key == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "admin credentials required")
			c.Abort()
			return
		}

		role, ok := m.keys.Verify(key)
		if !ok {
			m.logger.Warnw("invalid admin key", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid admin key")
			c.Abort()
			return
		}

		setAdmin(c, role, role)
		c.Next()
	}
}

func setAdmin(c *gin.Context, subject, role string) {
	c.Set(constants.ContextKeyAdminSubject, subject)
	c.Set(constants.ContextKeyAdminRole, role)
}

type peekedBody struct {
	io.Reader
	io.Closer
}

// keyFromBody peeks at a JSON body for admin_key and restores the body for
// the handler. Only the first maxKeyBodyBytes are inspected; the handler
// still sees the whole body.
func keyFromBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
		return ""
	}

	orig := c.Request.Body
	body, err := io.ReadAll(io.LimitReader(orig, maxKeyBodyBytes))
	c.Request.Body = peekedBody{Reader: io.MultiReader(bytes.NewReader(body), orig), Closer: orig}
	if err != nil {
		return ""
	}

	var payload struct {
		AdminKey string `json:"admin_key"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.AdminKey
}

// AdminSubject returns who the request was authenticated as.
func AdminSubject(c *gin.Context) string {
	return c.GetString(constants.ContextKeyAdminSubject)
}
