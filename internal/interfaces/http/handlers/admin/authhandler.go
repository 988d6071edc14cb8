// Package admin serves the key-protected back office endpoints.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "officetools/internal/application/admin/usecases"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type AuthHandler struct {
	loginUC loginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, logger: logger}
}

type LoginRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Exchanges the admin key for a short-lived bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin key"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), adminusecases.LoginCommand{
		AdminKey:  req.AdminKey,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
