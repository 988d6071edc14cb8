package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subusecases "officetools/internal/application/subscription/usecases"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type SubscriptionHandler struct {
	verifyUC verifySubscriptionUseCase
	accessUC checkToolAccessUseCase
	logger   logger.Interface
}

func NewSubscriptionHandler(
	verifyUC verifySubscriptionUseCase,
	accessUC checkToolAccessUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		verifyUC: verifyUC,
		accessUC: accessUC,
		logger:   logger,
	}
}

// VerifySubscription handles GET /api/verify-subscription
// @Summary Verify a subscription
// @Description Unknown emails answer active=false rather than 404
// @Tags subscriptions
// @Produce json
// @Param email query string true "Subscriber email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/verify-subscription [get]
func (h *SubscriptionHandler) VerifySubscription(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), subusecases.VerifySubscriptionQuery{Email: email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckToolAccess handles GET /api/tools/:slug/access
// @Summary Check tool access
// @Description Server-side counterpart of the client plan gate
// @Tags subscriptions
// @Produce json
// @Param slug path string true "Tool slug"
// @Param X-Subscriber-Email header string false "Subscriber email"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tools/{slug}/access [get]
func (h *SubscriptionHandler) CheckToolAccess(c *gin.Context) {
	email := c.GetHeader(constants.HeaderSubscriberEmail)
	if email == "" {
		email = c.Query("email")
	}

	result, err := h.accessUC.Execute(c.Request.Context(), subusecases.CheckToolAccessQuery{
		Email: email,
		Tool:  c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
