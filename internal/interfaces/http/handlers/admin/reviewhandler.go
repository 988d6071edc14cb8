package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reviewusecases "officetools/internal/application/review/usecases"
	"officetools/internal/interfaces/http/middleware"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type ReviewHandler struct {
	listUC   listAllReviewsUseCase
	deleteUC deleteReviewUseCase
	pinUC    setReviewPinnedUseCase
	logger   logger.Interface
}

func NewReviewHandler(
	listUC listAllReviewsUseCase,
	deleteUC deleteReviewUseCase,
	pinUC setReviewPinnedUseCase,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		listUC:   listUC,
		deleteUC: deleteUC,
		pinUC:    pinUC,
		logger:   logger,
	}
}

type PinReviewRequest struct {
	Pinned *bool `json:"pinned" binding:"required"`
}

func parseReviewID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid review id", c.Param("id"))
	}
	return uint(id), nil
}

// ListReviews handles GET /api/admin/reviews
// @Summary List all reviews
// @Tags admin
// @Produce json
// @Security Bearer
// @Param tool query string false "Tool slug"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), reviewusecases.ListAllReviewsQuery{
		Tool:     c.Query("tool"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reviews, result.Total, result.Page, result.PageSize)
}

// DeleteReview handles DELETE /api/admin/reviews/:id
// @Summary Delete a review
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, middleware.AdminSubject(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review deleted", nil)
}

// PinReview handles PATCH /api/admin/reviews/:id/pin
// @Summary Pin or unpin a review
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Param request body PinReviewRequest true "Pinned flag"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/reviews/{id}/pin [patch]
func (h *ReviewHandler) PinReview(c *gin.Context) {
	id, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PinReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.pinUC.Execute(c.Request.Context(), reviewusecases.SetReviewPinnedCommand{
		ID:     id,
		Pinned: *req.Pinned,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
