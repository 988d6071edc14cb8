package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewdto "officetools/internal/application/review/dto"
	reviewusecases "officetools/internal/application/review/usecases"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type ReviewHandler struct {
	createUC createReviewUseCase
	listUC   listReviewsUseCase
	logger   logger.Interface
}

func NewReviewHandler(createUC createReviewUseCase, listUC listReviewsUseCase, logger logger.Interface) *ReviewHandler {
	return &ReviewHandler{createUC: createUC, listUC: listUC, logger: logger}
}

type CreateReviewRequest struct {
	Tool       string `json:"tool" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"max=500"`
	AuthorName string `json:"author_name" binding:"max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// ReviewListResponse is the public review page with its rating summary.
type ReviewListResponse struct {
	Items      []*reviewdto.ReviewDTO `json:"items"`
	Summary    reviewdto.SummaryDTO   `json:"summary"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// ListReviews handles GET /api/reviews
// @Summary List reviews for a tool
// @Description Pinned reviews first, then newest first, with count and average rating
// @Tags reviews
// @Produce json
// @Param tool query string true "Tool slug"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	tool := c.Query("tool")
	if tool == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("tool is required"))
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), reviewusecases.ListReviewsQuery{
		Tool:     tool,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ReviewListResponse{
		Items:      result.Reviews,
		Summary:    result.Summary,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: utils.TotalPages(result.Total, result.PageSize),
	})
}

// CreateReview handles POST /api/reviews
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create review", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), reviewusecases.CreateReviewCommand{
		Tool:       req.Tool,
		Rating:     req.Rating,
		Comment:    req.Comment,
		AuthorName: req.AuthorName,
		Email:      req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review submitted")
}
