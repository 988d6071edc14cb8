package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officetools/internal/domain/catalog"
	"officetools/internal/shared/utils"
)

type toolLister interface {
	All() []catalog.Tool
}

type planLister interface {
	All() []catalog.Plan
}

type CatalogHandler struct {
	tools toolLister
	plans planLister
}

func NewCatalogHandler(tools toolLister, plans planLister) *CatalogHandler {
	return &CatalogHandler{tools: tools, plans: plans}
}

// PlanResponse is the public view of a configured plan.
type PlanResponse struct {
	Name         string `json:"name"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	DurationDays int    `json:"duration_days"`
	Rank         int    `json:"rank"`
}

// ListTools handles GET /api/tools
// @Summary List tools
// @Description List every tool with its category and required plan
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/tools [get]
func (h *CatalogHandler) ListTools(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.tools.All())
}

// ListPlans handles GET /api/plans
// @Summary List plans
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/plans [get]
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans := h.plans.All()
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{
			Name:         p.Name,
			Price:        p.Price.StringFixed(2),
			Currency:     p.Currency,
			DurationDays: int(p.Duration.Hours() / 24),
			Rank:         p.Rank,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}
