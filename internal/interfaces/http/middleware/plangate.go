package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	subUsecases "officetools/internal/application/subscription/usecases"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type toolAccessChecker interface {
	Execute(ctx context.Context, query subUsecases.CheckToolAccessQuery) (*subUsecases.CheckToolAccessResult, error)
}

// PlanGateMiddleware requires an active subscription for paid tools. The
// subscriber is identified by the X-Subscriber-Email header. When disabled
// every request passes, leaving the gate to the browser.
type PlanGateMiddleware struct {
	checker toolAccessChecker
	enabled bool
	logger  logger.Interface
}

func NewPlanGateMiddleware(checker toolAccessChecker, enabled bool, logger logger.Interface) *PlanGateMiddleware {
	return &PlanGateMiddleware{
		checker: checker,
		enabled: enabled,
		logger:  logger,
	}
}

func (m *PlanGateMiddleware) RequireTool(tool string) gin.HandlerFunc {
	return m.RequireToolFunc(func(*gin.Context) (string, error) { return tool, nil })
}

// RequireToolFunc gates on a tool chosen per request, e.g. from a form field.
// A resolve error rejects the request.
func (m *PlanGateMiddleware) RequireToolFunc(resolve func(c *gin.Context) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		tool, err := resolve(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		result, err := m.checker.Execute(c.Request.Context(), subUsecases.CheckToolAccessQuery{
			Email: c.GetHeader(constants.HeaderSubscriberEmail),
			Tool:  tool,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if !result.Allowed {
			m.logger.Infow("plan gate denied", "tool", tool, "required_plan", result.RequiredPlan, "reason", result.Reason)
			c.JSON(http.StatusPaymentRequired, utils.APIResponse{
				Success: false,
				Error: &utils.ErrorInfo{
					Type:    "payment_required",
					Message: result.Reason,
					Details: result.RequiredPlan,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
