package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"officetools/internal/application/order/usecases"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type OrderHandler struct {
	checkoutUC      checkoutUseCase
	customPaymentUC customPaymentUseCase
	callbackUC      paymentCallbackUseCase
	logger          logger.Interface
}

func NewOrderHandler(
	checkoutUC checkoutUseCase,
	customPaymentUC customPaymentUseCase,
	callbackUC paymentCallbackUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		checkoutUC:      checkoutUC,
		customPaymentUC: customPaymentUC,
		callbackUC:      callbackUC,
		logger:          logger,
	}
}

type CheckoutRequest struct {
	Plan          string `json:"plan" binding:"required"`
	Price         string `json:"price" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,max=100"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=card"`
}

type CustomPaymentRequest struct {
	Plan          string `json:"plan" binding:"required"`
	Price         string `json:"price" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,max=100"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=bank_transfer mobile_wallet"`
	Reference     string `json:"reference" binding:"max=200"`
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.NewValidationError("invalid price", raw)
	}
	return price, nil
}

// Checkout handles POST /api/checkout
// @Summary Start a card checkout
// @Description Records a pending order and returns the hosted payment page URL
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Checkout data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for checkout", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutCommand{
		Plan:          req.Plan,
		Price:         price,
		Email:         req.Email,
		Name:          req.Name,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Checkout session created")
}

// CustomPayment handles POST /api/custom-payment
// @Summary Record a manual payment
// @Description Records a pending_manual order awaiting admin approval
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CustomPaymentRequest true "Payment data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/custom-payment [post]
func (h *OrderHandler) CustomPayment(c *gin.Context) {
	var req CustomPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for custom payment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customPaymentUC.Execute(c.Request.Context(), usecases.CustomPaymentCommand{
		Plan:          req.Plan,
		Price:         price,
		Email:         req.Email,
		Name:          req.Name,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment recorded, awaiting confirmation")
}

// PaymentCallback handles POST /api/payment/callback
// @Summary Payment gateway webhook
// @Description Always answers 200 so the gateway stops retrying
// @Tags orders
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/payment/callback [post]
func (h *OrderHandler) PaymentCallback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.logger.Warnw("unreadable payment callback", "error", err)
		utils.SuccessResponse(c, http.StatusOK, "received", nil)
		return
	}

	result, err := h.callbackUC.Execute(c.Request.Context(), c.Request.Form)
	if err != nil {
		h.logger.Errorw("payment callback processing failed", "error", err)
		utils.SuccessResponse(c, http.StatusOK, "received", nil)
		return
	}

	h.logger.Infow("payment callback processed",
		"invoice_id", result.InvoiceID,
		"outcome", result.Outcome,
	)
	utils.SuccessResponse(c, http.StatusOK, "received", nil)
}
