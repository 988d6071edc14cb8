package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderusecases "officetools/internal/application/order/usecases"
	"officetools/internal/interfaces/http/middleware"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type OrderHandler struct {
	approveUC   approvePaymentUseCase
	rejectUC    rejectPaymentUseCase
	reconcileUC reconcileOrderUseCase
	listUC      listOrdersUseCase
	logger      logger.Interface
}

func NewOrderHandler(
	approveUC approvePaymentUseCase,
	rejectUC rejectPaymentUseCase,
	reconcileUC reconcileOrderUseCase,
	listUC listOrdersUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		approveUC:   approveUC,
		rejectUC:    rejectUC,
		reconcileUC: reconcileUC,
		listUC:      listUC,
		logger:      logger,
	}
}

// ApprovePaymentRequest may carry admin_key for clients that cannot set
// headers; the auth middleware consumes it.
type ApprovePaymentRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
	AdminKey  string `json:"admin_key,omitempty"`
}

type RejectPaymentRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
	Reason    string `json:"reason" binding:"max=500"`
	AdminKey  string `json:"admin_key,omitempty"`
}

// ApprovePayment handles POST /api/admin/approve-payment
// @Summary Approve a payment
// @Description Completes the order and activates or renews the subscription
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Security AdminKey
// @Param request body ApprovePaymentRequest true "Invoice"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/approve-payment [post]
func (h *OrderHandler) ApprovePayment(c *gin.Context) {
	var req ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), orderusecases.ApprovePaymentCommand{
		InvoiceID:  req.InvoiceID,
		ApprovedBy: middleware.AdminSubject(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := "Payment approved"
	if result.AlreadyCompleted {
		msg = "Payment already approved"
	}
	utils.SuccessResponse(c, http.StatusOK, msg, result)
}

// RejectPayment handles POST /api/admin/reject-payment
// @Summary Reject a payment
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Security AdminKey
// @Param request body RejectPaymentRequest true "Invoice and reason"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/reject-payment [post]
func (h *OrderHandler) RejectPayment(c *gin.Context) {
	var req RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), orderusecases.RejectPaymentCommand{
		InvoiceID:  req.InvoiceID,
		Reason:     req.Reason,
		RejectedBy: middleware.AdminSubject(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment rejected", result)
}

// ReconcileOrder handles POST /api/admin/orders/:invoice_id/reconcile
// @Summary Reconcile an order with the gateway
// @Tags admin
// @Produce json
// @Security Bearer
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/orders/{invoice_id}/reconcile [post]
func (h *OrderHandler) ReconcileOrder(c *gin.Context) {
	result, err := h.reconcileUC.Execute(c.Request.Context(), orderusecases.ReconcileOrderCommand{
		InvoiceID: c.Param("invoice_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("order reconciled",
		"invoice_id", result.InvoiceID,
		"gateway_status", result.GatewayStatus,
		"changed", result.Changed,
		"admin", middleware.AdminSubject(c),
	)
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOrders handles GET /api/admin/orders
// @Summary List orders
// @Tags admin
// @Produce json
// @Security Bearer
// @Param status query string false "Order status"
// @Param email query string false "Customer email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), orderusecases.ListOrdersQuery{
		Status:   c.Query("status"),
		Email:    c.Query("email"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total, result.Page, result.PageSize)
}
