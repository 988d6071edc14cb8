package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminusecases "officetools/internal/application/admin/usecases"
	orderdto "officetools/internal/application/order/dto"
	orderusecases "officetools/internal/application/order/usecases"
	reviewdto "officetools/internal/application/review/dto"
	reviewusecases "officetools/internal/application/review/usecases"
	"officetools/internal/interfaces/http/handlers/testutil"
	"officetools/internal/shared/constants"
	apperrors "officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockLoginUC struct {
	result *adminusecases.LoginResult
	err    error
	got    adminusecases.LoginCommand
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd adminusecases.LoginCommand) (*adminusecases.LoginResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockApproveUC struct {
	result *orderusecases.ApprovePaymentResult
	err    error
	got    orderusecases.ApprovePaymentCommand
}

func (m *mockApproveUC) Execute(ctx context.Context, cmd orderusecases.ApprovePaymentCommand) (*orderusecases.ApprovePaymentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRejectUC struct {
	result *orderusecases.RejectPaymentResult
	err    error
	got    orderusecases.RejectPaymentCommand
}

func (m *mockRejectUC) Execute(ctx context.Context, cmd orderusecases.RejectPaymentCommand) (*orderusecases.RejectPaymentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockReconcileUC struct {
	result *orderusecases.ReconcileOrderResult
	err    error
	got    orderusecases.ReconcileOrderCommand
}

func (m *mockReconcileUC) Execute(ctx context.Context, cmd orderusecases.ReconcileOrderCommand) (*orderusecases.ReconcileOrderResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListOrdersUC struct {
	result *orderusecases.ListOrdersResult
	err    error
	got    orderusecases.ListOrdersQuery
}

func (m *mockListOrdersUC) Execute(ctx context.Context, query orderusecases.ListOrdersQuery) (*orderusecases.ListOrdersResult, error) {
	m.got = query
	return m.result, m.err
}

type mockListAllReviewsUC struct {
	result *reviewusecases.ListAllReviewsResult
	err    error
}

func (m *mockListAllReviewsUC) Execute(ctx context.Context, query reviewusecases.ListAllReviewsQuery) (*reviewusecases.ListAllReviewsResult, error) {
	return m.result, m.err
}

type mockDeleteReviewUC struct {
	err       error
	gotID     uint
	deletedBy string
}

func (m *mockDeleteReviewUC) Execute(ctx context.Context, id uint, deletedBy string) error {
	m.gotID = id
	m.deletedBy = deletedBy
	return m.err
}

type mockPinReviewUC struct {
	result *reviewdto.ReviewDTO
	err    error
	got    reviewusecases.SetReviewPinnedCommand
}

func (m *mockPinReviewUC) Execute(ctx context.Context, cmd reviewusecases.SetReviewPinnedCommand) (*reviewdto.ReviewDTO, error) {
	m.got = cmd
	return m.result, m.err
}

// =====================================================================
// Login
// =====================================================================

func TestAuthHandler_Login(t *testing.T) {
	uc := &mockLoginUC{result: &adminusecases.LoginResult{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 900, Role: "admin"}}
	h := NewAuthHandler(uc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", map[string]any{"admin_key": "secret"})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "secret", uc.got.AdminKey)

	var got adminusecases.LoginResult
	_, err := testutil.DecodeEnvelope(w, &got)
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.AccessToken)
	assert.Equal(t, int64(900), got.ExpiresIn)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		h := NewAuthHandler(&mockLoginUC{}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", map[string]any{})
		h.Login(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		h := NewAuthHandler(&mockLoginUC{err: apperrors.NewUnauthorizedError("invalid admin key")}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", map[string]any{"admin_key": "nope"})
		h.Login(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =====================================================================
// Orders
// =====================================================================

func newTestOrderHandler(approve *mockApproveUC, reject *mockRejectUC, reconcile *mockReconcileUC, list *mockListOrdersUC) *OrderHandler {
	if approve == nil {
		approve = &mockApproveUC{}
	}
	if reject == nil {
		reject = &mockRejectUC{}
	}
	if reconcile == nil {
		reconcile = &mockReconcileUC{}
	}
	if list == nil {
		list = &mockListOrdersUC{}
	}
	return NewOrderHandler(approve, reject, reconcile, list, logger.NewNopLogger())
}

func TestOrderHandler_ApprovePayment(t *testing.T) {
	uc := &mockApproveUC{result: &orderusecases.ApprovePaymentResult{InvoiceID: "INV-1", Status: "completed", Plan: "pro"}}
	h := newTestOrderHandler(uc, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/approve-payment", map[string]any{
		"invoice_id": "INV-1",
		"admin_key":  "secret",
	})
	testutil.SetAdminContext(c, constants.RoleAdmin)
	h.ApprovePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INV-1", uc.got.InvoiceID)
	assert.Equal(t, constants.RoleAdmin, uc.got.ApprovedBy)

	resp, err := testutil.DecodeEnvelope(w, nil)
	require.NoError(t, err)
	assert.Equal(t, "Payment approved", resp.Message)
}

func TestOrderHandler_ApprovePayment_AlreadyCompleted(t *testing.T) {
	uc := &mockApproveUC{result: &orderusecases.ApprovePaymentResult{InvoiceID: "INV-1", Status: "completed", AlreadyCompleted: true}}
	h := newTestOrderHandler(uc, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/approve-payment", map[string]any{"invoice_id": "INV-1"})
	h.ApprovePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.DecodeEnvelope(w, nil)
	require.NoError(t, err)
	assert.Equal(t, "Payment already approved", resp.Message)
}

func TestOrderHandler_ApprovePayment_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		err      error
		wantCode int
	}{
		{"missing invoice", map[string]any{}, nil, http.StatusBadRequest},
		{"not found", map[string]any{"invoice_id": "INV-404"}, apperrors.NewNotFoundError("order not found"), http.StatusNotFound},
		{"failed order", map[string]any{"invoice_id": "INV-2"}, apperrors.NewValidationError("order has failed"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestOrderHandler(&mockApproveUC{err: tt.err}, nil, nil, nil)
			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/approve-payment", tt.body)
			h.ApprovePayment(c)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestOrderHandler_RejectPayment(t *testing.T) {
	uc := &mockRejectUC{result: &orderusecases.RejectPaymentResult{InvoiceID: "INV-1", Status: "failed"}}
	h := newTestOrderHandler(nil, uc, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reject-payment", map[string]any{
		"invoice_id": "INV-1",
		"reason":     "no transfer found",
	})
	testutil.SetAdminContext(c, constants.RoleModerator)
	h.RejectPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no transfer found", uc.got.Reason)
	assert.Equal(t, constants.RoleModerator, uc.got.RejectedBy)
}

func TestOrderHandler_ReconcileOrder(t *testing.T) {
	uc := &mockReconcileUC{result: &orderusecases.ReconcileOrderResult{InvoiceID: "INV-1", GatewayStatus: "paid", Status: "completed", Changed: true}}
	h := newTestOrderHandler(nil, nil, uc, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/orders/INV-1/reconcile", nil)
	testutil.SetURLParam(c, "invoice_id", "INV-1")
	h.ReconcileOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INV-1", uc.got.InvoiceID)

	var got orderusecases.ReconcileOrderResult
	_, err := testutil.DecodeEnvelope(w, &got)
	require.NoError(t, err)
	assert.True(t, got.Changed)
}

func TestOrderHandler_ReconcileOrder_Conflict(t *testing.T) {
	uc := &mockReconcileUC{err: apperrors.NewConflictError("amount mismatch")}
	h := newTestOrderHandler(nil, nil, uc, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/orders/INV-1/reconcile", nil)
	testutil.SetURLParam(c, "invoice_id", "INV-1")
	h.ReconcileOrder(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	uc := &mockListOrdersUC{result: &orderusecases.ListOrdersResult{
		Orders:   []*orderdto.OrderDTO{{InvoiceID: "INV-1", Status: "pending_manual"}},
		Total:    41,
		Page:     2,
		PageSize: 20,
	}}
	h := newTestOrderHandler(nil, nil, nil, uc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/orders", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "pending_manual", "email": "a@b.co", "page": "2"})
	h.ListOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending_manual", uc.got.Status)
	assert.Equal(t, "a@b.co", uc.got.Email)
	assert.Equal(t, 2, uc.got.Page)

	var got struct {
		Items      []orderdto.OrderDTO `json:"items"`
		Total      int64               `json:"total"`
		TotalPages int                 `json:"total_pages"`
	}
	_, err := testutil.DecodeEnvelope(w, &got)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(41), got.Total)
	assert.Equal(t, 3, got.TotalPages)
}

// =====================================================================
// Reviews
// =====================================================================

func TestReviewHandler_ListReviews(t *testing.T) {
	uc := &mockListAllReviewsUC{result: &reviewusecases.ListAllReviewsResult{
		Reviews: []*reviewdto.AdminReviewDTO{
			{ReviewDTO: reviewdto.ReviewDTO{ID: 1, Tool: "pdf-merge", Rating: 5}, Email: "r@example.com"},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}
	h := NewReviewHandler(uc, &mockDeleteReviewUC{}, &mockPinReviewUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/reviews", nil)
	h.ListReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "r@example.com")
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	uc := &mockDeleteReviewUC{}
	h := NewReviewHandler(&mockListAllReviewsUC{}, uc, &mockPinReviewUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/reviews/7", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAdminContext(c, constants.RoleModerator)
	h.DeleteReview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), uc.gotID)
	assert.Equal(t, constants.RoleModerator, uc.deletedBy)
}

func TestReviewHandler_DeleteReview_Errors(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		h := NewReviewHandler(&mockListAllReviewsUC{}, &mockDeleteReviewUC{}, &mockPinReviewUC{}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/reviews/abc", nil)
		testutil.SetURLParam(c, "id", "abc")
		h.DeleteReview(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockDeleteReviewUC{err: apperrors.NewNotFoundError("review not found")}
		h := NewReviewHandler(&mockListAllReviewsUC{}, uc, &mockPinReviewUC{}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/reviews/9", nil)
		testutil.SetURLParam(c, "id", "9")
		h.DeleteReview(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_PinReview(t *testing.T) {
	uc := &mockPinReviewUC{result: &reviewdto.ReviewDTO{ID: 3, Pinned: false}}
	h := NewReviewHandler(&mockListAllReviewsUC{}, &mockDeleteReviewUC{}, uc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/reviews/3/pin", map[string]any{"pinned": false})
	testutil.SetURLParam(c, "id", "3")
	h.PinReview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), uc.got.ID)
	assert.False(t, uc.got.Pinned)
}

func TestReviewHandler_PinReview_MissingFlag(t *testing.T) {
	h := NewReviewHandler(&mockListAllReviewsUC{}, &mockDeleteReviewUC{}, &mockPinReviewUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/reviews/3/pin", map[string]any{})
	testutil.SetURLParam(c, "id", "3")
	h.PinReview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
