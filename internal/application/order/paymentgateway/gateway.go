// Package paymentgateway describes the hosted card payment provider.
package paymentgateway

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

const (
	StatusPaid      = "paid"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

// RedirectRequest is what the hosted payment page needs to charge an order.
type RedirectRequest struct {
	InvoiceID string
	Amount    decimal.Decimal
	Currency  string
	Email     string
}

// StatusResult is the gateway's view of an invoice.
type StatusResult struct {
	InvoiceID     string `json:"invoice_id"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

type PaymentGateway interface {
	BuildRedirectURL(req RedirectRequest) (string, error)
	VerifySignature(params url.Values) bool
	QueryStatus(ctx context.Context, invoiceID string) (*StatusResult, error)
}
