package email

import (
	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/logger"
)

// NoopEmailService logs instead of sending. Used when email.enabled is false.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(log logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: log}
}

func (s *NoopEmailService) SendOrderReceipt(o *order.Order) error {
	s.logger.Debugw("email disabled, skipping order receipt", "invoice_id", o.InvoiceID())
	return nil
}

func (s *NoopEmailService) SendAdminManualOrderNotice(o *order.Order) error {
	s.logger.Debugw("email disabled, skipping admin notice", "invoice_id", o.InvoiceID())
	return nil
}

func (s *NoopEmailService) SendSubscriptionActivated(sub *subscription.Subscription) error {
	s.logger.Debugw("email disabled, skipping activation mail", "email", sub.Email())
	return nil
}

func (s *NoopEmailService) SendPaymentRejected(o *order.Order, reason string) error {
	s.logger.Debugw("email disabled, skipping rejection mail", "invoice_id", o.InvoiceID())
	return nil
}
