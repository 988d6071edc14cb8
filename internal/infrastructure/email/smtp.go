package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	AdminAddress string
	BaseURL      string
}

// SMTPEmailService sends short transactional mails. Bodies are written in
// markdown and sent as plain text with a rendered HTML alternative.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	markdown markdown.MarkdownService
}

func NewSMTPEmailService(config SMTPConfig, md markdown.MarkdownService) *SMTPEmailService {
	return &SMTPEmailService{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		markdown: md,
	}
}

func (s *SMTPEmailService) SendOrderReceipt(o *order.Order) error {
	subject, body := orderReceipt(o)
	return s.sendEmail(o.Email(), subject, body)
}

func (s *SMTPEmailService) SendAdminManualOrderNotice(o *order.Order) error {
	if s.config.AdminAddress == "" {
		return nil
	}
	subject, body := adminManualOrderNotice(o, s.config.BaseURL)
	return s.sendEmail(s.config.AdminAddress, subject, body)
}

func (s *SMTPEmailService) SendSubscriptionActivated(sub *subscription.Subscription) error {
	subject, body := subscriptionActivated(sub)
	return s.sendEmail(sub.Email(), subject, body)
}

func (s *SMTPEmailService) SendPaymentRejected(o *order.Order, reason string) error {
	subject, body := paymentRejected(o, reason)
	return s.sendEmail(o.Email(), subject, body)
}

func (s *SMTPEmailService) sendEmail(to, subject, markdownBody string) error {
	htmlBody, err := s.markdown.ToHTMLSanitized(markdownBody)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", markdownBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func orderReceipt(o *order.Order) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", o.CustomerName())
	fmt.Fprintf(&b, "We received your order for the **%s** plan.\n\n", o.PlanName())
	fmt.Fprintf(&b, "- Invoice: `%s`\n", o.InvoiceID())
	fmt.Fprintf(&b, "- Amount: %s %s\n", o.Price().StringFixed(2), o.Currency())
	fmt.Fprintf(&b, "- Payment method: %s\n", o.PaymentMethod())
	if o.Reference() != "" {
		fmt.Fprintf(&b, "- Reference: %s\n", o.Reference())
	}
	b.WriteString("\nWe will activate your subscription once the payment is verified.\n")
	return fmt.Sprintf("Order received (%s)", o.InvoiceID()), b.String()
}

func adminManualOrderNotice(o *order.Order, baseURL string) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "A manual payment is waiting for review.\n\n")
	fmt.Fprintf(&b, "- Invoice: `%s`\n", o.InvoiceID())
	fmt.Fprintf(&b, "- Customer: %s <%s>\n", o.CustomerName(), o.Email())
	fmt.Fprintf(&b, "- Plan: %s\n", o.PlanName())
	fmt.Fprintf(&b, "- Amount: %s %s\n", o.Price().StringFixed(2), o.Currency())
	fmt.Fprintf(&b, "- Method: %s\n", o.PaymentMethod())
	fmt.Fprintf(&b, "- Reference: %s\n", o.Reference())
	if baseURL != "" {
		fmt.Fprintf(&b, "\nReview pending orders at %s/admin\n", strings.TrimRight(baseURL, "/"))
	}
	return fmt.Sprintf("[officetools] Manual payment %s", o.InvoiceID()), b.String()
}

func subscriptionActivated(sub *subscription.Subscription) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Your **%s** subscription is active.\n\n", sub.PlanName())
	fmt.Fprintf(&b, "It is valid until %s.\n", biztime.FormatInBizTimezone(sub.ExpiresAt(), "2006-01-02 15:04 MST"))
	return "Your subscription is active", b.String()
}

func paymentRejected(o *order.Order, reason string) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", o.CustomerName())
	fmt.Fprintf(&b, "We could not verify the payment for invoice `%s`.\n", o.InvoiceID())
	if reason != "" {
		fmt.Fprintf(&b, "\nReason: %s\n", reason)
	}
	b.WriteString("\nReply to this email if you believe this is a mistake.\n")
	return fmt.Sprintf("Payment not verified (%s)", o.InvoiceID()), b.String()
}
