// Package email delivers transactional storefront emails.
package email

import (
	"context"

	"storefront/platform/config"
)

// CheckoutItem is one cart line listed in the checkout email.
type CheckoutItem struct {
	Title    string
	Quantity int
}

// CheckoutReceived describes a checkout intent acknowledged by email.
type CheckoutReceived struct {
	SessionID   string
	Items       []CheckoutItem
	RequestedAt string
}

type Sender interface {
	SendCheckoutReceived(ctx context.Context, toEmail string, data CheckoutReceived) error
}

type NoopSender struct{}

func (NoopSender) SendCheckoutReceived(ctx context.Context, toEmail string, data CheckoutReceived) error {
	return nil
}

// New returns an SMTP sender when email is enabled and a no-op sender otherwise.
func New(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
