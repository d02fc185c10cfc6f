package notify

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoSender is returned when a delivery credential is configured but no
// sender identity is.
var ErrNoSender = errors.New("email sender identity is not configured")

// Recap is what the donor confirmation email says about the donation.
type Recap struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	SentDate string  `json:"sent_date"`
}

// FormattedAmount renders the amount without trailing zero decimals ("1500", "99.5").
func (r Recap) FormattedAmount() string {
	return decimal.NewFromFloat(r.Amount).Round(2).String()
}

// Notifier delivers donation confirmations. Callers treat every error as
// non-fatal.
type Notifier interface {
	NotifyDonation(ctx context.Context, r Recap) error
}

// Disabled is used when no email credential is configured.
type Disabled struct {
	log *zap.Logger
}

// NewDisabled returns a Notifier that sends nothing.
func NewDisabled(log *zap.Logger) *Disabled {
	return &Disabled{log: log}
}

// NotifyDonation logs that email is switched off.
func (d *Disabled) NotifyDonation(ctx context.Context, r Recap) error {
	d.log.Debug("email notifications disabled, skipping confirmation")
	return nil
}
