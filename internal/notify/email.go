package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the part of the Resend client we use.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Email sends confirmations through the Resend API.
type Email struct {
	sender EmailSender
	from   string
	bcc    []string
}

// NewEmail returns an Email notifier authenticated with apiKey.
func NewEmail(apiKey, from string, bcc []string) *Email {
	return NewEmailWithSender(resend.NewClient(apiKey).Emails, from, bcc)
}

// NewEmailWithSender wires an explicit sender.
func NewEmailWithSender(sender EmailSender, from string, bcc []string) *Email {
	return &Email{sender: sender, from: from, bcc: bcc}
}

// NotifyDonation sends the recap to the donor with the operators in BCC.
func (e *Email) NotifyDonation(ctx context.Context, r Recap) error {
	if e.from == "" {
		return ErrNoSender
	}
	html, err := RenderDonation(r)
	if err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{r.Email},
		Bcc:     e.bcc,
		Subject: donationSubject,
		Html:    html,
	}
	if _, err := e.sender.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
