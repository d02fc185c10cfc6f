package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/payment"
	"github.com/pribehari/forms-api/internal/validation"
)

// Row is one ledger line. Auditors read columns by position, so the order
// produced by OrderRow and DonationRow is a fixed contract.
type Row []interface{}

// Writer appends rows to a named sheet.
type Writer interface {
	Append(ctx context.Context, sheet string, row Row) error
}

// WriteError is returned by writers when a row could not be stored.
type WriteError struct {
	Sheet string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("append to %q: %v", e.Sheet, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Timestamp formats t the way the sheet has always stored it (ISO 8601, UTC, millis).
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// OrderRow lays out an order as columns A:J.
func OrderRow(at time.Time, in validation.OrderInput, q payment.Quote, variableSymbol string) Row {
	return Row{
		Timestamp(at),
		in.Name,
		in.Email,
		q.Quantity,
		q.Extra.InexactFloat64(),
		q.Base.InexactFloat64(),
		q.Total.InexactFloat64(),
		variableSymbol,
		in.PickupPoint,
		in.Message,
	}
}

// DonationRow lays out a donation as columns A:O.
func DonationRow(at time.Time, in validation.DonationInput) Row {
	newsletter := "NE"
	if in.Newsletter {
		newsletter = "ANO"
	}
	return Row{
		Timestamp(at),
		string(in.DonorType),
		in.FirstName,
		in.LastName,
		in.CompanyName,
		in.ICO,
		in.ContactPerson,
		in.Email,
		in.Phone,
		in.Street,
		in.City,
		in.Zip,
		in.Amount,
		in.SentDate,
		newsletter,
	}
}

// Disabled is used when no ledger is configured. Rows are dropped with a warning.
type Disabled struct {
	log *zap.Logger
}

// NewDisabled returns a Writer that stores nothing.
func NewDisabled(log *zap.Logger) *Disabled {
	return &Disabled{log: log}
}

// Append logs and drops the row.
func (d *Disabled) Append(ctx context.Context, sheet string, row Row) error {
	d.log.Warn("ledger not configured, submission is not stored", zap.String("sheet", sheet))
	return nil
}

// Unavailable stands in for a backend that could not be initialised. Every
// Append fails, so pipelines apply their usual ledger-failure handling.
type Unavailable struct {
	err error
}

// NewUnavailable returns a Writer whose appends fail with cause.
func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{err: cause}
}

// Append always returns a *WriteError wrapping the init failure.
func (u *Unavailable) Append(ctx context.Context, sheet string, row Row) error {
	return &WriteError{Sheet: sheet, Err: u.err}
}
