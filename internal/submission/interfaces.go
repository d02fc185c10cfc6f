package submission

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/pribehari/forms-api/internal/ledger"
	"github.com/pribehari/forms-api/internal/notify"
)

// LedgerWriter appends one row per submission.
type LedgerWriter interface {
	Append(ctx context.Context, sheet string, row ledger.Row) error
}

// QRRenderer turns a payment payload into an embeddable image.
type QRRenderer interface {
	DataURL(content string) (string, error)
}

// Notifier sends donation confirmations.
type Notifier interface {
	NotifyDonation(ctx context.Context, r notify.Recap) error
}

// SymbolSource issues variable symbols.
type SymbolSource interface {
	Next() string
}

// Recorder receives submission metrics.
type Recorder interface {
	Submission(ctx context.Context, kind, outcome string)
	StageFailure(ctx context.Context, kind, stage, severity string)
}
