package submission

import (
	"context"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/apperr"
	"github.com/pribehari/forms-api/internal/config"
	"github.com/pribehari/forms-api/internal/ledger"
	"github.com/pribehari/forms-api/internal/logger"
	"github.com/pribehari/forms-api/internal/notify"
	"github.com/pribehari/forms-api/internal/payment"
	"github.com/pribehari/forms-api/internal/validation"
)

// Outcomes reported to the Recorder.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Settings are the payment and ledger constants a Service needs.
type Settings struct {
	Account        string // IBAN encoded into the QR payload
	AccountHuman   string // shown next to the QR code
	PaymentMessage string
	Currency       string
	OrdersSheet    string
	DonationsSheet string
	Calculator     payment.Calculator
}

// SettingsFromConfig extracts Settings from the process configuration.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		Account:        cfg.AccountIBAN,
		AccountHuman:   cfg.AccountHuman,
		PaymentMessage: cfg.PaymentMessage,
		Currency:       cfg.Currency,
		OrdersSheet:    cfg.OrdersSheet,
		DonationsSheet: cfg.DonationsSheet,
		Calculator: payment.Calculator{
			UnitPrice:   cfg.BookPrice,
			FixedFee:    cfg.ShippingFee,
			MinQuantity: cfg.MinBookCount,
		},
	}
}

// Deps are the collaborators of a Service. Metrics and Policy are optional.
type Deps struct {
	Validator *validatorv10.Validate
	Symbols   SymbolSource
	QR        QRRenderer
	Ledger    LedgerWriter
	Notifier  Notifier
	Metrics   Recorder
	Policy    Policy
	Logger    *zap.Logger
}

// Service runs order and donation submissions through their pipelines.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	settings Settings
	validate *validatorv10.Validate
	symbols  SymbolSource
	qr       QRRenderer
	ledger   LedgerWriter
	notifier Notifier
	metrics  Recorder
	policy   Policy
	log      *zap.Logger
	nowFunc  func() time.Time
}

// NewService wires a Service.
func NewService(settings Settings, d Deps) *Service {
	s := &Service{
		settings: settings,
		validate: d.Validator,
		symbols:  d.Symbols,
		qr:       d.QR,
		ledger:   d.Ledger,
		notifier: d.Notifier,
		metrics:  d.Metrics,
		policy:   d.Policy,
		log:      d.Logger,
		nowFunc:  time.Now,
	}
	if s.validate == nil {
		s.validate = validation.New()
	}
	if s.metrics == nil {
		s.metrics = nopRecorder{}
	}
	if s.policy == nil {
		s.policy = DefaultPolicy
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// OrderResult is what the customer needs to pay for an order.
type OrderResult struct {
	Amount         decimal.Decimal
	VariableSymbol string
	QRDataURL      string
	AccountHuman   string
	Message        string
}

// step is one stage of a pipeline.
type step struct {
	stage Stage
	run   func(ctx context.Context) error
}

// CreateOrder validates the order, prices it, renders the payment QR code
// and records it in the ledger.
func (s *Service) CreateOrder(ctx context.Context, req validation.CreateOrderRequest) (*OrderResult, error) {
	in := req.Normalize()
	var (
		quote payment.Quote
		vs    string
		qrURL string
	)

	err := s.execute(ctx, KindOrder,
		step{StageValidate, func(ctx context.Context) error {
			return validation.Check(s.validate, in)
		}},
		step{StageCompute, func(ctx context.Context) error {
			quote = s.settings.Calculator.Quote(in.BookCount, in.ExtraAmount)
			vs = s.symbols.Next()
			return nil
		}},
		step{StageQR, func(ctx context.Context) error {
			payload := payment.Payload{
				Account:        s.settings.Account,
				Amount:         quote.Total,
				Currency:       s.settings.Currency,
				VariableSymbol: vs,
				Message:        s.settings.PaymentMessage,
			}
			var err error
			qrURL, err = s.qr.DataURL(payload.Encode())
			return err
		}},
		step{StageLedger, func(ctx context.Context) error {
			return s.ledger.Append(ctx, s.settings.OrdersSheet, ledger.OrderRow(s.nowFunc(), in, quote, vs))
		}},
	)
	if err != nil {
		return nil, err
	}

	return &OrderResult{
		Amount:         quote.Total,
		VariableSymbol: vs,
		QRDataURL:      qrURL,
		AccountHuman:   s.settings.AccountHuman,
		Message:        s.settings.PaymentMessage,
	}, nil
}

// CreateDonation validates the donation, records it in the ledger and
// sends the donor a confirmation.
func (s *Service) CreateDonation(ctx context.Context, req validation.CreateDonationRequest) error {
	in := req.Normalize()

	return s.execute(ctx, KindDonation,
		step{StageValidate, func(ctx context.Context) error {
			return validation.Check(s.validate, in)
		}},
		step{StageLedger, func(ctx context.Context) error {
			return s.ledger.Append(ctx, s.settings.DonationsSheet, ledger.DonationRow(s.nowFunc(), in))
		}},
		step{StageNotify, func(ctx context.Context) error {
			return s.notifier.NotifyDonation(ctx, notify.Recap{
				Email:    in.Email,
				Name:     in.DisplayName(),
				Amount:   in.Amount,
				SentDate: in.SentDate,
			})
		}},
	)
}

// execute runs steps in order. A fatal failure stops the pipeline and is
// returned; a recoverable one is logged once and the pipeline continues.
func (s *Service) execute(ctx context.Context, kind Kind, steps ...step) error {
	log := logger.FromContext(ctx, s.log).With(zap.String("kind", string(kind)))

	for _, st := range steps {
		res := s.policy.Classify(kind, st.stage, st.run(ctx))
		if !res.Failed() {
			continue
		}
		s.metrics.StageFailure(ctx, string(kind), string(st.stage), res.Severity.String())

		if res.Fatal() {
			outcome := OutcomeFailed
			if _, ok := apperr.AsValidation(res.Err); ok {
				outcome = OutcomeRejected
				log.Info("submission rejected", zap.String("reason", res.Err.Error()))
			} else {
				log.Error("submission failed", zap.String("stage", string(st.stage)), zap.Error(res.Err))
			}
			s.metrics.Submission(ctx, string(kind), outcome)
			return res.Err
		}
		log.Warn("best-effort stage failed", zap.String("stage", string(st.stage)), zap.Error(res.Err))
	}

	s.metrics.Submission(ctx, string(kind), OutcomeOK)
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Submission(context.Context, string, string)           {}
func (nopRecorder) StageFailure(context.Context, string, string, string) {}
