package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/logger"
	"github.com/pribehari/forms-api/internal/notify"
)

// Processor delivers queued donation confirmations.
type Processor struct {
	notifier notify.Notifier
	log      *zap.Logger
}

// NewProcessor creates a worker processor sending through n.
func NewProcessor(n notify.Notifier, log *zap.Logger) *Processor {
	return &Processor{notifier: n, log: log}
}

// Handle receives an SQS batch event and processes each message. Emails are
// best-effort: failures are logged and the message is dropped, so the batch
// never fails and nothing is redelivered.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	p.log.Debug("received batch", zap.Int("records", len(ev.Records)))
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.log.Warn("dropping message", zap.String("message_id", rec.MessageId), zap.Error(err))
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg notify.Message
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if msg.Type != notify.MessageTypeDonation {
		return fmt.Errorf("unknown message type %q", msg.Type)
	}

	log := p.log.With(zap.String("correlation_id", msg.CorrelationID))
	ctx = logger.WithContext(notify.WithCorrelationID(ctx, msg.CorrelationID), log)

	if err := p.notifier.NotifyDonation(ctx, msg.Recap); err != nil {
		return fmt.Errorf("notify donation: %w", err)
	}
	log.Info("donation confirmation sent")
	return nil
}
