package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/config"
	"github.com/pribehari/forms-api/internal/logger"
	"github.com/pribehari/forms-api/internal/notify"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.RunLocal, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	var n notify.Notifier = notify.NewDisabled(log)
	if cfg.EmailAPIKey != "" {
		n = notify.NewEmail(cfg.EmailAPIKey, cfg.EmailFrom, cfg.EmailBCC)
	} else {
		log.Warn("EMAIL_API_KEY not set, queued confirmations will be discarded")
	}
	p := NewProcessor(n, log)

	// If RUN_LOCAL=true, process a single simulated SQS event and exit.
	if cfg.RunLocal {
		body := cfg.LocalEventBody
		if body == "" {
			body = `{"type":"donation_recap","recap":{"email":"local@example.com","name":"Local Donor","amount":100,"sent_date":"2025-01-01"}}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{{MessageId: "local-1", Body: body}},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			log.Fatal("local handler error", zap.Error(err))
		}
		return
	}

	lambda.Start(p.Handle)
}
