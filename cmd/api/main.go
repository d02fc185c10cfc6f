package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/apperr"
	"github.com/pribehari/forms-api/internal/aws"
	"github.com/pribehari/forms-api/internal/config"
	"github.com/pribehari/forms-api/internal/handlers"
	"github.com/pribehari/forms-api/internal/idempotency"
	"github.com/pribehari/forms-api/internal/ledger"
	"github.com/pribehari/forms-api/internal/logger"
	"github.com/pribehari/forms-api/internal/metrics"
	"github.com/pribehari/forms-api/internal/notify"
	"github.com/pribehari/forms-api/internal/payment"
	"github.com/pribehari/forms-api/internal/qr"
	"github.com/pribehari/forms-api/internal/submission"
	"github.com/pribehari/forms-api/internal/validation"
)

func setupRouter(cfg handlers.HandlerConfig, reg prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		cfg.Logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": apperr.GenericMessage})
	}))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterSubmissionRoutes(r, cfg)

	return r
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.RunLocal, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var clients *aws.Clients
	if cfg.NeedsAWS() {
		var err error
		clients, err = aws.NewClients(ctx, cfg.AWSRegion, cfg.EndpointOverride)
		if err != nil {
			log.Fatal("failed to init aws clients", zap.Error(err))
		}
	}

	ledgerWriter := newLedger(ctx, cfg, clients, log)

	var cw aws.CloudWatchAPI
	if clients != nil && cfg.MetricsNamespace != "" {
		cw = clients.CloudWatch
	}
	recorder := metrics.New(prometheus.DefaultRegisterer, cw, cfg.MetricsNamespace, log)

	svc := submission.NewService(submission.SettingsFromConfig(cfg), submission.Deps{
		Validator: validation.New(),
		Symbols:   payment.NewSymbolGenerator(cfg.Location),
		QR:        qr.NewRenderer(qr.DefaultOptions),
		Ledger:    ledgerWriter,
		Notifier:  newNotifier(cfg, clients, log),
		Metrics:   recorder,
		Logger:    log,
	})

	hcfg := handlers.HandlerConfig{
		Service: svc,
		Logger:  log,
	}
	if cfg.IdempotencyTable != "" {
		hcfg.Idempotency = idempotency.NewStore(clients.DynamoDB, cfg.IdempotencyTable, cfg.IdempotencyTTL)
	}

	if !cfg.RunLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	r := setupRouter(hcfg, prometheus.DefaultGatherer)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if cfg.RunLocal {
		log.Info("running local server", zap.String("addr", cfg.ListenAddr))
		if err := r.Run(cfg.ListenAddr); err != nil {
			log.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

// newLedger picks the ledger backend. A missing Sheets configuration is not
// an error: submissions are accepted and only logged. Broken Sheets
// credentials keep the process up with a writer that fails every append, so
// orders still return payment details and donations answer 500.
func newLedger(ctx context.Context, cfg config.Config, clients *aws.Clients, log *zap.Logger) ledger.Writer {
	switch {
	case cfg.LedgerBackend == config.LedgerDynamoDB:
		log.Info("ledger backend: dynamodb", zap.String("table", cfg.LedgerTable))
		return ledger.NewDynamoWriter(clients.DynamoDB, cfg.LedgerTable)
	case cfg.SheetsEnabled():
		w, err := newSheetsLedger(ctx, cfg)
		if err != nil {
			log.Error("sheets ledger unavailable", zap.String("spreadsheet", cfg.SpreadsheetID), zap.Error(err))
			return ledger.NewUnavailable(err)
		}
		log.Info("ledger backend: sheets", zap.String("spreadsheet", cfg.SpreadsheetID))
		return w
	default:
		log.Warn("ledger not configured, submissions will not be stored")
		return ledger.NewDisabled(log)
	}
}

func newSheetsLedger(ctx context.Context, cfg config.Config) (*ledger.SheetsWriter, error) {
	creds, err := ledger.DecodeCredentials(cfg.ServiceAccountJSONB64)
	if err != nil {
		return nil, err
	}
	return ledger.NewSheetsWriter(ctx, cfg.SpreadsheetID, creds)
}

func newNotifier(cfg config.Config, clients *aws.Clients, log *zap.Logger) notify.Notifier {
	switch {
	case cfg.NotifyQueueURL != "":
		return notify.NewQueue(aws.NewQueueSender(clients.SQS, cfg.NotifyQueueURL))
	case cfg.EmailAPIKey != "":
		return notify.NewEmail(cfg.EmailAPIKey, cfg.EmailFrom, cfg.EmailBCC)
	default:
		log.Info("email notifications disabled")
		return notify.NewDisabled(log)
	}
}
