package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Ledger backends
const (
	LedgerSheets   = "sheets"
	LedgerDynamoDB = "dynamodb"
)

// Config is the process-wide configuration. It is built once at startup
// and passed by value into constructors.
type Config struct {
	RunLocal   bool
	ListenAddr string
	LogLevel   string

	// payment
	AccountIBAN    string
	AccountHuman   string
	PaymentMessage string
	Currency       string
	BookPrice      decimal.Decimal
	ShippingFee    decimal.Decimal
	MinBookCount   int
	Location       *time.Location

	// ledger
	LedgerBackend         string
	SpreadsheetID         string
	OrdersSheet           string
	DonationsSheet        string
	ServiceAccountJSONB64 string
	LedgerTable           string

	// email
	EmailAPIKey string
	EmailFrom   string
	EmailBCC    []string

	// aws
	AWSRegion        string
	EndpointOverride string
	NotifyQueueURL   string
	IdempotencyTable string
	IdempotencyTTL   time.Duration
	MetricsNamespace string

	// worker, RUN_LOCAL only
	LocalEventBody string
}

// Load reads the environment. When RUN_LOCAL=true a .env file in the working
// directory is loaded first; variables already set in the environment win.
func Load() Config {
	runLocal := os.Getenv("RUN_LOCAL") == "true"
	if runLocal {
		_ = godotenv.Load()
	}

	cfg := Config{
		RunLocal:   runLocal,
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		AccountIBAN:    getEnv("ACCOUNT_IBAN", "CZ3508000000006620653309"),
		AccountHuman:   getEnv("ACCOUNT_HUMAN", "6620653309/0800"),
		PaymentMessage: getEnv("PAYMENT_MESSAGE", "Predobjednavka Pribehari"),
		Currency:       getEnv("CURRENCY", "CZK"),
		BookPrice:      getDecimal("BOOK_PRICE", decimal.NewFromInt(500)),
		ShippingFee:    getDecimal("SHIPPING_FEE", decimal.NewFromInt(180)),
		MinBookCount:   getInt("MIN_BOOK_COUNT", 1),
		Location:       getLocation("TIMEZONE", "Europe/Prague"),

		LedgerBackend:         strings.ToLower(getEnv("LEDGER_BACKEND", LedgerSheets)),
		SpreadsheetID:         os.Getenv("GSHEETS_SPREADSHEET_ID"),
		OrdersSheet:           getEnv("GSHEETS_SHEET_NAME", "Objednavky"),
		DonationsSheet:        getEnv("GSHEETS_DONATIONS_SHEET_NAME", "Dary"),
		ServiceAccountJSONB64: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON_BASE64"),
		LedgerTable:           os.Getenv("LEDGER_TABLE"),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailFrom:   os.Getenv("EMAIL_FROM"),
		EmailBCC:    SplitList(os.Getenv("EMAIL_BCC")),

		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		EndpointOverride: os.Getenv("AWS_ENDPOINT_OVERRIDE"),
		NotifyQueueURL:   os.Getenv("NOTIFY_QUEUE_URL"),
		IdempotencyTable: os.Getenv("IDEMPOTENCY_TABLE"),
		IdempotencyTTL:   getDuration("IDEMPOTENCY_TTL", 48*time.Hour),
		MetricsNamespace: os.Getenv("METRICS_NAMESPACE"),

		LocalEventBody: os.Getenv("LOCAL_SQS_BODY"),
	}
	if cfg.MinBookCount < 1 {
		cfg.MinBookCount = 1
	}
	return cfg
}

// SheetsEnabled reports whether the spreadsheet ledger has everything it needs.
func (c Config) SheetsEnabled() bool {
	return c.SpreadsheetID != "" && c.ServiceAccountJSONB64 != ""
}

// NeedsAWS reports whether any AWS-backed component is configured.
func (c Config) NeedsAWS() bool {
	return c.LedgerBackend == LedgerDynamoDB ||
		c.NotifyQueueURL != "" ||
		c.IdempotencyTable != "" ||
		c.MetricsNamespace != ""
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return n
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getLocation(key, fallback string) *time.Location {
	loc, err := time.LoadLocation(getEnv(key, fallback))
	if err != nil {
		return time.UTC
	}
	return loc
}
