package ledger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Credentials is the part of a Google service-account key we need.
type Credentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// DecodeCredentials decodes a base64 encoded service-account JSON. Keys
// pasted through env var editors often carry literal "\n" sequences; those
// are turned back into newlines.
func DecodeCredentials(b64 string) (Credentials, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return Credentials{}, fmt.Errorf("decode base64: %w", err)
	}
	var c Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return Credentials{}, fmt.Errorf("parse service account json: %w", err)
	}
	if c.ClientEmail == "" || c.PrivateKey == "" {
		return Credentials{}, errors.New("service account json lacks client_email or private_key")
	}
	c.PrivateKey = strings.ReplaceAll(c.PrivateKey, `\n`, "\n")
	if c.TokenURI == "" {
		c.TokenURI = google.JWTTokenURL
	}
	return c, nil
}

// SheetsWriter appends rows to a Google spreadsheet.
type SheetsWriter struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewSheetsWriter authenticates as the service account and binds the
// writer to one spreadsheet. Token exchange happens lazily on first Append.
func NewSheetsWriter(ctx context.Context, spreadsheetID string, creds Credentials) (*SheetsWriter, error) {
	conf := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   creds.TokenURI,
	}
	return NewSheetsWriterWithOptions(ctx, spreadsheetID, option.WithHTTPClient(conf.Client(ctx)))
}

// NewSheetsWriterWithOptions builds the writer from explicit client options.
func NewSheetsWriterWithOptions(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetsWriter, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsWriter{values: svc.Spreadsheets.Values, spreadsheetID: spreadsheetID}, nil
}

// Append writes row below the last used row of sheet.
func (w *SheetsWriter) Append(ctx context.Context, sheet string, row Row) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := w.values.Append(w.spreadsheetID, Range(sheet, len(row)), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return &WriteError{Sheet: sheet, Err: err}
	}
	return nil
}

// Range returns the A1 range covering columns columns of sheet, e.g. "Dary!A:O".
func Range(sheet string, columns int) string {
	if columns < 1 {
		columns = 1
	}
	return fmt.Sprintf("%s!A:%s", sheet, columnName(columns))
}

// columnName converts a 1-based column index to its letter name (1 -> A, 27 -> AA).
func columnName(n int) string {
	var name []byte
	for n > 0 {
		n--
		name = append([]byte{byte('A' + n%26)}, name...)
		n /= 26
	}
	return string(name)
}
