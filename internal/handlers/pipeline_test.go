package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pribehari/forms-api/internal/ledger"
	"github.com/pribehari/forms-api/internal/notify"
	"github.com/pribehari/forms-api/internal/payment"
	"github.com/pribehari/forms-api/internal/qr"
	"github.com/pribehari/forms-api/internal/submission"
)

type fakeLedger struct {
	err  error
	rows map[string][]ledger.Row
}

func (f *fakeLedger) Append(ctx context.Context, sheet string, row ledger.Row) error {
	if f.err != nil {
		return f.err
	}
	if f.rows == nil {
		f.rows = map[string][]ledger.Row{}
	}
	f.rows[sheet] = append(f.rows[sheet], row)
	return nil
}

type fakeNotifier struct {
	sent []notify.Recap
}

func (f *fakeNotifier) NotifyDonation(ctx context.Context, r notify.Recap) error {
	f.sent = append(f.sent, r)
	return nil
}

type fixedSymbol string

func (s fixedSymbol) Next() string { return string(s) }

func newPipeline(l submission.LedgerWriter, n *fakeNotifier) *submission.Service {
	settings := submission.Settings{
		Account:        "CZ3508000000006620653309",
		AccountHuman:   "6620653309/0800",
		PaymentMessage: "Predobjednavka Pribehari",
		Currency:       "CZK",
		OrdersSheet:    "Objednavky",
		DonationsSheet: "Dary",
		Calculator: payment.Calculator{
			UnitPrice:   decimal.NewFromInt(500),
			FixedFee:    decimal.NewFromInt(180),
			MinQuantity: 1,
		},
	}
	return submission.NewService(settings, submission.Deps{
		Symbols:  fixedSymbol("250301007"),
		QR:       qr.NewRenderer(qr.DefaultOptions),
		Ledger:   l,
		Notifier: n,
	})
}

const donationBody = `{"donorType":"FO","email":"petr@example.cz","street":"Dlouha 1","city":"Praha",
"zip":"11000","amount":"1500","sentDate":"2025-03-01","newsletter":"on","firstName":"Petr","lastName":"Svoboda"}`

func TestPipeline_Order(t *testing.T) {
	l := &fakeLedger{}
	r := newRouter(newPipeline(l, &fakeNotifier{}), nil)

	w := do(r, http.MethodPost, "/create-order", orderBody, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, 1180.0, body["amount"])
	assert.True(t, strings.HasPrefix(body["qrDataUrl"].(string), "data:image/png;base64,"))
	require.Len(t, l.rows["Objednavky"], 1)
}

func TestPipeline_OrderLedgerDown(t *testing.T) {
	l := &fakeLedger{err: errors.New("sheets: 503")}
	r := newRouter(newPipeline(l, &fakeNotifier{}), nil)

	w := do(r, http.MethodPost, "/create-order", orderBody, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "250301007", decode(t, w)["variableSymbol"])
}

func TestPipeline_Donation(t *testing.T) {
	l := &fakeLedger{}
	n := &fakeNotifier{}
	r := newRouter(newPipeline(l, n), nil)

	w := do(r, http.MethodPost, "/create-donation", donationBody, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	require.Len(t, l.rows["Dary"], 1)
	assert.Equal(t, "ANO", l.rows["Dary"][0][14])
	require.Len(t, n.sent, 1)
	assert.Equal(t, "Petr Svoboda", n.sent[0].Name)
}

func TestPipeline_DonationLedgerDown(t *testing.T) {
	l := &fakeLedger{err: errors.New("sheets: 403")}
	n := &fakeNotifier{}
	r := newRouter(newPipeline(l, n), nil)

	w := do(r, http.MethodPost, "/create-donation", donationBody, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Interní chyba serveru.", decode(t, w)["message"])
	assert.Empty(t, n.sent)
}

func TestPipeline_UnavailableLedger(t *testing.T) {
	n := &fakeNotifier{}
	r := newRouter(newPipeline(ledger.NewUnavailable(errors.New("bad credentials")), n), nil)

	w := do(r, http.MethodPost, "/create-order", orderBody, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = do(r, http.MethodPost, "/create-donation", donationBody, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, n.sent)
}

func TestPipeline_ValidationMessages(t *testing.T) {
	r := newRouter(newPipeline(&fakeLedger{}, &fakeNotifier{}), nil)

	w := do(r, http.MethodPost, "/create-order", `{"name":"Jana","email":"j@x.cz","bookCount":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Chybí odkaz na vybranou pobočku nebo box Zásilkovny.", decode(t, w)["message"])

	w = do(r, http.MethodPost, "/create-donation",
		`{"donorType":"PO","email":"a@b.cz","street":"s","city":"c","zip":"z","amount":100,"sentDate":"2025-01-01"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Chybí název společnosti.", decode(t, w)["message"])
}
