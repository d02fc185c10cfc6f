package payment

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_Encode(t *testing.T) {
	p := Payload{
		Account:        "CZ3508000000006620653309",
		Amount:         decimal.NewFromInt(1180),
		Currency:       "CZK",
		VariableSymbol: "260307042",
		Message:        "Předobjednávka Příběháři",
	}

	assert.Equal(t,
		"SPD*1.0*ACC:CZ3508000000006620653309*AM:1180.00*CC:CZK*X-VS:260307042*MSG:Predobjednavka Pribehari",
		p.Encode())
}

func TestPayload_EncodeOmitsEmptyOptionalFields(t *testing.T) {
	p := Payload{Account: "CZ01", Amount: decimal.RequireFromString("99.5"), Currency: "CZK"}
	assert.Equal(t, "SPD*1.0*ACC:CZ01*AM:99.50*CC:CZK", p.Encode())

	// a message that sanitizes to nothing is dropped too
	p.Message = "★★★"
	assert.Equal(t, "SPD*1.0*ACC:CZ01*AM:99.50*CC:CZK", p.Encode())
}

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Příliš žluťoučký kůň", "Prilis zlutoucky kun"},
		{"a*b|c/d", "abcd"},
		{"ok_-.: 12", "ok_-.: 12"},
		{strings.Repeat("á", 80), strings.Repeat("a", 60)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeMessage(tt.in), tt.in)
	}
}

func TestSanitizeMessage_Idempotent(t *testing.T) {
	inputs := []string{
		"Předobjednávka Příběháři",
		strings.Repeat("Žluťoučký kůň úpěl ďábelské ódy * ", 5),
		"",
		"plain",
	}
	for _, in := range inputs {
		once := SanitizeMessage(in)
		assert.Equal(t, once, SanitizeMessage(once), in)
	}
}

func TestParsePayload_RoundTrip(t *testing.T) {
	p := Payload{
		Account:        "CZ3508000000006620653309",
		Amount:         decimal.RequireFromString("1300.5"),
		Currency:       "CZK",
		VariableSymbol: "251019007",
		Message:        "Dar pro Příběháře: díky!",
	}

	got, err := ParsePayload(p.Encode())
	require.NoError(t, err)

	assert.Equal(t, p.Account, got.Account)
	assert.Equal(t, "1300.50", got.Amount.StringFixed(2))
	assert.Equal(t, p.Currency, got.Currency)
	assert.Equal(t, p.VariableSymbol, got.VariableSymbol)
	assert.Equal(t, SanitizeMessage(p.Message), got.Message)
}

func TestParsePayload_Errors(t *testing.T) {
	_, err := ParsePayload("hello")
	assert.ErrorIs(t, err, ErrNotSPAYD)

	_, err = ParsePayload("SPD*1.0*AM:abc*ACC:X")
	assert.Error(t, err)

	_, err = ParsePayload("SPD*1.0*AM:1.00")
	assert.Error(t, err)
}

func TestPayload_AmountMatchesQuote(t *testing.T) {
	c := Calculator{UnitPrice: decimal.NewFromInt(500), FixedFee: decimal.NewFromInt(180), MinQuantity: 1}

	tests := []struct {
		extra string
		want  string
	}{
		{"0", "1180"},
		{"0.125", "1180.13"},
		{"20.5", "1200.5"},
	}
	for _, tt := range tests {
		t.Run(tt.extra, func(t *testing.T) {
			q := c.Quote(2, decimal.RequireFromString(tt.extra))
			assert.Equal(t, tt.want, q.Total.String())

			p := Payload{Account: "CZ01", Amount: q.Total, Currency: "CZK"}
			parsed, err := ParsePayload(p.Encode())
			require.NoError(t, err)
			assert.True(t, parsed.Amount.Equal(q.Total), "AM %s vs total %s", parsed.Amount, q.Total)
		})
	}
}
