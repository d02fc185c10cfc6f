package payment

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxMessageLen is the longest MSG value written into a payload.
const MaxMessageLen = 60

const spaydHeader = "SPD*1.0"

// Payload is the data encoded into a payment QR code (Short Payment
// Descriptor). It only lives for the duration of a request.
type Payload struct {
	Account        string // IBAN
	Amount         decimal.Decimal
	Currency       string
	VariableSymbol string
	Message        string
}

// Encode renders the payload as a SPAYD string. Field order is fixed;
// X-VS and MSG are omitted when empty.
func (p Payload) Encode() string {
	var b strings.Builder
	b.WriteString(spaydHeader)
	b.WriteString("*ACC:" + p.Account)
	b.WriteString("*AM:" + p.Amount.StringFixed(2))
	b.WriteString("*CC:" + p.Currency)
	if p.VariableSymbol != "" {
		b.WriteString("*X-VS:" + p.VariableSymbol)
	}
	if msg := SanitizeMessage(p.Message); msg != "" {
		b.WriteString("*MSG:" + msg)
	}
	return b.String()
}

// SanitizeMessage strips diacritics, drops everything except ASCII letters,
// digits, whitespace and "_-.:", and cuts the result to MaxMessageLen runes.
func SanitizeMessage(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	out := make([]rune, 0, len(stripped))
	for _, r := range stripped {
		if !allowedMessageRune(r) {
			continue
		}
		out = append(out, r)
		if len(out) == MaxMessageLen {
			break
		}
	}
	return string(out)
}

func allowedMessageRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.', r == ':':
		return true
	}
	return unicode.IsSpace(r)
}

// ErrNotSPAYD is returned by ParsePayload for strings without the SPD header.
var ErrNotSPAYD = errors.New("not a SPAYD payload")

// ParsePayload reads back the fields written by Encode. Unknown keys are ignored.
func ParsePayload(s string) (Payload, error) {
	if !strings.HasPrefix(s, spaydHeader) {
		return Payload{}, ErrNotSPAYD
	}

	var p Payload
	rest := strings.TrimPrefix(s, spaydHeader)
	for _, field := range strings.Split(strings.TrimPrefix(rest, "*"), "*") {
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return Payload{}, fmt.Errorf("malformed field %q", field)
		}
		switch key {
		case "ACC":
			p.Account = value
		case "AM":
			am, err := decimal.NewFromString(value)
			if err != nil {
				return Payload{}, fmt.Errorf("parse amount: %w", err)
			}
			p.Amount = am
		case "CC":
			p.Currency = value
		case "X-VS":
			p.VariableSymbol = value
		case "MSG":
			p.Message = value
		}
	}
	if p.Account == "" {
		return Payload{}, errors.New("missing ACC field")
	}
	return p, nil
}
